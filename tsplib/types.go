package tsplib

import (
	"errors"

	"github.com/katalvlaran/hkbb/instance"
)

var (
	// ErrFormat reports input that is not valid TSPLIB.
	ErrFormat = errors.New("tsplib: malformed input")

	// ErrUnsupported reports a valid TSPLIB feature this package does not handle.
	ErrUnsupported = errors.New("tsplib: unsupported problem")
)

// Edge weight types.
const (
	EUC2D    = "EUC_2D"
	CEIL2D   = "CEIL_2D"
	Explicit = "EXPLICIT"
)

// Edge weight formats for Explicit.
const (
	FullMatrix   = "FULL_MATRIX"
	UpperRow     = "UPPER_ROW"
	LowerDiagRow = "LOWER_DIAG_ROW"
)

// Problem is a parsed TSPLIB file.
type Problem struct {
	Name         string
	Comment      string
	Dimension    int
	WeightType   string
	WeightFormat string

	// Coords holds node coordinates indexed by 0-based node id.
	Coords []instance.Point

	// Weights holds the raw EDGE_WEIGHT_SECTION values in file order.
	Weights []int64
}
