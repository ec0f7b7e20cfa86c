package tsplib

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/hkbb/instance"
)

// Instance builds the weighted complete graph of p.
//
// Errors: ErrUnsupported for an unknown weight type or format; instance
// validation errors (asymmetric, negative or non-zero diagonal weights) for
// explicit matrices, wrapped with the problem name.
func (p *Problem) Instance() (*instance.Instance, error) {
	switch p.WeightType {
	case "", EUC2D:
		return p.wrap(instance.Euclidean(p.Coords))
	case CEIL2D:
		return p.wrap(instance.CeilEuclidean(p.Coords))
	case Explicit:
		rows, err := p.matrix()
		if err != nil {
			return nil, err
		}

		return p.wrap(instance.FromMatrix(rows))
	default:
		return nil, errors.Wrapf(ErrUnsupported, "EDGE_WEIGHT_TYPE %q", p.WeightType)
	}
}

func (p *Problem) wrap(in *instance.Instance, err error) (*instance.Instance, error) {
	if err != nil {
		return nil, errors.Wrapf(err, "tsplib: problem %q", p.Name)
	}

	return in, nil
}

// matrix expands Weights into a full n×n matrix. Triangular formats are
// mirrored; FULL_MATRIX is taken as is so asymmetry is caught by instance.
func (p *Problem) matrix() ([][]int64, error) {
	var (
		n    = p.Dimension
		rows = make([][]int64, n)
		k    int
		i, j int
	)
	want, err := weightCount(p.WeightFormat, n)
	if err != nil {
		return nil, err
	}
	if len(p.Weights) != want {
		return nil, errors.Wrapf(ErrFormat, "%d edge weights for %s of dimension %d", len(p.Weights), p.WeightFormat, n)
	}
	for i = range rows {
		rows[i] = make([]int64, n)
	}

	switch p.WeightFormat {
	case FullMatrix:
		for i = 0; i < n; i++ {
			copy(rows[i], p.Weights[i*n:(i+1)*n])
		}
	case UpperRow:
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				rows[i][j], rows[j][i] = p.Weights[k], p.Weights[k]
				k++
			}
		}
	case LowerDiagRow:
		for i = 0; i < n; i++ {
			for j = 0; j <= i; j++ {
				rows[i][j], rows[j][i] = p.Weights[k], p.Weights[k]
				k++
			}
		}
	}

	return rows, nil
}
