package tsplib_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/hkbb/instance"
	"github.com/katalvlaran/hkbb/tsplib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const square = `NAME : square4
COMMENT : four corners: unit 10
TYPE : TSP
DIMENSION : 4
EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 0 0
2 10 0
3 10 10
4 0 10
EOF
`

func TestParse_Coords(t *testing.T) {
	p, err := tsplib.Parse(strings.NewReader(square))
	require.NoError(t, err)
	assert.Equal(t, "square4", p.Name)
	assert.Equal(t, "four corners: unit 10", p.Comment)
	assert.Equal(t, 4, p.Dimension)
	assert.Equal(t, tsplib.EUC2D, p.WeightType)
	assert.Equal(t, instance.Point{X: 10, Y: 10}, p.Coords[2])

	in, err := p.Instance()
	require.NoError(t, err)
	assert.Equal(t, 4, in.Size())
	c, err := in.Cost(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(14), c)
}

func TestParse_ColonsOptionalAndUnorderedIDs(t *testing.T) {
	src := "NAME tri\nDIMENSION 3\nDISPLAY_DATA_TYPE: COORD_DISPLAY\nNODE_COORD_SECTION\n3 0 4\n1 0 0\n2 3 0\n"
	p, err := tsplib.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "tri", p.Name)
	assert.Equal(t, tsplib.EUC2D, p.WeightType)
	assert.Equal(t, instance.Point{X: 0, Y: 4}, p.Coords[2])

	in, err := p.Instance()
	require.NoError(t, err)
	l, err := in.TourLength([]int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(12), l)
}

func TestParse_Ceil(t *testing.T) {
	src := "DIMENSION: 3\nEDGE_WEIGHT_TYPE: CEIL_2D\nNODE_COORD_SECTION\n1 0 0\n2 1 1\n3 2 0\nEOF\n"
	p, err := tsplib.Parse(strings.NewReader(src))
	require.NoError(t, err)
	in, err := p.Instance()
	require.NoError(t, err)
	c, err := in.Cost(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), c) // ceil(√2)
}

func TestParse_Explicit(t *testing.T) {
	full := [][]int64{{0, 3, 4, 6}, {3, 0, 5, 7}, {4, 5, 0, 8}, {6, 7, 8, 0}}
	cases := []struct {
		name, format, body string
	}{
		{"full", tsplib.FullMatrix, "0 3 4 6\n3 0 5 7\n4 5 0 8\n6 7 8 0\n"},
		{"upper", tsplib.UpperRow, "3 4 6\n5 7\n8\n"},
		{"lower-diag", tsplib.LowerDiagRow, "0\n3 0\n4 5 0\n6 7 8 0\n"},
		{"wrapped", tsplib.UpperRow, "3 4\n6 5 7 8.0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := "NAME: x\nTYPE: TSP\nDIMENSION: 4\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: " +
				tc.format + "\nEDGE_WEIGHT_SECTION\n" + tc.body + "EOF\n"
			p, err := tsplib.Parse(strings.NewReader(src))
			require.NoError(t, err)
			in, err := p.Instance()
			require.NoError(t, err)
			for i := range full {
				for j := range full[i] {
					if i == j {
						continue
					}
					c, err := in.Cost(i, j)
					require.NoError(t, err)
					assert.Equal(t, full[i][j], c, "(%d,%d)", i, j)
				}
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	const upper3 = "DIMENSION: 3\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: UPPER_ROW\n"
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"atsp", "TYPE: ATSP\nDIMENSION: 3\n", tsplib.ErrUnsupported},
		{"geo", "DIMENSION: 3\nEDGE_WEIGHT_TYPE: GEO\n", tsplib.ErrUnsupported},
		{"format", "DIMENSION: 3\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: UPPER_COL\n", tsplib.ErrUnsupported},
		{"section", "DIMENSION: 3\nFIXED_EDGES_SECTION\n1 2\n", tsplib.ErrUnsupported},
		{"no dimension", "NODE_COORD_SECTION\n1 0 0\n", tsplib.ErrFormat},
		{"bad dimension", "DIMENSION: two\n", tsplib.ErrFormat},
		{"small dimension", "DIMENSION: 2\n", tsplib.ErrFormat},
		{"empty", "", tsplib.ErrFormat},
		{"no coords", "DIMENSION: 3\nEOF\n", tsplib.ErrFormat},
		{"short coords", "DIMENSION: 3\nNODE_COORD_SECTION\n1 0 0\n2 1 1\nEOF\n", tsplib.ErrFormat},
		{"bad id", "DIMENSION: 3\nNODE_COORD_SECTION\n4 0 0\n", tsplib.ErrFormat},
		{"duplicate id", "DIMENSION: 3\nNODE_COORD_SECTION\n1 0 0\n1 1 1\n", tsplib.ErrFormat},
		{"bad coord", "DIMENSION: 3\nNODE_COORD_SECTION\n1 0 x\n", tsplib.ErrFormat},
		{"missing coord", "DIMENSION: 3\nNODE_COORD_SECTION\n1 0\n", tsplib.ErrFormat},
		{"no format", "DIMENSION: 3\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_SECTION\n1 2 3\n", tsplib.ErrFormat},
		{"short weights", upper3 + "EDGE_WEIGHT_SECTION\n1 2\nEOF\n", tsplib.ErrFormat},
		{"long weights", upper3 + "EDGE_WEIGHT_SECTION\n1 2 3 4\n", tsplib.ErrFormat},
		{"fractional weight", upper3 + "EDGE_WEIGHT_SECTION\n1 2.5 3\n", tsplib.ErrFormat},
		{"no weights", upper3 + "EOF\n", tsplib.ErrFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsplib.Parse(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestParse_LineNumberInError(t *testing.T) {
	_, err := tsplib.Parse(strings.NewReader("DIMENSION: 3\n\nNODE_COORD_SECTION\n1 0 0\n2 a 0\n"))
	require.ErrorIs(t, err, tsplib.ErrFormat)
	assert.Contains(t, err.Error(), "line 5")
}

func TestProblem_InstanceRejectsAsymmetric(t *testing.T) {
	src := "DIMENSION: 3\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: FULL_MATRIX\nEDGE_WEIGHT_SECTION\n0 1 2\n1 0 3\n2 4 0\n"
	p, err := tsplib.Parse(strings.NewReader(src))
	require.NoError(t, err)
	_, err = p.Instance()
	require.ErrorIs(t, err, instance.ErrAsymmetric)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square4.tsp")
	require.NoError(t, os.WriteFile(path, []byte(square), 0o600))

	p, err := tsplib.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Dimension)

	_, err = tsplib.ParseFile(filepath.Join(t.TempDir(), "missing.tsp"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteTour_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	tour := []int{0, 2, 1, 3}
	require.NoError(t, tsplib.WriteTour(&buf, "square4", tour))
	assert.Equal(t,
		"NAME : square4\nTYPE : TOUR\nDIMENSION : 4\nTOUR_SECTION\n1\n3\n2\n4\n-1\nEOF\n",
		buf.String())

	got, err := tsplib.ReadTour(&buf)
	require.NoError(t, err)
	assert.Equal(t, tour, got)
}

func TestWriteTour_NoName(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tsplib.WriteTour(&buf, "", []int{0, 1, 2}))
	assert.True(t, strings.HasPrefix(buf.String(), "TYPE : TOUR\n"))
}

func TestReadTour_Errors(t *testing.T) {
	cases := map[string]string{
		"unterminated": "TOUR_SECTION\n1\n2\n3\n",
		"out of range": "DIMENSION: 3\nTOUR_SECTION\n1\n4\n-1\n",
		"short":        "DIMENSION: 3\nTOUR_SECTION\n1\n2\n-1\n",
		"garbage":      "TOUR_SECTION\n1\nx\n-1\n",
		"no section":   "DIMENSION: 3\nEOF\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tsplib.ReadTour(strings.NewReader(src))
			require.ErrorIs(t, err, tsplib.ErrFormat)
		})
	}
}

func TestWriteLength(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tsplib.WriteLength(&buf, 7542))
	assert.Equal(t, "The found tour is of length 7542\n", buf.String())
}
