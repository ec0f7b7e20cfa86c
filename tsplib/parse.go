package tsplib

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hkbb/instance"
)

type section uint8

const (
	inHeader section = iota
	inCoords
	inWeights
)

// parser holds the state of one Parse call.
type parser struct {
	p       *Problem
	line    int
	sec     section
	seen    []bool // node ids already read in NODE_COORD_SECTION
	ncoords int
	want    int // expected EDGE_WEIGHT_SECTION values
}

// ParseFile opens path and parses it.
func ParseFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "tsplib: open %s", path)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return p, nil
}

// Parse reads one problem from r. Reading stops at EOF or at the end of r.
//
// Complexity: O(size of input).
func Parse(r io.Reader) (*Problem, error) {
	ps := &parser{p: &Problem{}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var done bool
	for !done && sc.Scan() {
		ps.line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var err error
		if done, err = ps.handle(text); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "tsplib: read")
	}

	return ps.finish()
}

// handle processes one non-empty line and reports whether EOF was reached.
func (ps *parser) handle(text string) (bool, error) {
	key, val := splitKeyword(text)
	if key == "EOF" {
		return true, nil
	}
	switch ps.sec {
	case inCoords:
		if !isKeyword(key) {
			return false, ps.coord(text)
		}
	case inWeights:
		if !isKeyword(key) {
			return false, ps.weights(text)
		}
	}
	ps.sec = inHeader

	return false, ps.header(key, val)
}

func (ps *parser) header(key, val string) error {
	p := ps.p
	switch key {
	case "NAME":
		p.Name = val
	case "COMMENT":
		if p.Comment != "" {
			p.Comment += "\n"
		}
		p.Comment += val
	case "TYPE":
		if val != "TSP" {
			return errors.Wrapf(ErrUnsupported, "line %d: TYPE %q", ps.line, val)
		}
	case "DIMENSION":
		n, err := strconv.Atoi(val)
		if err != nil || n < instance.MinNodes {
			return errors.Wrapf(ErrFormat, "line %d: DIMENSION %q", ps.line, val)
		}
		p.Dimension = n
	case "EDGE_WEIGHT_TYPE":
		switch val {
		case EUC2D, CEIL2D, Explicit:
			p.WeightType = val
		default:
			return errors.Wrapf(ErrUnsupported, "line %d: EDGE_WEIGHT_TYPE %q", ps.line, val)
		}
	case "EDGE_WEIGHT_FORMAT":
		switch val {
		case FullMatrix, UpperRow, LowerDiagRow:
			p.WeightFormat = val
		default:
			return errors.Wrapf(ErrUnsupported, "line %d: EDGE_WEIGHT_FORMAT %q", ps.line, val)
		}
	case "NODE_COORD_SECTION":
		if err := ps.needDimension(key); err != nil {
			return err
		}
		if p.Coords == nil {
			p.Coords = make([]instance.Point, p.Dimension)
			ps.seen = make([]bool, p.Dimension)
		}
		ps.sec = inCoords
	case "EDGE_WEIGHT_SECTION":
		if err := ps.needDimension(key); err != nil {
			return err
		}
		want, err := weightCount(p.WeightFormat, p.Dimension)
		if err != nil {
			return errors.Wrapf(err, "line %d", ps.line)
		}
		ps.want = want
		ps.sec = inWeights
	default:
		if strings.HasSuffix(key, "_SECTION") {
			return errors.Wrapf(ErrUnsupported, "line %d: section %s", ps.line, key)
		}
		// Header keywords without effect on the weights.
	}

	return nil
}

func (ps *parser) needDimension(key string) error {
	if ps.p.Dimension == 0 {
		return errors.Wrapf(ErrFormat, "line %d: %s before DIMENSION", ps.line, key)
	}

	return nil
}

// coord parses "id x y".
func (ps *parser) coord(text string) error {
	f := strings.Fields(text)
	if len(f) != 3 {
		return errors.Wrapf(ErrFormat, "line %d: want \"id x y\", got %q", ps.line, text)
	}
	id, err := strconv.Atoi(f[0])
	if err != nil || id < 1 || id > ps.p.Dimension {
		return errors.Wrapf(ErrFormat, "line %d: node id %q", ps.line, f[0])
	}
	if ps.seen[id-1] {
		return errors.Wrapf(ErrFormat, "line %d: duplicate node id %d", ps.line, id)
	}
	x, errX := strconv.ParseFloat(f[1], 64)
	y, errY := strconv.ParseFloat(f[2], 64)
	if errX != nil || errY != nil {
		return errors.Wrapf(ErrFormat, "line %d: coordinates %q", ps.line, text)
	}
	ps.seen[id-1] = true
	ps.p.Coords[id-1] = instance.Point{X: x, Y: y}
	ps.ncoords++

	return nil
}

// weights appends every integer on the line; values may wrap across lines.
func (ps *parser) weights(text string) error {
	for _, tok := range strings.Fields(text) {
		if len(ps.p.Weights) == ps.want {
			return errors.Wrapf(ErrFormat, "line %d: more than %d edge weights", ps.line, ps.want)
		}
		w, err := parseWeight(tok)
		if err != nil {
			return errors.Wrapf(ErrFormat, "line %d: edge weight %q", ps.line, tok)
		}
		ps.p.Weights = append(ps.p.Weights, w)
	}

	return nil
}

func (ps *parser) finish() (*Problem, error) {
	p := ps.p
	if p.Dimension == 0 {
		return nil, errors.Wrap(ErrFormat, "missing DIMENSION")
	}
	if p.WeightType == "" {
		p.WeightType = EUC2D
	}
	switch p.WeightType {
	case Explicit:
		if p.Weights == nil && ps.want == 0 {
			return nil, errors.Wrap(ErrFormat, "missing EDGE_WEIGHT_SECTION")
		}
		if len(p.Weights) != ps.want {
			return nil, errors.Wrapf(ErrFormat, "EDGE_WEIGHT_SECTION has %d of %d values", len(p.Weights), ps.want)
		}
	default:
		if p.Coords == nil {
			return nil, errors.Wrap(ErrFormat, "missing NODE_COORD_SECTION")
		}
		if ps.ncoords != p.Dimension {
			return nil, errors.Wrapf(ErrFormat, "NODE_COORD_SECTION has %d of %d nodes", ps.ncoords, p.Dimension)
		}
	}

	return p, nil
}

// splitKeyword separates "KEY : value" or "KEY value". Only the first colon
// is a separator, so values may contain colons.
func splitKeyword(text string) (key, val string) {
	if k, v, ok := strings.Cut(text, ":"); ok {
		key = strings.TrimSpace(k)
		if !strings.ContainsAny(key, " \t") {
			return key, strings.TrimSpace(v)
		}
	}
	f := strings.Fields(text)
	key = f[0]

	return key, strings.TrimSpace(strings.TrimPrefix(text, key))
}

// isKeyword reports whether a data-section line is actually the next keyword.
func isKeyword(tok string) bool {
	if tok == "" {
		return false
	}
	c := tok[0]

	return c >= 'A' && c <= 'Z'
}

func weightCount(format string, n int) (int, error) {
	switch format {
	case FullMatrix:
		return n * n, nil
	case UpperRow:
		return n * (n - 1) / 2, nil
	case LowerDiagRow:
		return n * (n + 1) / 2, nil
	case "":
		return 0, errors.Wrap(ErrFormat, "EDGE_WEIGHT_SECTION without EDGE_WEIGHT_FORMAT")
	default:
		return 0, errors.Wrapf(ErrUnsupported, "EDGE_WEIGHT_FORMAT %q", format)
	}
}

// parseWeight accepts integers and integral floats such as "12.0".
func parseWeight(tok string) (int64, error) {
	if w, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return w, nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, ErrFormat
	}

	return int64(f), nil
}
