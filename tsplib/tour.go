package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// WriteTour writes tour (0-based node ids) as a TSPLIB tour file:
//
//	NAME : <name>
//	TYPE : TOUR
//	DIMENSION : <n>
//	TOUR_SECTION
//	<1-based ids, one per line>
//	-1
//	EOF
//
// The NAME line is omitted when name is empty.
func WriteTour(w io.Writer, name string, tour []int) error {
	bw := bufio.NewWriter(w)
	if name != "" {
		fmt.Fprintf(bw, "NAME : %s\n", name)
	}
	fmt.Fprintf(bw, "TYPE : TOUR\nDIMENSION : %d\nTOUR_SECTION\n", len(tour))
	for _, v := range tour {
		fmt.Fprintf(bw, "%d\n", v+1)
	}
	bw.WriteString("-1\nEOF\n")

	return bw.Flush()
}

// WriteLength writes the one-line length report.
func WriteLength(w io.Writer, length int64) error {
	_, err := fmt.Fprintf(w, "The found tour is of length %d\n", length)

	return err
}

// ReadTour parses a TSPLIB tour file and returns its 0-based node sequence.
//
// Errors: ErrFormat when TOUR_SECTION is missing, unterminated, holds an
// id outside 1..DIMENSION, or its length differs from DIMENSION.
func ReadTour(r io.Reader) ([]int, error) {
	var (
		sc     = bufio.NewScanner(r)
		line   int
		dim    int
		tour   []int
		inTour bool
		closed bool
		id     int
		err    error
	)
	for !closed && sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if inTour {
			for _, tok := range strings.Fields(text) {
				if id, err = strconv.Atoi(tok); err != nil {
					return nil, errors.Wrapf(ErrFormat, "line %d: tour id %q", line, tok)
				}
				if id == -1 {
					closed = true
					break
				}
				if id < 1 || (dim > 0 && id > dim) {
					return nil, errors.Wrapf(ErrFormat, "line %d: tour id %d", line, id)
				}
				tour = append(tour, id-1)
			}
			continue
		}
		key, val := splitKeyword(text)
		switch key {
		case "DIMENSION":
			if dim, err = strconv.Atoi(val); err != nil {
				return nil, errors.Wrapf(ErrFormat, "line %d: DIMENSION %q", line, val)
			}
		case "TOUR_SECTION":
			inTour = true
		case "EOF":
			return nil, errors.Wrapf(ErrFormat, "line %d: EOF before TOUR_SECTION", line)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, errors.Wrap(err, "tsplib: read")
	}
	if !closed {
		return nil, errors.Wrap(ErrFormat, "tour not terminated by -1")
	}
	if dim > 0 && len(tour) != dim {
		return nil, errors.Wrapf(ErrFormat, "tour has %d of %d nodes", len(tour), dim)
	}

	return tour, nil
}
