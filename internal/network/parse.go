package network

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a trade-desires file into a Network. Each non-blank line is
//
//	HAS WANTS [WEIGHT]
//
// with whitespace-separated fields. Text after a '#' is a comment. The
// optional weight defaults to 1; a repeated pair overwrites the previous
// weight.
func Parse(r io.Reader) (*Network, error) {
	n := New()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		ln := sc.Text()

		// Discard comments.
		if idx := strings.Index(ln, "#"); idx >= 0 {
			ln = ln[:idx]
		}

		fs := strings.Fields(ln)
		switch len(fs) {
		case 0:
			// Blank or comment-only line.
		case 2:
			n.AddDesire(fs[0], fs[1])
		case 3:
			w, err := strconv.ParseFloat(fs[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad weight %q: %w", lineNo, fs[2], err)
			}
			n.AddDesireWeight(fs[0], fs[1], w)
		default:
			return nil, fmt.Errorf("line %d: want \"HAS WANTS [WEIGHT]\", got %d fields", lineNo, len(fs))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return n, nil
}
