// Package dimacs parses the DIMACS .clq graph file format (spec §6): one
// record per line, blank lines and lines beginning with 'c' are comments,
// exactly one problem line `p <tag> N M` (tag accepted leniently), and any
// number of 1-indexed edge lines `e U V`.
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gqclique/gqc/bitgraph"
)

// Sentinel errors surfaced by Parse, wrapped with line context via %w.
var (
	// ErrEdgeBeforeProblemLine indicates an `e` line appeared before the
	// mandatory `p` problem line.
	ErrEdgeBeforeProblemLine = errors.New("dimacs: edge line before problem line")

	// ErrMissingProblemLine indicates the input had no `p` line at all.
	ErrMissingProblemLine = errors.New("dimacs: missing problem line")

	// ErrMalformedLine indicates a non-integer token where one was expected.
	ErrMalformedLine = errors.New("dimacs: malformed line")

	// ErrDuplicateProblemLine indicates a second `p` line appeared.
	ErrDuplicateProblemLine = errors.New("dimacs: duplicate problem line")
)

// Parse reads a DIMACS .clq stream and returns the resulting Graph.
// Out-of-range and self-loop edges are rejected by bitgraph.FromEdges and
// surfaced unchanged (already wrapped with line context there would be
// redundant, since FromEdges has no line numbers to add).
func Parse(r io.Reader) (*bitgraph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n := -1
	var edges [][2]int
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if n >= 0 {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrDuplicateProblemLine)
			}
			parsedN, err := parseProblemLine(fields, lineNo)
			if err != nil {
				return nil, err
			}
			n = parsedN
		case "e":
			if n < 0 {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrEdgeBeforeProblemLine)
			}
			u, v, err := parseEdgeLine(fields, lineNo)
			if err != nil {
				return nil, err
			}
			edges = append(edges, [2]int{u, v})
		default:
			return nil, fmt.Errorf("dimacs: line %d: %w: unrecognized record tag %q", lineNo, ErrMalformedLine, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}
	if n < 0 {
		return nil, ErrMissingProblemLine
	}

	g, err := bitgraph.FromEdges(n, edges)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// parseProblemLine parses `p <tag> N M`; tag is accepted leniently (any
// token, historically "edge" or "col") and M is advisory, read but
// discarded.
func parseProblemLine(fields []string, lineNo int) (int, error) {
	if len(fields) < 3 {
		return 0, fmt.Errorf("dimacs: line %d: %w: problem line needs at least 3 fields", lineNo, ErrMalformedLine)
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, fmt.Errorf("dimacs: line %d: %w: vertex count %q", lineNo, ErrMalformedLine, fields[2])
	}
	if len(fields) >= 4 {
		if _, err := strconv.Atoi(fields[3]); err != nil {
			return 0, fmt.Errorf("dimacs: line %d: %w: edge-count hint %q", lineNo, ErrMalformedLine, fields[3])
		}
	}
	return n, nil
}

// parseEdgeLine parses `e U V`, converting the 1-indexed endpoints to
// 0-indexed vertices.
func parseEdgeLine(fields []string, lineNo int) (int, int, error) {
	if len(fields) < 3 {
		return 0, 0, fmt.Errorf("dimacs: line %d: %w: edge line needs 3 fields", lineNo, ErrMalformedLine)
	}
	u, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("dimacs: line %d: %w: endpoint %q", lineNo, ErrMalformedLine, fields[1])
	}
	v, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("dimacs: line %d: %w: endpoint %q", lineNo, ErrMalformedLine, fields[2])
	}
	return u - 1, v - 1, nil
}
