package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/angeil/essentials/graph"
)

// Sentinel errors for edge-list parsing.
var (
	// ErrFormat is returned, wrapped with the offending line, when a
	// line is not `u v` or `u v w` with non-negative integer ids.
	ErrFormat = errors.New("graphio: malformed edge-list line")

	// ErrEmpty is returned when the input holds no edges at all.
	ErrEmpty = errors.New("graphio: no edges in input")
)

// ReadEdgeList parses a whitespace-separated edge list from r and
// returns the entries plus the inferred vertex count (largest id + 1).
// Lines starting with '#' and blank lines are skipped.
func ReadEdgeList(r io.Reader) ([]graph.EdgeListEntry, int, error) {
	var entries []graph.EdgeListEntry
	maxID := int64(-1)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for lineNum := 1; sc.Scan(); lineNum++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, 0, fmt.Errorf("%w: line %d: %q", ErrFormat, lineNum, line)
		}
		u, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil || u < 0 {
			return nil, 0, fmt.Errorf("%w: line %d: bad vertex id %q", ErrFormat, lineNum, fields[0])
		}
		v, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil || v < 0 {
			return nil, 0, fmt.Errorf("%w: line %d: bad vertex id %q", ErrFormat, lineNum, fields[1])
		}
		w := 1.0
		if len(fields) == 3 {
			w, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, 0, fmt.Errorf("%w: line %d: bad weight %q", ErrFormat, lineNum, fields[2])
			}
		}
		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
		entries = append(entries, graph.EdgeListEntry{
			From:   graph.Vertex(u),
			To:     graph.Vertex(v),
			Weight: graph.Weight(w),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("graphio: read: %w", err)
	}
	if len(entries) == 0 {
		return nil, 0, ErrEmpty
	}
	return entries, int(maxID) + 1, nil
}

// ReadEdgeListFile opens path and parses it with ReadEdgeList.
func ReadEdgeListFile(path string) ([]graph.EdgeListEntry, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()
	return ReadEdgeList(f)
}

// WriteScores prints one "vertex value" line per entry, in id order.
func WriteScores[V int32 | float64](w io.Writer, values []V) error {
	bw := bufio.NewWriter(w)
	for v, val := range values {
		if _, err := fmt.Fprintf(bw, "%d %v\n", v, val); err != nil {
			return fmt.Errorf("graphio: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write: %w", err)
	}
	return nil
}
