// Package loader reads routing problems (a graph plus start and end nodes)
// from disk or any io.Reader.
//
// Two formats are supported:
//
//   - Matrix text: the node count n, then n*n whitespace-separated integer
//     weights in row-major order (-1 marks "no edge"), then the start and end
//     node indices.
//   - YAML: see ReadYAML.
//
// Load picks the format from the file extension.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/discountroute/core"
)

// Sentinel errors returned by the loader.
var (
	// ErrMalformed indicates the input does not follow the expected layout.
	ErrMalformed = errors.New("loader: malformed input")

	// ErrAsymmetric indicates a matrix where (u,v) and (v,u) disagree.
	ErrAsymmetric = errors.New("loader: weight matrix is not symmetric")

	// ErrStartEnd indicates start or end is not a node of the graph.
	ErrStartEnd = errors.New("loader: start or end node out of range")
)

// Problem is a fully loaded routing request.
type Problem struct {
	Graph *core.Graph
	Start int
	End   int
}

type options struct {
	lenient bool
}

// Option configures matrix ingestion.
type Option func(*options)

// WithLenientSymmetry accepts asymmetric matrices. Cells are applied in
// row-major order with SetEdge, so for u < v the value at (v,u) wins.
func WithLenientSymmetry() Option {
	return func(o *options) {
		o.lenient = true
	}
}

// Load opens path and parses it as YAML (.yaml, .yml) or matrix text (anything else).
func Load(path string, opts ...Option) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadYAML(f, opts...)
	default:
		return ReadMatrix(f, opts...)
	}
}

// ReadMatrix parses the matrix text format from r.
func ReadMatrix(r io.Reader, opts ...Option) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int64, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("loader: read %s: %w", what, err)
			}
			return 0, fmt.Errorf("%w: missing %s", ErrMalformed, what)
		}
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrMalformed, what, sc.Text())
		}
		return v, nil
	}

	n64, err := next("node count")
	if err != nil {
		return nil, err
	}
	if n64 <= 0 || n64 > 1<<15 {
		return nil, fmt.Errorf("%w: node count %d", ErrMalformed, n64)
	}
	n := int(n64)

	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			if rows[i][j], err = next(fmt.Sprintf("weight (%d,%d)", i, j)); err != nil {
				return nil, err
			}
		}
	}

	start, err := next("start node")
	if err != nil {
		return nil, err
	}
	end, err := next("end node")
	if err != nil {
		return nil, err
	}

	g, err := fromMatrix(rows, opts...)
	if err != nil {
		return nil, err
	}

	return newProblem(g, start, end)
}

// fromMatrix builds a graph from a square matrix, enforcing symmetry unless lenient.
func fromMatrix(rows [][]int64, opts ...Option) (*core.Graph, error) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(rows)
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrMalformed, i, len(row), n)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !cfg.lenient && rows[i][j] != rows[j][i] {
				return nil, fmt.Errorf("%w: (%d,%d)=%d but (%d,%d)=%d",
					ErrAsymmetric, i, j, rows[i][j], j, i, rows[j][i])
			}
			if err = g.SetEdge(i, j, rows[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// newProblem validates the endpoints against the graph.
func newProblem(g *core.Graph, start, end int64) (*Problem, error) {
	n := int64(g.Size())
	if start < 0 || start >= n || end < 0 || end >= n {
		return nil, fmt.Errorf("%w: start=%d end=%d n=%d", ErrStartEnd, start, end, n)
	}

	return &Problem{Graph: g, Start: int(start), End: int(end)}, nil
}
