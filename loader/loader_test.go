package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/discountroute/core"
	"github.com/katalvlaran/discountroute/loader"
	"github.com/stretchr/testify/require"
)

const triangle = `3
-1 4 10
4 -1 4
10 4 -1
0 2
`

func weight(t *testing.T, g *core.Graph, u, v int) int64 {
	t.Helper()
	w, err := g.Weight(u, v)
	require.NoError(t, err)

	return w
}

func TestReadMatrix_Triangle(t *testing.T) {
	p, err := loader.ReadMatrix(strings.NewReader(triangle))
	require.NoError(t, err)
	require.Equal(t, 3, p.Graph.Size())
	require.Equal(t, 0, p.Start)
	require.Equal(t, 2, p.End)
	require.Equal(t, int64(4), weight(t, p.Graph, 0, 1))
	require.Equal(t, int64(10), weight(t, p.Graph, 2, 0))
	require.Equal(t, core.NoEdge, weight(t, p.Graph, 1, 1))
}

func TestReadMatrix_FreeFormWhitespace(t *testing.T) {
	p, err := loader.ReadMatrix(strings.NewReader("2 -1 7 7 -1 1 0"))
	require.NoError(t, err)
	require.Equal(t, int64(7), weight(t, p.Graph, 0, 1))
	require.Equal(t, 1, p.Start)
	require.Equal(t, 0, p.End)
}

func TestReadMatrix_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", loader.ErrMalformed},
		{"zero nodes", "0\n0 0\n", loader.ErrMalformed},
		{"negative nodes", "-3\n", loader.ErrMalformed},
		{"not a number", "2\n-1 x\n1 -1\n0 1\n", loader.ErrMalformed},
		{"short matrix", "2\n-1 1\n1\n", loader.ErrMalformed},
		{"missing end", "2\n-1 1\n1 -1\n0\n", loader.ErrMalformed},
		{"start out of range", "2\n-1 1\n1 -1\n2 0\n", loader.ErrStartEnd},
		{"end negative", "2\n-1 1\n1 -1\n0 -1\n", loader.ErrStartEnd},
		{"asymmetric", "2\n-1 1\n3 -1\n0 1\n", loader.ErrAsymmetric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := loader.ReadMatrix(strings.NewReader(tc.input))
			require.Nil(t, p)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadMatrix_LenientSymmetryLastWriteWins(t *testing.T) {
	// (0,1)=1 is written first, then (1,0)=3 overwrites both directions.
	p, err := loader.ReadMatrix(strings.NewReader("2\n-1 1\n3 -1\n0 1\n"), loader.WithLenientSymmetry())
	require.NoError(t, err)
	require.Equal(t, int64(3), weight(t, p.Graph, 0, 1))
	require.Equal(t, int64(3), weight(t, p.Graph, 1, 0))
}

func TestReadYAML_Edges(t *testing.T) {
	doc := `
nodes: 3
start: 0
end: 2
edges:
  - {u: 0, v: 1, weight: 4}
  - {u: 1, v: 2, weight: 4}
  - {u: 2, v: 0, weight: 10}
`
	p, err := loader.ReadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 0, p.Start)
	require.Equal(t, 2, p.End)
	require.Equal(t, int64(10), weight(t, p.Graph, 0, 2))
	require.Equal(t, core.NoEdge, weight(t, p.Graph, 0, 0))
}

func TestReadYAML_MatrixThenEdges(t *testing.T) {
	doc := `
nodes: 2
start: 1
end: 0
matrix:
  - [-1, 9]
  - [9, -1]
edges:
  - {u: 0, v: 1, weight: 2}
`
	p, err := loader.ReadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, int64(2), weight(t, p.Graph, 1, 0))
}

func TestReadYAML_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", loader.ErrMalformed},
		{"missing start", "nodes: 2\nend: 1\n", loader.ErrMalformed},
		{"zero nodes", "nodes: 0\nstart: 0\nend: 0\n", loader.ErrMalformed},
		{"negative weight", "nodes: 2\nstart: 0\nend: 1\nedges:\n  - {u: 0, v: 1, weight: -3}\n", loader.ErrMalformed},
		{"edge out of range", "nodes: 2\nstart: 0\nend: 1\nedges:\n  - {u: 0, v: 5, weight: 1}\n", loader.ErrMalformed},
		{"unknown field", "nodes: 2\nstart: 0\nend: 1\ncolour: red\n", loader.ErrMalformed},
		{"end out of range", "nodes: 2\nstart: 0\nend: 2\n", loader.ErrStartEnd},
		{"matrix rows", "nodes: 3\nstart: 0\nend: 1\nmatrix:\n  - [-1, 1]\n  - [1, -1]\n", loader.ErrMalformed},
		{"matrix asymmetric", "nodes: 2\nstart: 0\nend: 1\nmatrix:\n  - [-1, 1]\n  - [2, -1]\n", loader.ErrAsymmetric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := loader.ReadYAML(strings.NewReader(tc.doc))
			require.Nil(t, p)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_DispatchByExtension(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "Matrix1.txt")
	require.NoError(t, os.WriteFile(txt, []byte(triangle), 0o600))
	p, err := loader.Load(txt)
	require.NoError(t, err)
	require.Equal(t, 3, p.Graph.Size())

	yml := filepath.Join(dir, "problem.yml")
	require.NoError(t, os.WriteFile(yml, []byte("nodes: 1\nstart: 0\nend: 0\n"), 0o600))
	p, err = loader.Load(yml)
	require.NoError(t, err)
	require.Equal(t, 1, p.Graph.Size())

	_, err = loader.Load(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
