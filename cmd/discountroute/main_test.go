package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/discountroute/loader"
)

const triangle = `3
-1  4 10
 4 -1  4
10  4 -1
0 2
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestSolve(t *testing.T) {
	in := writeFile(t, "triangle.txt", triangle)

	out, _, err := execute(t, "solve", in)
	require.NoError(t, err)
	assert.Equal(t,
		"Minimum price for transport of goods without discount: 8.0, Route: [0, 1, 2]\n"+
			"Minimum price for transporting goods at a discount: 5.0, Route: [0, 2]\n",
		out)
}

func TestSolve_FlagsOverrideConfig(t *testing.T) {
	in := writeFile(t, "triangle.txt", triangle)
	cfg := writeFile(t, "run.yaml", "end: 2\nworkers: 2\nlog:\n  level: info\n  format: json\n")
	dir := t.TempDir()
	dotPath := filepath.Join(dir, "route.dot")
	promPath := filepath.Join(dir, "run.prom")

	out, logs, err := execute(t, "solve",
		"--config", cfg,
		"--end", "1",
		"--enumeration", "upper-triangle",
		"--dot", dotPath,
		"--metrics-file", promPath,
		in)
	require.NoError(t, err)
	assert.Equal(t,
		"Minimum price for transport of goods without discount: 4.0, Route: [0, 1]\n"+
			"Minimum price for transporting goods at a discount: 2.0, Route: [0, 1]\n",
		out)
	assert.Contains(t, logs, `"run_id"`)
	assert.Contains(t, logs, "search done")

	dotText, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.Contains(t, string(dotText), `"4->2"`)

	prom, err := os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "discountroute_trials_total")
}

func TestDot(t *testing.T) {
	in := writeFile(t, "triangle.txt", triangle)

	out, _, err := execute(t, "dot", in)
	require.NoError(t, err)
	assert.Contains(t, out, "graph route")
	assert.Contains(t, out, `"10->5"`)
}

func TestSolve_LoadFailure(t *testing.T) {
	in := writeFile(t, "bad.txt", "3\n1 2\n")

	_, logs, err := execute(t, "solve", in)
	require.ErrorIs(t, err, loader.ErrMalformed)
	assert.Contains(t, logs, "load problem failed")
}

func TestSolve_Asymmetric(t *testing.T) {
	in := writeFile(t, "asym.txt", "2\n-1 5\n7 -1\n0 1\n")

	_, _, err := execute(t, "solve", in)
	require.ErrorIs(t, err, loader.ErrAsymmetric)

	out, _, err := execute(t, "solve", "--lenient", in)
	require.NoError(t, err)
	assert.Contains(t, out, "without discount: 7.0")
}

func TestSolve_InvalidFlags(t *testing.T) {
	in := writeFile(t, "triangle.txt", triangle)

	_, _, err := execute(t, "solve", "--workers", "0", in)
	require.Error(t, err)

	_, _, err = execute(t, "solve", "--enumeration", "diagonal", in)
	require.Error(t, err)

	_, _, err = execute(t, "solve")
	require.Error(t, err)
}
