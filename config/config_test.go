package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/discountroute/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, "ordered-pairs", cfg.Enumeration)
	assert.Nil(t, cfg.Start)
	assert.Nil(t, cfg.End)
}

func TestRead(t *testing.T) {
	const doc = `
input: graph.txt
start: 1
end: 3
lenient: true
enumeration: upper-triangle
workers: 4
log:
  level: debug
  format: json
output:
  color: true
  dot: out.dot
  metrics_file: run.prom
`
	cfg, err := config.Read(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "graph.txt", cfg.Input)
	require.NotNil(t, cfg.Start)
	require.NotNil(t, cfg.End)
	assert.Equal(t, 1, *cfg.Start)
	assert.Equal(t, 3, *cfg.End)
	assert.True(t, cfg.Lenient)
	assert.Equal(t, "upper-triangle", cfg.Enumeration)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, config.Log{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, config.Output{Color: true, DOT: "out.dot", MetricsFile: "run.prom"}, cfg.Output)
}

func TestRead_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Read(strings.NewReader("workers: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestRead_Empty(t *testing.T) {
	cfg, err := config.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestRead_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero workers":     "workers: 0\n",
		"bad enumeration":  "enumeration: diagonal\n",
		"bad level":        "log:\n  level: loud\n",
		"bad format":       "log:\n  format: xml\n",
		"negative start":   "start: -1\n",
		"too many workers": "workers: 5000\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Read(strings.NewReader(doc))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestRead_UnknownKey(t *testing.T) {
	_, err := config.Read(strings.NewReader("wrokers: 2\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 3\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
