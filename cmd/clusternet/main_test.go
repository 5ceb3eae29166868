package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clusternet/builder"
	"github.com/katalvlaran/clusternet/internal/config"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), err
}

func TestFamilies(t *testing.T) {
	out, err := execute(t, "families")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"star  cluster size 6, 5 internal links\n"+
		"ring  cluster size 7, 8 internal links\n"+
		"grid  cluster size 9, 12 internal links\n", out)
}

func TestGenerate(t *testing.T) {
	out, err := execute(t, "generate", "--family", "star", "--clusters", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "star, 2 clusters\n")
	assert.Contains(t, out, "Number of processors: 12\n")
	assert.Contains(t, out, "D: 4\n")
	assert.Contains(t, out, "C: 16\n")
	assert.NotContains(t, out, "┌")

	out, err = execute(t, "generate", "--family", "ring", "--clusters", "1", "--matrix", "--edges", "--engine", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "┌───┬")
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "C: 8\n")
}

func TestSweep(t *testing.T) {
	out, err := execute(t, "sweep", "--family", "grid", "--clusters", "3", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "family,N,D,aD,S,C,T", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "grid,9,4,2,4,12,1"))

	out, err = execute(t, "sweep", "--family", "ring", "--clusters", "2")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
}

func TestRun_FromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output:
  format: csv
runs:
  - family: star
    clusters: 1
  - family: ring
    clusters: 2
    sweep: true
`), 0o600))

	out, err := execute(t, "--config", path, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "star, 1 clusters\n")
	assert.Contains(t, out, "C: 5\n")
	assert.Contains(t, out, "family,N,D,aD,S,C,T\n")
	assert.Contains(t, out, "ring,14,3,")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"zero clusters", []string{"generate", "--family", "star", "--clusters", "0"}, builder.ErrInvalidArgument},
		{"too many clusters", []string{"generate", "--family", "grid", "--clusters", "101"}, builder.ErrInvalidArgument},
		{"sweep past the cap", []string{"sweep", "--family", "ring", "--clusters", "1000"}, builder.ErrInvalidArgument},
		{"unknown family", []string{"generate", "--family", "torus"}, nil},
		{"missing family", []string{"sweep", "--clusters", "2"}, nil},
		{"bad level", []string{"--log-level", "loud", "families"}, config.ErrInvalidConfig},
		{"bad engine", []string{"--engine", "dijkstra", "families"}, config.ErrInvalidConfig},
		{"bad format", []string{"sweep", "--family", "ring", "--format", "xml"}, config.ErrInvalidConfig},
		{"run without runs", []string{"run"}, config.ErrInvalidConfig},
		{"missing config", []string{"--config", "/nonexistent/clusternet.yaml", "families"}, config.ErrInvalidConfig},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.Error(t, err)
			if tc.is != nil {
				require.ErrorIs(t, err, tc.is)
			}
		})
	}
}
