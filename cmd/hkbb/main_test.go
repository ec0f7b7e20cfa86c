package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hkbb/config"
	"github.com/katalvlaran/hkbb/tsplib"
)

const pentagon = `NAME : house5
TYPE : TSP
DIMENSION : 5
EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 0 0
2 10 0
3 10 10
4 0 10
5 5 10
EOF
`

func writeProblem(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "house5.tsp")
	require.NoError(t, os.WriteFile(path, []byte(pentagon), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestSolve_WritesLengthAndTour(t *testing.T) {
	problem := writeProblem(t)
	tourPath := filepath.Join(t.TempDir(), "out.tour")

	stdout, stderr, err := execute(t, "solve", problem, "--tour", tourPath, "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "The found tour is of length 40\n", stdout)
	assert.Contains(t, stderr, "search finished")

	f, err := os.Open(tourPath)
	require.NoError(t, err)
	defer f.Close()
	tour, err := tsplib.ReadTour(f)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 4, 3}, tour)
}

func TestSolve_TourToStdout(t *testing.T) {
	stdout, _, err := execute(t, "solve", writeProblem(t), "--tour", "-", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, stdout, "The found tour is of length 40\n")
	assert.Contains(t, stdout, "NAME : house5.tour\nTYPE : TOUR\nDIMENSION : 5\nTOUR_SECTION\n1\n2\n3\n5\n4\n-1\nEOF\n")
}

func TestSolve_ConfigFileAndOverrides(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "hkbb.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("search:\n  seed_tour: true\nlog:\n  level: warn\n"), 0o600))

	cmd := newSolveCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", cfgPath, "--workers", "3"}))
	var f solveFlags
	f.config = cfgPath
	f.workers = 3
	cfg, err := f.resolve(cmd)
	require.NoError(t, err)
	assert.True(t, cfg.Search.SeedTour)
	assert.Equal(t, 3, cfg.Search.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := execute(t, "solve")
	require.Error(t, err)

	_, _, err = execute(t, "solve", filepath.Join(t.TempDir(), "missing.tsp"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "solve", writeProblem(t), "--log-level", "loud")
	require.ErrorIs(t, err, config.ErrInvalid)

	bad := filepath.Join(t.TempDir(), "bad.tsp")
	require.NoError(t, os.WriteFile(bad, []byte("DIMENSION: 3\nNODE_COORD_SECTION\n1 0 0\n"), 0o600))
	_, _, err = execute(t, "solve", bad)
	require.ErrorIs(t, err, tsplib.ErrFormat)
}

func TestTourName(t *testing.T) {
	assert.Equal(t, "berlin52.tour", tourName("berlin52", "x.tsp"))
	assert.Equal(t, "a280.tour", tourName("", "/data/a280.tsp"))
}
