package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRun_TextOutput(t *testing.T) {
	out, err := runCmd(t, "", "--seeds", "3", "--iterations", "10", "0-9")
	require.NoError(t, err)

	assert.Contains(t, out, "seeds:")
	assert.Contains(t, out, "0 (4): 0 1 2 3")
	assert.Contains(t, out, "2 (3): 7 8 9")
}

func TestRun_StdinInput(t *testing.T) {
	out, err := runCmd(t, "0 1 2 3 4 5 6 7 8 9", "--seeds", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "clusters:")
}

func TestRun_CSVExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	_, err := runCmd(t, "", "--seeds", "2", "--csv", path, "1", "2", "9", "10")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "cluster_id,value\n"))
}

func TestRun_InvalidToken(t *testing.T) {
	_, err := runCmd(t, "", "1", "2", "oops")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oops")
}

func TestRun_InvalidSeedCount(t *testing.T) {
	_, err := runCmd(t, "", "--seeds", "0", "1", "2", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed count")
}

func TestRun_UnknownInitMethod(t *testing.T) {
	_, err := runCmd(t, "", "--init", "median", "1", "2", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "median")
}
