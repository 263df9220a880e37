package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "--list")
	require.NoError(t, err)
	names := strings.Fields(out)
	assert.Contains(t, names, "tables")
	assert.Contains(t, names, "arith")
	assert.Contains(t, names, "mask")
}

func TestRunTable(t *testing.T) {
	out, _, err := execute(t, "--suite", "tables", "--suite", "shift", "--iterations", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "SUITE")
	assert.Regexp(t, `tables\s+\d+\s+0\s+ok`, out)
	assert.Regexp(t, `shift\s+\d+\s+0\s+ok`, out)
	assert.NotContains(t, out, "arith")
}

func TestRunJSON(t *testing.T) {
	out, _, err := execute(t, "--suite", "mask,reduce", "--iterations", "3", "--seed", "9", "--json")
	require.NoError(t, err)

	var s summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.True(t, s.Passed)
	assert.Equal(t, uint64(9), s.Seed)
	assert.Equal(t, 3, s.Iterations)
	require.Len(t, s.Reports, 2)
	assert.Equal(t, "reduce", s.Reports[0].Suite)
	assert.Equal(t, "mask", s.Reports[1].Suite)
	for _, r := range s.Reports {
		assert.Positive(t, r.Checks)
		assert.Zero(t, r.Failures)
	}
}

func TestUnknownSuite(t *testing.T) {
	_, _, err := execute(t, "--suite", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}
