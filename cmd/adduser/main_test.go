package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRequiresUsername(t *testing.T) {
	var out, errBuf bytes.Buffer

	err := run(nil, strings.NewReader(""), &out, &errBuf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user")
}

func TestReadPasswordFromPipe(t *testing.T) {
	password, err := readPassword(strings.NewReader("hunter2\n"))
	require.NoError(t, err)
	assert.Equal(t, "hunter2", password)
}

func TestRunCreatesUser(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_FILE", filepath.Join(dir, "missing.toml"))
	t.Setenv("DB_PATH", filepath.Join(dir, "test.db"))

	var out, errBuf bytes.Buffer
	err := run([]string{"-user", "alice", "-password", "pw"}, strings.NewReader(""), &out, &errBuf)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "User alice created")

	// A second run with the same username hits the unique constraint.
	err = run([]string{"-user", "alice", "-password", "pw"}, strings.NewReader(""), &out, &errBuf)
	require.Error(t, err)
}
