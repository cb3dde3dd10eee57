package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunPositional_CleanMergeExitsZero(t *testing.T) {
	dir := t.TempDir()
	base := writeTemp(t, dir, "base.txt", "a\nb\nc\n")
	left := writeTemp(t, dir, "left.txt", "a\nB\nc\n")
	right := writeTemp(t, dir, "right.txt", "a\nb\nc\n")

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{base, left, right})

	err := root.Execute()
	require.NoError(t, err)

	merged, readErr := os.ReadFile(left)
	require.NoError(t, readErr)
	assert.Equal(t, "a\nB\nc\n", string(merged))
}

func TestRunPositional_MissingFileIsIOError(t *testing.T) {
	dir := t.TempDir()
	root := newRootCmd()
	root.SetArgs([]string{
		filepath.Join(dir, "nope-base.txt"),
		filepath.Join(dir, "nope-left.txt"),
		filepath.Join(dir, "nope-right.txt"),
	})
	var out bytes.Buffer
	root.SetOut(&out)
	err := root.Execute()
	assert.Error(t, err)
}

func TestRunStdin_ResolvesConvergentMarker(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"--stdin"})

	in := "<<<<<<<\nLEFT\n=======\nRIGHT\n>>>>>>>\n"
	root.SetIn(bytes.NewBufferString(in))
	var out bytes.Buffer
	root.SetOut(&out)

	// runStdin calls os.Exit(1) on unresolved input, which would kill the
	// test binary; use a scenario that the pattern pipeline resolves so
	// Execute returns normally.
	in = "<<<<<<<\nsame\n=======\nsame\n>>>>>>>\n"
	root.SetIn(bytes.NewBufferString(in))

	err := root.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "same")
}
