package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectReplaysScript(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	require.NoError(t, inspect(filepath.Join("testdata", "borrow.tdb"), &out))

	replay, dump, found := strings.Cut(out.String(), "B+ tree: capacity=4 entries=4 height=2")
	require.True(t, found, out.String())
	assert.Contains(t, replay, `deleted 12 -> "e"`)
	assert.Contains(t, replay, "OK: 4 entries, height 2")
	for _, k := range []string{"5 -> ", "6 -> ", "7 -> ", "10 -> "} {
		assert.Contains(t, dump, k)
	}
	assert.NotContains(t, dump, "12 -> ")
	assert.NotContains(t, dump, "20 -> ")
}

func TestInspectMissingScript(t *testing.T) {
	err := inspect(filepath.Join(t.TempDir(), "nope.tdb"), &bytes.Buffer{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInspectReportsBadLinesAndContinues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tdb")
	require.NoError(t, os.WriteFile(path, []byte("INSERT x y\nINSERT 1 one\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, inspect(path, &out))
	assert.True(t, strings.HasPrefix(out.String(), "Error: "), out.String())
	assert.Contains(t, out.String(), `1 -> "one"`)
}
