package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic_NewFile(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.html")

	require.NoError(t, WriteFileAtomic(dest, []byte("<html></html>"), 0o644))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, "<html></html>", string(data))
}

func TestWriteFileAtomic_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.html")
	require.NoError(t, os.WriteFile(dest, []byte("old"), 0o644))

	require.NoError(t, WriteFileAtomic(dest, []byte("new"), 0o644))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestWriteFileAtomic_NoTempResidue(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.html")

	require.NoError(t, WriteFileAtomic(dest, []byte("content"), 0o644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.False(t, strings.Contains(e.Name(), ".tmp-"), "staging file left behind: %s", e.Name())
	}
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nope", "out.html")

	err := WriteFileAtomic(dest, []byte("content"), 0o644)
	require.Error(t, err)
}

func TestFileSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0o644))

	n, err := FileSize(path)
	require.NoError(t, err)
	require.EqualValues(t, 5, n)
}
