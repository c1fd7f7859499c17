package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "z.hcl"))
	writeFile(t, filepath.Join(root, "a", "b.hcl"))
	writeFile(t, filepath.Join(root, "a", "notes.txt"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir.hcl"), 0o755))

	files, err := FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a", "b.hcl"),
		filepath.Join(root, "z.hcl"),
	}, files)

	_, err = FindFilesByExtension(filepath.Join(root, "missing"), ".hcl")
	assert.Error(t, err)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(root, "") })
}

func TestIsDir(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f")
	writeFile(t, file)

	ok, err := IsDir(root)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsDir(file)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsDir(filepath.Join(root, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanonicalPath(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "real", "script.py")
	writeFile(t, target)

	link := filepath.Join(root, "link")
	if err := os.Symlink(filepath.Join(root, "real"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	viaLink, err := CanonicalPath(filepath.Join(link, "script.py"))
	require.NoError(t, err)
	direct, err := CanonicalPath(target)
	require.NoError(t, err)
	assert.Equal(t, direct, viaLink)
}
