package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{0xff}, 0o644))
}

func TestImagePaths(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.png")
	touch(t, dir, "a.jpg")
	touch(t, dir, "notes.txt")
	touch(t, dir, "c.JPEG")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	paths, err := ImagePaths(dir)

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "c.JPEG"),
	}, paths, "sorted, images only, no recursion")
}

func TestImagePathsMissingDirectory(t *testing.T) {
	_, err := ImagePaths(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestIsImageFile(t *testing.T) {
	assert.True(t, IsImageFile("x/y/photo.jpg"))
	assert.True(t, IsImageFile("photo.BMP"))
	assert.False(t, IsImageFile("archive.zip"))
	assert.False(t, IsImageFile("noext"))
}
