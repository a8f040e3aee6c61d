// Package util - Filesystem helpers for batch input.
package util

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var supportedImageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

// IsImageFile reports whether the path has a supported image extension.
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range supportedImageExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// ImagePaths lists the image files directly under dir, sorted by name for
// deterministic batch order.
//
// Arguments:
//   - dir: Directory to enumerate. Subdirectories are not descended into.
//
// Returns:
//   - []string: Full paths of the contained images.
//   - error: Error if the directory cannot be read.
func ImagePaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read directory %s", dir)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsImageFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
