package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde will resolve to the correct location on disk.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
