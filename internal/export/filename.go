package export

import (
	"path/filepath"
	"strings"
)

// BaseName strips the extension from a path, so a file-dialog result like
// "template.png" can serve as the common base for every format.
func BaseName(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext)
}

// BuildPath returns base + suffix + ext.
func BuildPath(base, suffix, ext string) string {
	return base + suffix + ext
}
