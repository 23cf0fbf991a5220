//go:build !unix

package collector

import (
	"os"
	"path/filepath"
	"strings"
)

// directoryIdentity keys a directory by its fully resolved path, folded to
// lower case for case-insensitive filesystems.
func directoryIdentity(absolutePath string, info os.FileInfo) string {
	resolvedPath, resolveError := filepath.EvalSymlinks(absolutePath)
	if resolveError != nil {
		return strings.ToLower(absolutePath)
	}
	return strings.ToLower(resolvedPath)
}
