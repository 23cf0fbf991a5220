//go:build unix

package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// directoryIdentity keys a directory by device and inode so every path that
// reaches it through links resolves to the same identity.
func directoryIdentity(absolutePath string, info os.FileInfo) string {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return fmt.Sprintf("%d:%d", stat.Dev, stat.Ino)
	}
	if resolvedPath, resolveError := filepath.EvalSymlinks(absolutePath); resolveError == nil {
		return resolvedPath
	}
	return absolutePath
}
