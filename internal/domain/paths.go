package domain

import (
	"path/filepath"
	"strconv"
	"strings"
)

// NormalizePath resolves rawPath against projectRoot and classifies it.
// Paths contained in the root come back root-relative with owned=true;
// anything else comes back as the resolved absolute path with owned=false.
// Pure: no filesystem access, never fails.
func NormalizePath(rawPath, projectRoot string) (path string, owned bool) {
	root := filepath.Clean(projectRoot)

	abs := rawPath
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root, abs)
	}
	abs = filepath.Clean(abs)

	if abs == root {
		return "", true
	}

	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if strings.HasPrefix(abs, prefix) {
		return abs[len(prefix):], true
	}
	return abs, false
}

// ChainVariantPath computes the chain-qualified variant of a module path by
// inserting -<chainID> immediately before the final segment's extension:
// modules/lock.yaml -> modules/lock-137.yaml. Extensionless paths get the
// suffix appended to the final segment.
func ChainVariantPath(path string, chainID uint64) string {
	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return dir + stem + "-" + strconv.FormatUint(chainID, 10) + ext
}
