package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	root := filepath.FromSlash("/home/alice/project")

	tests := []struct {
		name      string
		raw       string
		wantPath  string
		wantOwned bool
	}{
		{
			name:      "relative path inside root",
			raw:       "modules/lock.yaml",
			wantPath:  filepath.FromSlash("modules/lock.yaml"),
			wantOwned: true,
		},
		{
			name:      "absolute path inside root",
			raw:       filepath.FromSlash("/home/alice/project/modules/lock.yaml"),
			wantPath:  filepath.FromSlash("modules/lock.yaml"),
			wantOwned: true,
		},
		{
			name:      "absolute path outside root",
			raw:       filepath.FromSlash("/tmp/elsewhere/mod.yaml"),
			wantPath:  filepath.FromSlash("/tmp/elsewhere/mod.yaml"),
			wantOwned: false,
		},
		{
			name:      "relative path escaping root",
			raw:       filepath.FromSlash("../other/mod.yaml"),
			wantPath:  filepath.FromSlash("/home/alice/other/mod.yaml"),
			wantOwned: false,
		},
		{
			name:      "dot segments collapse inside root",
			raw:       filepath.FromSlash("modules/../modules/./lock.yaml"),
			wantPath:  filepath.FromSlash("modules/lock.yaml"),
			wantOwned: true,
		},
		{
			name:      "sibling directory with root prefix is not owned",
			raw:       filepath.FromSlash("/home/alice/project-backup/mod.yaml"),
			wantPath:  filepath.FromSlash("/home/alice/project-backup/mod.yaml"),
			wantOwned: false,
		},
		{
			name:      "root itself",
			raw:       filepath.FromSlash("/home/alice/project"),
			wantPath:  "",
			wantOwned: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, owned := NormalizePath(tt.raw, root)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantOwned, owned)
		})
	}

	t.Run("owned paths never carry a leading separator", func(t *testing.T) {
		path, owned := NormalizePath("a/b/c.yaml", root)
		assert.True(t, owned)
		assert.False(t, filepath.IsAbs(path))
	})

	t.Run("trailing separator on root is irrelevant", func(t *testing.T) {
		path, owned := NormalizePath("modules/lock.yaml", root+string(filepath.Separator))
		assert.True(t, owned)
		assert.Equal(t, filepath.FromSlash("modules/lock.yaml"), path)
	})
}

func TestChainVariantPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		chainID uint64
		want    string
	}{
		{"with extension", "modules/lock.yaml", 137, "modules/lock-137.yaml"},
		{"nested path", "a/b/mod.yaml", 31337, "a/b/mod-31337.yaml"},
		{"external package path", "openzeppelin/governor", 137, "openzeppelin/governor-137"},
		{"bare filename", "lock.yaml", 1, "lock-1.yaml"},
		{"multiple dots", "mod.v2.yaml", 5, "mod.v2-5.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChainVariantPath(filepath.FromSlash(tt.path), tt.chainID)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}
