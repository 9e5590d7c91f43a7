package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Tree creates a directory tree under a fresh temp dir and returns its
// root. Paths ending in "/" are directories, everything else is an empty
// file. Parents are created as needed.
//
//	root := testutil.Tree(t, "node_modules/pkg/index.js", "src/", "readme.md")
func Tree(t testing.TB, paths ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			require.NoError(t, os.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, nil, 0644))
	}
	return root
}

// MemoryTree builds a MemoryFS holding the given paths below root, with
// the same conventions as Tree.
func MemoryTree(t testing.TB, root string, paths ...string) *MemoryFS {
	t.Helper()

	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll(root, 0755))
	for _, p := range paths {
		full := filepath.Join(root, p)
		if strings.HasSuffix(p, "/") {
			require.NoError(t, m.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, m.WriteFile(full, nil, 0644))
	}
	return m
}
