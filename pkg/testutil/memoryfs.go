package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

// MemoryFS is an in-memory filesystem implementing scanner.FS
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*fileNode

	// Error injection
	errorPaths map[string]error

	// Every path passed to ReadDir, in call order
	listed []string
}

// fileNode represents a file, directory or special node in memory
type fileNode struct {
	name     string
	mode     os.FileMode
	modTime  time.Time
	content  []byte
	isDir    bool
	children map[string]*fileNode
}

// NewMemoryFS creates a new in-memory filesystem
func NewMemoryFS() *MemoryFS {
	root := &fileNode{
		name:     "/",
		mode:     0755 | os.ModeDir,
		modTime:  time.Now(),
		isDir:    true,
		children: make(map[string]*fileNode),
	}

	return &MemoryFS{
		files:      map[string]*fileNode{"/": root},
		errorPaths: make(map[string]error),
	}
}

// normalizePath converts a path to absolute form
func normalizePath(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join("/", path)
	}
	return filepath.Clean(path)
}

// getNode retrieves a node at the given path
func (m *MemoryFS) getNode(path string) (*fileNode, error) {
	path = normalizePath(path)

	// Check for injected errors
	if err, ok := m.errorPaths[path]; ok {
		return nil, err
	}

	node, exists := m.files[path]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	return node, nil
}

// WriteFile creates a regular file, creating parent directories as needed
func (m *MemoryFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	return m.add(name, &fileNode{
		mode:    perm,
		modTime: time.Now(),
		content: append([]byte(nil), data...),
	})
}

// Symlink creates a symbolic link node. The scanner never follows it.
func (m *MemoryFS) Symlink(target, link string) error {
	return m.add(link, &fileNode{
		mode:    0777 | os.ModeSymlink,
		modTime: time.Now(),
		content: []byte(target),
	})
}

// Mkfifo creates a named pipe node
func (m *MemoryFS) Mkfifo(name string) error {
	return m.add(name, &fileNode{
		mode:    0644 | os.ModeNamedPipe,
		modTime: time.Now(),
	})
}

func (m *MemoryFS) add(name string, node *fileNode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalizePath(name)
	if _, exists := m.files[path]; exists {
		return &fs.PathError{Op: "create", Path: path, Err: fs.ErrExist}
	}

	// Create parent directories if they don't exist
	parent := filepath.Dir(path)
	if err := m.mkdirAll(parent, 0755); err != nil {
		return err
	}

	node.name = filepath.Base(path)
	m.files[parent].children[node.name] = node
	m.files[path] = node
	return nil
}

// MkdirAll creates a directory and all necessary parents
func (m *MemoryFS) MkdirAll(path string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.mkdirAll(path, perm)
}

// mkdirAll is the internal implementation without locking
func (m *MemoryFS) mkdirAll(path string, perm os.FileMode) error {
	path = normalizePath(path)

	if node, ok := m.files[path]; ok {
		if !node.isDir {
			return &fs.PathError{Op: "mkdir", Path: path, Err: syscall.ENOTDIR}
		}
		return nil
	}

	parts := strings.Split(path, "/")
	current := "/"
	currentNode := m.files["/"]

	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}

		next := filepath.Join(current, parts[i])

		if child, exists := currentNode.children[parts[i]]; exists {
			if !child.isDir {
				return &fs.PathError{Op: "mkdir", Path: next, Err: syscall.ENOTDIR}
			}
			currentNode = child
			current = next
			continue
		}

		newDir := &fileNode{
			name:     parts[i],
			mode:     perm | os.ModeDir,
			modTime:  time.Now(),
			isDir:    true,
			children: make(map[string]*fileNode),
		}

		currentNode.children[parts[i]] = newDir
		m.files[next] = newDir

		currentNode = newDir
		current = next
	}

	return nil
}

// ReadDir reads a directory and returns its entries sorted by name, as
// os.ReadDir does
func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listed = append(m.listed, normalizePath(name))

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}

	if !node.isDir {
		return nil, &fs.PathError{Op: "readdirent", Path: name, Err: syscall.ENOTDIR}
	}

	entries := make([]fs.DirEntry, 0, len(node.children))
	for childName, child := range node.children {
		entries = append(entries, &dirEntry{
			name: childName,
			info: &fileInfo{node: child, name: childName},
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	return entries, nil
}

// WithError configures the filesystem to return an error for a specific path
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorPaths[normalizePath(path)] = err
	return m
}

// Listed returns every path passed to ReadDir so far, sorted
func (m *MemoryFS) Listed() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	listed := append([]string(nil), m.listed...)
	sort.Strings(listed)
	return listed
}

// WasListed reports whether ReadDir was called for path
func (m *MemoryFS) WasListed(path string) bool {
	path = normalizePath(path)
	for _, p := range m.Listed() {
		if p == path {
			return true
		}
	}
	return false
}

// Entry returns the directory entry of an existing path, for tests that
// inject entries into scanner queues
func (m *MemoryFS) Entry(path string) (fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode(path)
	if err != nil {
		return nil, err
	}
	return &dirEntry{name: node.name, info: &fileInfo{node: node, name: node.name}}, nil
}

// fileInfo implements os.FileInfo
type fileInfo struct {
	node *fileNode
	name string
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *fileInfo) Mode() os.FileMode  { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.isDir }
func (fi *fileInfo) Sys() interface{}   { return fi.node }

// dirEntry implements fs.DirEntry
type dirEntry struct {
	name string
	info os.FileInfo
}

func (de *dirEntry) Name() string               { return de.name }
func (de *dirEntry) IsDir() bool                { return de.info.IsDir() }
func (de *dirEntry) Type() os.FileMode          { return de.info.Mode().Type() }
func (de *dirEntry) Info() (os.FileInfo, error) { return de.info, nil }
