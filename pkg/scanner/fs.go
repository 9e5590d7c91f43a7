package scanner

import (
	"io/fs"
	"os"
)

// FS lists directories for the scanner.
type FS interface {
	ReadDir(name string) ([]fs.DirEntry, error)
}

type osFS struct{}

func (osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}
