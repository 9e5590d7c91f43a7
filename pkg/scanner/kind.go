package scanner

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/sweep/pkg/errors"
)

// Kind classifies a directory entry
type Kind int

const (
	// KindOther covers symlinks, sockets, devices and pipes. They never match.
	KindOther Kind = iota
	KindFile
	KindDir
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "other"
	}
}

// ParseKind parses "dir" or "file" (case insensitive)
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dir", "directory":
		return KindDir, nil
	case "file":
		return KindFile, nil
	}
	return KindOther, errors.Newf(errors.ErrInvalidInput, "unknown entry kind %q", s).
		WithDetail("kind", s)
}

// KindOf classifies an entry from its type bits. Symlinks are not followed.
func KindOf(entry fs.DirEntry) Kind {
	t := entry.Type()
	switch {
	case t.IsDir():
		return KindDir
	case t.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}
