package scanner

import (
	"context"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// walker runs one scan. Each level owns its queues; only the rule snapshot
// and the collaborators are shared between concurrent levels.
type walker struct {
	rules   []Rule
	fs      FS
	logger  zerolog.Logger
	onError func(error)
}

// scan processes dir and then every queued subdirectory concurrently.
func (w *walker) scan(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	next, err := w.walkLevel(dir)
	if err != nil {
		return err
	}

	// No WithContext: a failing branch must not cancel its siblings.
	var g errgroup.Group
	for _, entry := range next {
		child := filepath.Join(dir, entry.Name())
		g.Go(func() error {
			return w.scan(ctx, child)
		})
	}
	return g.Wait()
}

// walkLevel drains one directory against the rules and returns the
// directories to descend into.
func (w *walker) walkLevel(dir string) ([]fs.DirEntry, error) {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		w.report(dir, err)
		return nil, nil
	}

	w.logger.Trace().
		Str("dir", dir).
		Int("entries", len(entries)).
		Msg("Listed directory")

	dirs := dirNames(entries)
	remaining := partition(entries)
	var next []fs.DirEntry

	for len(remaining) > 0 {
		entry := remaining[0]
		remaining = remaining[1:]

		kind := KindOf(entry)
		if kind == KindOther {
			continue
		}
		// Entries injected through WithRemaining still run through the
		// rules but are only queued when they belong to this listing.
		if kind == KindDir && dirs[entry.Name()] {
			next = append(next, entry)
		}

		path := filepath.Join(dir, entry.Name())

		for _, rule := range w.rules {
			if rule.Kind != kind || !rule.Matcher.Match(entry.Name()) {
				continue
			}

			w.logger.Debug().
				Str("path", path).
				Str("rule", rule.String()).
				Msg("Entry matched rule")

			out, err := rule.Handler(Info{
				Path:      path,
				Entry:     entry,
				Entries:   clone(entries),
				Remaining: clone(remaining),
				Next:      clone(next),
			})
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrHandler, "handler for %s failed on %s", rule, path).
					WithDetail("path", path).
					WithDetail("rule", rule.String())
			}

			if out.hasRemaining {
				remaining = out.remaining
			}
			if out.hasNext {
				next = w.levelDirs(dir, dirs, out.next)
			}

			if out.Control == ControlContinue {
				continue
			}
			if out.Control == ControlPrune && kind == KindDir {
				next = removeLast(next, entry.Name())
			}
			break
		}
	}

	return next, nil
}

// report logs a listing failure and forwards it to the error handler
func (w *walker) report(dir string, cause error) {
	err := errors.Wrapf(cause, errors.ErrListing, "cannot list %s", dir).
		WithDetail("path", dir).
		WithDetail("reason", Reason(cause))

	w.logger.Error().
		Err(cause).
		Str("code", Reason(cause)).
		Str("path", dir).
		Msg("Cannot list directory")

	if w.onError != nil {
		w.onError(err)
	}
}

// dirNames returns the names of the directories in a listing
func dirNames(entries []fs.DirEntry) map[string]bool {
	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		if KindOf(e) == KindDir {
			names[e.Name()] = true
		}
	}
	return names
}

// levelDirs keeps the entries that are directories of the current level
func (w *walker) levelDirs(dir string, names map[string]bool, candidates []fs.DirEntry) []fs.DirEntry {
	kept := candidates[:0]
	for _, c := range candidates {
		if KindOf(c) != KindDir || !names[c.Name()] {
			w.logger.Debug().
				Str("dir", dir).
				Str("entry", c.Name()).
				Msg("Dropping descent entry that is not a directory of this level")
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// Reason returns a short errno style code for a listing failure
func Reason(err error) string {
	switch {
	case stderrors.Is(err, fs.ErrPermission):
		return "EACCES"
	case stderrors.Is(err, fs.ErrNotExist):
		return "ENOENT"
	case stderrors.Is(err, syscall.ENOTDIR):
		return "ENOTDIR"
	}

	var errno syscall.Errno
	if stderrors.As(err, &errno) {
		return errno.Error()
	}
	return string(errors.ErrListing)
}

// partition returns the files of entries followed by the directories,
// keeping the relative order within each group. Other kinds are left out.
func partition(entries []fs.DirEntry) []fs.DirEntry {
	ordered := make([]fs.DirEntry, 0, len(entries))
	for _, want := range []Kind{KindFile, KindDir} {
		for _, e := range entries {
			if KindOf(e) == want {
				ordered = append(ordered, e)
			}
		}
	}
	return ordered
}

func removeLast(entries []fs.DirEntry, name string) []fs.DirEntry {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Name() == name {
			return append(entries[:i:i], entries[i+1:]...)
		}
	}
	return entries
}

func clone(entries []fs.DirEntry) []fs.DirEntry {
	return append([]fs.DirEntry(nil), entries...)
}
