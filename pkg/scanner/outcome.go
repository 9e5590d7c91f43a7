package scanner

import "io/fs"

// Control tells the walker what to do after a handler ran
type Control int

const (
	// ControlPrune stops rule evaluation for the entry and drops a matched
	// directory from the descent queue.
	ControlPrune Control = iota
	// ControlContinue lets the next matching rule run against the entry.
	ControlContinue
	// ControlDescend stops rule evaluation and keeps a matched directory
	// queued for descent.
	ControlDescend
)

func (c Control) String() string {
	switch c {
	case ControlContinue:
		return "continue"
	case ControlDescend:
		return "descend"
	default:
		return "prune"
	}
}

// Info describes the entry a handler was invoked for. The slices are
// copies owned by the handler.
type Info struct {
	// Path is the absolute path of the entry
	Path string
	// Entry is the matched entry
	Entry fs.DirEntry
	// Entries is the full listing of the current directory
	Entries []fs.DirEntry
	// Remaining holds the entries of this level not processed yet
	Remaining []fs.DirEntry
	// Next holds the directories queued for descent so far
	Next []fs.DirEntry
}

// Kind returns the classification of the matched entry
func (i Info) Kind() Kind {
	return KindOf(i.Entry)
}

// Outcome is returned by a handler. The zero value prunes.
type Outcome struct {
	Control Control

	remaining    []fs.DirEntry
	hasRemaining bool
	next         []fs.DirEntry
	hasNext      bool
}

// Prune returns an Outcome that stops rule evaluation and skips descent
func Prune() Outcome { return Outcome{Control: ControlPrune} }

// Continue returns an Outcome that falls through to the next rule
func Continue() Outcome { return Outcome{Control: ControlContinue} }

// Descend returns an Outcome that stops rule evaluation and keeps descent
func Descend() Outcome { return Outcome{Control: ControlDescend} }

// WithRemaining replaces the level's remaining queue once the handler returns.
// Re-queuing a directory that was already processed queues it for descent
// again, so its subtree is scanned twice. Directories that are not part of
// the current listing run through the rules but are never descended into.
func (o Outcome) WithRemaining(entries []fs.DirEntry) Outcome {
	o.remaining = append([]fs.DirEntry(nil), entries...)
	o.hasRemaining = true
	return o
}

// WithNext replaces the level's descent queue once the handler returns.
// Entries that are not directories of the current level are dropped.
func (o Outcome) WithNext(entries []fs.DirEntry) Outcome {
	o.next = append([]fs.DirEntry(nil), entries...)
	o.hasNext = true
	return o
}

// Handler is invoked for an entry matching a rule
type Handler func(info Info) (Outcome, error)
