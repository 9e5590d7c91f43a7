package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/logging"
	"github.com/arthur-debert/sweep/pkg/output/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Match is one reported entry
type Match struct {
	Path    string `json:"path" yaml:"path"`
	Kind    string `json:"kind" yaml:"kind"`
	Pattern string `json:"pattern" yaml:"pattern"`
}

// Problem is a directory that could not be listed
type Problem struct {
	Path    string `json:"path" yaml:"path"`
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Document is the json and yaml output
type Document struct {
	Root     string    `json:"root" yaml:"root"`
	Matches  []Match   `json:"matches" yaml:"matches"`
	Problems []Problem `json:"problems,omitempty" yaml:"problems,omitempty"`
}

// Options configures a Sink
type Options struct {
	Format  string
	NoColor bool
	Root    string
	Out     io.Writer
	Err     io.Writer
}

// Sink collects scan results. It is safe for concurrent use.
type Sink struct {
	mu       sync.Mutex
	opts     Options
	styles   styles.Registry
	matches  []Match
	problems []Problem
	closed   bool
}

// NewSink creates a sink writing to opts.Out and opts.Err
func NewSink(opts Options) (*Sink, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}

	switch opts.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown output format %q", opts.Format).
			WithDetail("format", opts.Format)
	}

	renderer := lipgloss.NewRenderer(opts.Out)
	if !UseColor(opts.Out, opts.NoColor) {
		renderer.SetColorProfile(termenv.Ascii)
	}

	registry, err := styles.Load(renderer)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load styles")
	}

	logger := logging.GetLogger("output.sink")
	logger.Debug().
		Str("format", opts.Format).
		Str("colorProfile", fmt.Sprintf("%v", renderer.ColorProfile())).
		Msg("Created sink")

	return &Sink{opts: opts, styles: registry}, nil
}

// UseColor reports whether styled output should be written to w
func UseColor(w io.Writer, noColor bool) bool {
	if noColor || termenv.EnvNoColor() {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Report records a match. In text mode the path is written immediately.
func (s *Sink) Report(m Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches = append(s.matches, m)
	if s.opts.Format != FormatText {
		return nil
	}

	style := styles.File
	if m.Kind == "dir" {
		style = styles.Dir
	}
	if _, err := fmt.Fprintln(s.opts.Out, s.styles.Render(style, m.Path)); err != nil {
		return errors.Wrap(err, errors.ErrOutput, "failed to write match")
	}
	return nil
}

// ReportError records a listing problem. Errors without a path detail are
// recorded with an empty path.
func (s *Sink) ReportError(err error) {
	p := Problem{Message: err.Error()}
	if details := errors.GetErrorDetails(err); details != nil {
		p.Path, _ = details["path"].(string)
		p.Code, _ = details["reason"].(string)
	}
	if p.Code == "" {
		p.Code = string(errors.GetErrorCode(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.problems = append(s.problems, p)
	if s.opts.Format == FormatText {
		_, _ = fmt.Fprintln(s.opts.Err, s.styles.Render(styles.ErrorCode, p.Code), s.styles.Render(styles.Path, p.Path))
	}
}

// Matches returns the recorded matches sorted by path
func (s *Sink) Matches() []Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedMatches(s.matches)
}

// Problems returns the recorded problems sorted by path
func (s *Sink) Problems() []Problem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedProblems(s.problems)
}

// Close writes the document in json and yaml mode. It is a no-op in text
// mode and on repeated calls.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	doc := Document{
		Root:     s.opts.Root,
		Matches:  sortedMatches(s.matches),
		Problems: sortedProblems(s.problems),
	}

	var err error
	switch s.opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(s.opts.Out)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(s.opts.Out)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrOutput, "failed to write %s output", s.opts.Format)
	}
	return nil
}

func sortedMatches(matches []Match) []Match {
	out := append([]Match{}, matches...)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func sortedProblems(problems []Problem) []Problem {
	out := append([]Problem(nil), problems...)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
