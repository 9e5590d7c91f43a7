package scanner

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/logging"
	"github.com/rs/zerolog"
)

// Rule binds an entry kind and a matcher to a handler
type Rule struct {
	Kind    Kind
	Matcher Matcher
	Handler Handler
}

func (r Rule) String() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.Matcher)
}

// Scanner holds an ordered rule registry and walks trees against it.
// Rules can only be registered before the first call to Scan. Dir and File
// panic on invalid patterns; use Register when the pattern comes from
// user input.
type Scanner struct {
	mu      sync.Mutex
	rules   []Rule
	sealed  bool
	fs      FS
	logger  zerolog.Logger
	onError func(error)
}

// Option configures a Scanner
type Option func(*Scanner)

// WithFS sets the filesystem used to list directories
func WithFS(fsys FS) Option {
	return func(s *Scanner) { s.fs = fsys }
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scanner) { s.logger = logger }
}

// WithErrorHandler sets a callback receiving every listing error. It is
// called from concurrent branches and must be safe for concurrent use.
func WithErrorHandler(fn func(error)) Option {
	return func(s *Scanner) { s.onError = fn }
}

// New creates a scanner with an empty registry
func New(opts ...Option) *Scanner {
	s := &Scanner{
		fs:     osFS{},
		logger: logging.GetLogger("scanner"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register parses pattern and appends a rule. It fails with a PATTERN
// error for an invalid pattern and with INVALID_STATE once scanning began.
func (s *Scanner) Register(kind Kind, pattern string, h Handler) error {
	m, err := ParsePattern(pattern)
	if err != nil {
		return err
	}
	return s.Add(kind, m, h)
}

// Add appends a rule with a prebuilt matcher
func (s *Scanner) Add(kind Kind, m Matcher, h Handler) error {
	if kind != KindDir && kind != KindFile {
		return errors.Newf(errors.ErrInvalidInput, "rules must target files or directories, got %s", kind)
	}
	if h == nil {
		return errors.New(errors.ErrInvalidInput, "nil handler")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sealed {
		return errors.New(errors.ErrInvalidState, "cannot register rules after a scan started").
			WithDetail("rule", Rule{Kind: kind, Matcher: m}.String())
	}

	s.rules = append(s.rules, Rule{Kind: kind, Matcher: m, Handler: h})
	s.logger.Trace().
		Str("kind", kind.String()).
		Str("pattern", m.String()).
		Int("position", len(s.rules)).
		Msg("Rule registered")
	return nil
}

// Dir registers a directory rule and returns the scanner for chaining.
// Like regexp.MustCompile, it panics with the registration error.
func (s *Scanner) Dir(pattern string, h Handler) *Scanner {
	if err := s.Register(KindDir, pattern, h); err != nil {
		panic(err)
	}
	return s
}

// File registers a file rule and returns the scanner for chaining.
// Like regexp.MustCompile, it panics with the registration error.
func (s *Scanner) File(pattern string, h Handler) *Scanner {
	if err := s.Register(KindFile, pattern, h); err != nil {
		panic(err)
	}
	return s
}

// Rules returns the registered rules in order
func (s *Scanner) Rules() []Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Rule(nil), s.rules...)
}

// Scan walks the tree rooted at root. Listing errors are reported, not
// returned. The first handler error is returned after every branch has
// finished; a cancelled context stops levels that were not listed yet.
func (s *Scanner) Scan(ctx context.Context, root string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve %s", root).
			WithDetail("path", root)
	}

	s.mu.Lock()
	s.sealed = true
	w := &walker{
		rules:   append([]Rule(nil), s.rules...),
		fs:      s.fs,
		logger:  s.logger,
		onError: s.onError,
	}
	s.mu.Unlock()

	done := logging.LogOperationStart(s.logger, "scan")
	defer done()

	s.logger.Info().
		Str("root", absRoot).
		Int("rules", len(w.rules)).
		Msg("Starting scan")

	return w.scan(ctx, absRoot)
}
