package scanner

import (
	"regexp"

	"github.com/arthur-debert/sweep/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// AnyPattern is the pattern that matches every name
const AnyPattern = "*"

type matcherKind int

const (
	matchAny matcherKind = iota
	matchLiteral
	matchPattern
)

// Matcher tests entry names. The zero value matches everything.
type Matcher struct {
	kind    matcherKind
	literal string
	re      *regexp.Regexp
}

// Any returns a matcher that accepts every name
func Any() Matcher {
	return Matcher{kind: matchAny}
}

// Literal returns a matcher that accepts exactly s
func Literal(s string) Matcher {
	return Matcher{kind: matchLiteral, literal: norm.NFC.String(s)}
}

// Regexp returns a matcher backed by re. The expression is used as given,
// so it is only anchored if the caller anchored it.
func Regexp(re *regexp.Regexp) Matcher {
	return Matcher{kind: matchPattern, re: re}
}

// ParsePattern turns a pattern string into a Matcher. "*" matches any
// name, a string without regular expression metacharacters is a literal,
// and anything else compiles to a regular expression anchored to the full
// name.
func ParsePattern(pattern string) (Matcher, error) {
	if pattern == "" {
		return Matcher{}, errors.New(errors.ErrPattern, "empty pattern").
			WithDetail("pattern", pattern)
	}
	if pattern == AnyPattern {
		return Any(), nil
	}
	if regexp.QuoteMeta(pattern) == pattern {
		return Literal(pattern), nil
	}

	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return Matcher{}, errors.Wrapf(err, errors.ErrPattern, "invalid pattern %q", pattern).
			WithDetail("pattern", pattern)
	}
	return Regexp(re), nil
}

// Match reports whether name is accepted. Names are NFC normalized first.
func (m Matcher) Match(name string) bool {
	switch m.kind {
	case matchLiteral:
		return norm.NFC.String(name) == m.literal
	case matchPattern:
		return m.re.MatchString(norm.NFC.String(name))
	default:
		return true
	}
}

func (m Matcher) String() string {
	switch m.kind {
	case matchLiteral:
		return m.literal
	case matchPattern:
		return m.re.String()
	default:
		return AnyPattern
	}
}
