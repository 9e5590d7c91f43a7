package config

import (
	"strings"

	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/scanner"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Target actions
const (
	ActionPrune    = "prune"
	ActionDescend  = "descend"
	ActionContinue = "continue"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the effective sweep configuration
type Config struct {
	Targets []Target `koanf:"targets" toml:"targets"`
	Output  Output   `koanf:"output" toml:"output"`
}

// Target is one entry kind and pattern to report
type Target struct {
	Kind    string `koanf:"kind" toml:"kind"`
	Pattern string `koanf:"pattern" toml:"pattern"`
	Action  string `koanf:"action" toml:"action"`
}

// Output controls how matches are printed
type Output struct {
	Format  string `koanf:"format" toml:"format"`
	NoColor bool   `koanf:"no_color" toml:"no_color"`
}

// Normalize fills defaults and lowercases enumerations
func (c *Config) Normalize() {
	for i := range c.Targets {
		t := &c.Targets[i]
		t.Kind = strings.ToLower(strings.TrimSpace(t.Kind))
		t.Action = strings.ToLower(strings.TrimSpace(t.Action))
		if t.Action == "" {
			t.Action = ActionPrune
		}
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
}

// Validate checks targets and output settings
func (c *Config) Validate() error {
	for i, t := range c.Targets {
		if err := t.Validate(); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "target %d is invalid", i).
				WithDetail("index", i)
		}
	}

	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown output format %q", c.Output.Format).
			WithDetail("format", c.Output.Format)
	}
	return nil
}

// Validate checks a single target
func (t Target) Validate() error {
	if _, err := scanner.ParseKind(t.Kind); err != nil {
		return err
	}
	if _, err := scanner.ParsePattern(t.Pattern); err != nil {
		return err
	}
	switch t.Action {
	case ActionPrune, ActionDescend, ActionContinue:
		return nil
	}
	return errors.Newf(errors.ErrInvalidInput, "unknown action %q", t.Action).
		WithDetail("action", t.Action)
}

// TOML renders the configuration as TOML
func (c *Config) TOML() ([]byte, error) {
	out, err := gotoml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return out, nil
}
