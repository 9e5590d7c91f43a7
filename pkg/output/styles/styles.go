// Package styles defines the visual styling for sweep's terminal output.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. They are described in the embedded styles.yaml and
// built against a lipgloss renderer so color detection follows the output
// writer.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// Style names
const (
	Dir       = "Dir"
	File      = "File"
	ErrorCode = "ErrorCode"
	Path      = "Path"
	Message   = "Message"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles
type Registry map[string]lipgloss.Style

// Render applies the named style, or returns s unchanged for unknown names
func (r Registry) Render(name, s string) string {
	style, ok := r[name]
	if !ok {
		return s
	}
	return style.Render(s)
}

// Load builds the embedded styles for the given renderer
func Load(renderer *lipgloss.Renderer) (Registry, error) {
	return Parse(stylesYAML, renderer)
}

// Parse builds a registry from YAML style definitions
func Parse(data []byte, renderer *lipgloss.Renderer) (Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry := make(Registry, len(config.Styles))
	for name, def := range config.Styles {
		style := renderer.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if def.Foreground != "" {
			style = style.Foreground(resolveColor(colors, def.Foreground))
		}
		if def.Background != "" {
			style = style.Background(resolveColor(colors, def.Background))
		}
		registry[name] = style
	}

	return registry, nil
}

// resolveColor looks up a named color, falling back to a literal value
func resolveColor(colors map[string]lipgloss.AdaptiveColor, name string) lipgloss.TerminalColor {
	if c, ok := colors[name]; ok {
		return c
	}
	return lipgloss.Color(name)
}
