package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)

	registry, err := Load(r)
	require.NoError(t, err)

	for _, name := range []string{Dir, File, ErrorCode, Path, Message} {
		assert.Contains(t, registry, name)
	}
	assert.Equal(t, "/tmp/x", registry.Render(File, "/tmp/x"), "ascii profile renders plain text")
	assert.Equal(t, "plain", registry.Render("Unknown", "plain"))
}

func TestParse(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.TrueColor)

	registry, err := Parse([]byte(`
colors:
  accent:
    light: "#000000"
    dark: "#FFFFFF"
styles:
  Accent:
    bold: true
    foreground: accent
  Literal:
    foreground: "#FF0000"
`), r)
	require.NoError(t, err)

	assert.True(t, registry["Accent"].GetBold())
	assert.NotEqual(t, "x", registry.Render("Literal", "x"), "true color profile adds escapes")

	_, err = Parse([]byte("styles: ["), r)
	assert.Error(t, err)
}
