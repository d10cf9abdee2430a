package shell

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	colorResult = lipgloss.Color("#10B981") // Emerald
	colorError  = lipgloss.Color("#EF4444") // Red
	colorCaret  = lipgloss.Color("#F59E0B") // Amber
	colorTree   = lipgloss.Color("#94A3B8") // Slate 400
)

type styles struct {
	result, err, caret, tree lipgloss.Style
}

// newStyles creates styles rendered for out. Output that is not a terminal, or
// color disabled, gets plain text.
func newStyles(out io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		result: r.NewStyle().Foreground(colorResult).Bold(true),
		err:    r.NewStyle().Foreground(colorError),
		caret:  r.NewStyle().Foreground(colorCaret).Bold(true),
		tree:   r.NewStyle().Foreground(colorTree).Italic(true),
	}
}
