// Package ui holds the terminal styles shared by the chip8web commands.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles used when writing to the terminal.
type Styles struct {
	Banner lipgloss.Style
	Err    lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 7	White

// NewStyles returns the styles for a renderer writing to the output.
func NewStyles(output io.Writer) Styles {
	r := lipgloss.NewRenderer(output)
	return Styles{
		Banner: r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
		Err:    r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}

// Fail writes the error to the output in the error style.
func Fail(output io.Writer, err error) {
	s := NewStyles(output)
	fmt.Fprintln(output, s.Err.Render(fmt.Sprintf("*** %s", err)))
}
