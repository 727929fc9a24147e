package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan = lipgloss.Color("36")  // Teal - prompt and activity
	colorRed  = lipgloss.Color("167") // Soft red - diagnostics
	colorDim  = lipgloss.Color("240") // Dim gray - rules and muted text
)

// =============================================================================
// UI - styled output bound to one writer
// =============================================================================

// ui renders decode output to w. Styles come from a renderer bound to w, so
// color is only emitted when w is a terminal that supports it; redirected
// output carries the plain text.
type ui struct {
	w io.Writer

	styleTitle       lipgloss.Style
	styleDim         lipgloss.Style
	styleDiagnostic  lipgloss.Style
	styleIconSpinner lipgloss.Style
}

func newUI(w io.Writer) *ui {
	r := lipgloss.NewRenderer(w)
	return &ui{
		w:                w,
		styleTitle:       r.NewStyle().Bold(true).Foreground(colorCyan),
		styleDim:         r.NewStyle().Foreground(colorDim),
		styleDiagnostic:  r.NewStyle().Foreground(colorRed),
		styleIconSpinner: r.NewStyle().Foreground(colorCyan),
	}
}

// printDiagnostic prints a handled failure in place of the grid.
func (u *ui) printDiagnostic(msg string) {
	fmt.Fprintln(u.w, u.styleDiagnostic.Render(msg))
}

// printSeparator prints a horizontal rule of width dashes.
func (u *ui) printSeparator(width int) {
	fmt.Fprintln(u.w, u.styleDim.Render(strings.Repeat("-", width)))
}

// printRows prints grid rows unstyled so they can be copied or diffed.
func (u *ui) printRows(rows []string) {
	for _, row := range rows {
		fmt.Fprintln(u.w, row)
	}
}
