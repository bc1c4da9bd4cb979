package sitegen

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Console prints build progress as glyph-prefixed lines.  Every
// user-facing message from a build goes through one of these, so tests
// can capture the output by swapping the writer.
type Console struct {
	Out io.Writer

	ok   lipgloss.Style
	warn lipgloss.Style
	fail lipgloss.Style
	dim  lipgloss.Style
}

func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{
		Out:  out,
		ok:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		warn: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		fail: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Okf reports a completed step.
func (c *Console) Okf(format string, args ...any) {
	fmt.Fprintln(c.Out, c.ok.Render("✓"), fmt.Sprintf(format, args...))
}

// Warnf reports a skipped or degraded step.  Warnings never stop a build.
func (c *Console) Warnf(format string, args ...any) {
	fmt.Fprintln(c.Out, c.warn.Render("⚠"), fmt.Sprintf(format, args...))
}

// Failf reports the failure that is about to end the build.
func (c *Console) Failf(format string, args ...any) {
	fmt.Fprintln(c.Out, c.fail.Render("✗"), fmt.Sprintf(format, args...))
}

// Notef reports neutral information, dimmed.
func (c *Console) Notef(format string, args ...any) {
	fmt.Fprintln(c.Out, c.dim.Render("·"), fmt.Sprintf(format, args...))
}
