// Package diag renders woods lexer and parser errors for the terminal.
package diag

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/you-not-fish/woods/internal/config"
	"github.com/you-not-fish/woods/internal/syntax"
)

// Colors
var (
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
	colorFile  = lipgloss.Color("#7C3AED")
)

// Renderer formats errors as diagnostics.
type Renderer struct {
	Marker  string // brackets the offending span in the source line
	Color   bool   // style output with ANSI colors
	Context bool   // include the offending source line

	lg *lipgloss.Renderer

	headerStyle lipgloss.Style
	fileStyle   lipgloss.Style
	lineStyle   lipgloss.Style
	spanStyle   lipgloss.Style
}

// NewRenderer creates a Renderer writing to w with the given settings.
// Colors are only emitted if w is a terminal that supports them.
func NewRenderer(w io.Writer, cfg config.DiagnosticsConfig) *Renderer {
	r := &Renderer{
		Marker:  cfg.Marker,
		Color:   cfg.Color,
		Context: cfg.Context,
		lg:      lipgloss.NewRenderer(w),
	}
	if r.Marker == "" {
		r.Marker = syntax.DefaultMarker
	}

	r.headerStyle = r.lg.NewStyle().
		Bold(true).
		Foreground(colorError)
	r.fileStyle = r.lg.NewStyle().
		Foreground(colorFile)
	r.lineStyle = r.lg.NewStyle().
		Foreground(colorMuted)
	r.spanStyle = r.lg.NewStyle().
		Underline(true).
		Foreground(colorError)
	return r
}

// Render formats err. A syntax.Diagnostic gives
//
//	file: Error at L[C]: message
//	    source line with …marked… span
//
// any other error gives "error: message".
func (r *Renderer) Render(err error) string {
	if err == nil {
		return ""
	}

	var d syntax.Diagnostic
	if !errors.As(err, &d) {
		return r.style(r.headerStyle, "error:") + " " + err.Error()
	}

	var b strings.Builder
	if file := d.Position().Filename(); file != "" {
		b.WriteString(r.style(r.fileStyle, file))
		b.WriteString(": ")
	}
	b.WriteString(r.style(r.headerStyle, d.Error()))

	if r.Context {
		b.WriteString("\n    ")
		b.WriteString(r.context(d))
	}
	return b.String()
}

// context returns the marked source line of d.
func (r *Renderer) context(d syntax.Diagnostic) string {
	if !r.Color {
		return d.Context(r.Marker)
	}
	before, span, after := d.Span()
	return r.lineStyle.Render(before) +
		r.spanStyle.Render(r.Marker+span+r.Marker) +
		r.lineStyle.Render(after)
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.Color {
		return text
	}
	return s.Render(text)
}
