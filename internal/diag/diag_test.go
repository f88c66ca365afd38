package diag

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/woods/internal/config"
	"github.com/you-not-fish/woods/internal/syntax"
)

func parseError(t *testing.T, filename, src string) error {
	t.Helper()
	_, err := syntax.Parse(filename, strings.NewReader(src))
	require.Error(t, err)
	return err
}

func TestRenderDiagnostic(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DiagnosticsConfig
		file string
		src  string
		want string
	}{
		{
			name: "syntax_error_with_context",
			cfg:  config.DiagnosticsConfig{Marker: "…", Context: true},
			src:  "int a = 1\nint b 3",
			want: "Error at 2[6]: expected '=' in variable declaration, found INT_LITERAL \"3\"\n    int b …3…",
		},
		{
			name: "lex_error_custom_marker",
			cfg:  config.DiagnosticsConfig{Marker: "|", Context: true},
			src:  "string s = \"abc",
			want: "Error at 1[11]: string literal not terminated\n    string s = |\"abc|",
		},
		{
			name: "without_context",
			cfg:  config.DiagnosticsConfig{Marker: "…"},
			src:  "x = 1",
			want: `Error at 1[0]: unexpected statement in global scope: NAME "x"`,
		},
		{
			name: "with_filename",
			cfg:  config.DiagnosticsConfig{Marker: "…"},
			file: "main.woods",
			src:  "_function void f",
			want: "main.woods: Error at 1[16]: expected _end before end of file, _function on line 1 is not closed",
		},
		{
			name: "unclosed_block_marks_opening_line",
			cfg:  config.DiagnosticsConfig{Marker: "…", Context: true},
			src:  "_function void f\n_while x\n",
			want: "Error at 3[0]: expected _end before end of file, _while on line 2 is not closed\n    …_while… x",
		},
		{
			name: "empty_marker_uses_default",
			cfg:  config.DiagnosticsConfig{Context: true},
			src:  "@",
			want: "Error at 1[0]: illegal character '@'\n    …@…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(&bytes.Buffer{}, tt.cfg)
			assert.Equal(t, tt.want, r.Render(parseError(t, tt.file, tt.src)))
		})
	}
}

func TestRenderWrapped(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, config.DiagnosticsConfig{Marker: "…"})
	err := fmt.Errorf("parsing main.woods: %w", parseError(t, "", "int = 1"))

	assert.Equal(t, `Error at 1[4]: expected variable name, found EQUAL_SIGN "="`, r.Render(err))
}

func TestRenderPlainError(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, config.DiagnosticsConfig{})

	assert.Equal(t, "error: open x.woods: no such file", r.Render(errors.New("open x.woods: no such file")))
	assert.Equal(t, "", r.Render(nil))
}

func TestRenderColorToNonTerminal(t *testing.T) {
	// A buffer is not a terminal, so no escape sequences are produced.
	r := NewRenderer(&bytes.Buffer{}, config.DiagnosticsConfig{Marker: "…", Color: true, Context: true})
	out := r.Render(parseError(t, "", "int b 3"))

	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "Error at 1[6]")
	assert.Contains(t, out, "int b …3…")
}

func TestRenderColorStylesOffendingSpan(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, config.DiagnosticsConfig{Marker: "…", Color: true, Context: true})
	r.lg.SetColorProfile(termenv.ANSI256)

	// The source line contains the marker inside a string literal.
	out := r.Render(parseError(t, "", `string s = "…" x`))

	want := r.lineStyle.Render(`string s = "…" `) +
		r.spanStyle.Render("…x…") +
		r.lineStyle.Render("")
	assert.Contains(t, out, "\x1b[")
	assert.True(t, strings.HasSuffix(out, "\n    "+want), "got %q", out)
}
