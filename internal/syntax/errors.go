package syntax

import "fmt"

// DefaultMarker brackets the offending span in a rendered source line.
const DefaultMarker = "…"

// Diagnostic is implemented by the errors of this package that point into the source.
type Diagnostic interface {
	error
	Position() Pos                // start of the offending text
	Message() string              // message without position
	Context(marker string) string // source line with the offending span marked

	// Span splits the source line around the offending span.
	Span() (before, span, after string)
}

// LexError is a lexical error: illegal character, unterminated string,
// malformed numeric literal or unknown keyword.
type LexError struct {
	Pos    Pos    // start of the offending token
	End    uint32 // column where scanning stopped
	Msg    string
	Source string // text of the offending line
}

func (e *LexError) Error() string {
	return errorText(e.Pos, e.Msg)
}

// Position returns the start of the offending token.
func (e *LexError) Position() Pos { return e.Pos }

// Message returns the bare message.
func (e *LexError) Message() string { return e.Msg }

// Context returns the offending line with the scanned span marked.
func (e *LexError) Context(marker string) string {
	return markSpan(e, marker)
}

// Span splits the offending line around the scanned span.
func (e *LexError) Span() (before, span, after string) {
	return splitLine(e.Source, e.Pos.Col(), e.End)
}

// SyntaxError is a syntactic error: a wrong token where a construct was
// expected, a missing block terminator or an unknown statement.
type SyntaxError struct {
	Tok    Token // offending token
	Mark   Token // token marked in Source; the zero Token marks Tok
	Msg    string
	Source string // text of the marked token's line
}

func (e *SyntaxError) Error() string {
	return errorText(e.Tok.Pos(), e.Msg)
}

// Position returns the start of the offending token.
func (e *SyntaxError) Position() Pos { return e.Tok.Pos() }

// Message returns the bare message.
func (e *SyntaxError) Message() string { return e.Msg }

// Context returns the source line with the marked token bracketed.
func (e *SyntaxError) Context(marker string) string {
	return markSpan(e, marker)
}

// Span splits the source line around the marked token.
func (e *SyntaxError) Span() (before, span, after string) {
	tok := e.Tok
	if e.Mark.Line != 0 {
		tok = e.Mark
	}
	return splitLine(e.Source, tok.StartCol(), tok.Col)
}

func errorText(pos Pos, msg string) string {
	return fmt.Sprintf("Error at %d[%d]: %s", pos.Line(), pos.Col(), msg)
}

func markSpan(d Diagnostic, marker string) string {
	before, span, after := d.Span()
	return before + marker + span + marker + after
}

// splitLine cuts line at the runes start and end.
// Out of range columns are clamped to the line.
func splitLine(line string, start, end uint32) (before, span, after string) {
	runes := []rune(line)
	n := uint32(len(runes))
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return string(runes[:start]), string(runes[start:end]), string(runes[end:])
}
