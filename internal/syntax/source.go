package syntax

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// source is a character reader with position tracking.
// It pulls one rune at a time from the underlying reader and keeps an
// append-only log of every completed line for diagnostics.
type source struct {
	// Input
	rd *bufio.Reader

	// Position tracking
	filename string // source file name
	line     uint32 // line of the current character (1-based)
	col      uint32 // column of the current character (0-based)

	// Current state
	ch      rune  // current character, -1 for EOF
	started bool  // whether the first character has been read
	err     error // first read error other than io.EOF

	// Line history
	lines []string        // completed lines, without their newline
	cur   strings.Builder // text of the line being read
}

// newSource creates a new source reading from src and loads the first character.
func newSource(filename string, src io.Reader) *source {
	s := &source{
		rd:       bufio.NewReader(src),
		filename: filename,
		line:     1,
		ch:       -1,
	}
	s.nextch()
	return s
}

// nextch reads the next character from the source and updates position.
// Sets s.ch to -1 at EOF; further calls keep it there.
//
// Position tracking: (line, col) always refers to the position of s.ch after
// nextch() returns. A newline belongs to the line it terminates.
func (s *source) nextch() {
	switch {
	case !s.started:
		s.started = true
	case s.ch == '\n':
		s.lines = append(s.lines, strings.TrimSuffix(s.cur.String(), "\r"))
		s.cur.Reset()
		s.line++
		s.col = 0
	case s.ch >= 0:
		s.col++
	default:
		return
	}

	r, _, err := s.rd.ReadRune()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		s.ch = -1
		return
	}

	s.ch = r
	if r != '\n' {
		s.cur.WriteRune(r)
	}
}

// pos returns the current position (position of current character).
func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

// lineText returns the text of line n, or "" if the line has not been read yet.
// The line currently being read is returned as far as it has been consumed.
func (s *source) lineText(n uint32) string {
	switch {
	case n == 0:
		return ""
	case int(n) <= len(s.lines):
		return s.lines[n-1]
	case n == s.line:
		return strings.TrimSuffix(s.cur.String(), "\r")
	}
	return ""
}

// finishLine consumes the rest of the current line (not the newline), so that
// lineText reports it completely.
func (s *source) finishLine() {
	for s.ch >= 0 && s.ch != '\n' {
		s.nextch()
	}
}

// Character classification helpers

// isLetter reports whether r is alphabetic.
func isLetter(r rune) bool {
	return r >= 0 && unicode.IsLetter(r)
}

// isDigit reports whether r is a decimal digit.
func isDigit(r rune) bool {
	return r >= 0 && unicode.IsDigit(r)
}

// isLower reports whether r is a lowercase letter (keyword bodies).
func isLower(r rune) bool {
	return r >= 0 && unicode.IsLower(r)
}

// isSign reports whether r is a numeric sign.
func isSign(r rune) bool {
	return r == '+' || r == '-'
}

// isWhitespace reports whether r is a whitespace character (space, tab, or carriage return).
// Note: newline '\n' is NOT included because it is a token of its own.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}
