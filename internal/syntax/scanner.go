package syntax

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Scanner performs lexical analysis on woods source code.
//
// A Scanner always exposes a current token: NewScanner primes the first one
// and every successful Next replaces it. After the first error the scanner
// stops and keeps returning that error.
type Scanner struct {
	*source // embedded character reader

	// Current token info
	tok     Token
	tokLine uint32 // start line of the token being scanned
	tokCol  uint32 // start column of the token being scanned
	err     error  // sticky error

	// Literal accumulation
	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source and scans the first token.
func NewScanner(filename string, src io.Reader) (*Scanner, error) {
	s := &Scanner{source: newSource(filename, src)}
	if _, err := s.Next(); err != nil {
		return s, err
	}
	return s, nil
}

// ScanAll scans src completely and returns its tokens, ending with EOF.
func ScanAll(filename string, src io.Reader) ([]Token, error) {
	s, err := NewScanner(filename, src)
	if err != nil {
		return nil, err
	}
	toks := []Token{s.Token()}
	for s.Token().Kind != EOF {
		tok, err := s.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// Next advances to the next token and returns it.
// Once EOF is reached every call returns EOF again.
func (s *Scanner) Next() (Token, error) {
	if s.err != nil {
		return s.tok, s.err
	}
	if err := s.next(); err != nil {
		s.err = err
		return s.tok, err
	}
	return s.tok, nil
}

// Token returns the current token.
func (s *Scanner) Token() Token {
	return s.tok
}

// Err returns the error that stopped the scanner, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Line returns the text of source line n (1-based) as far as it has been read.
func (s *Scanner) Line(n uint32) string {
	return s.lineText(n)
}

// Filename returns the name the scanner reports in positions.
func (s *Scanner) Filename() string {
	return s.filename
}

func (s *Scanner) next() error {
	// 1. Skip whitespace (not including '\n')
	s.skipWhitespace()

	// 2. Record token start position
	s.tokLine = s.line
	s.tokCol = s.col

	// 3. Scan token based on current character
	var err error
	switch {
	case s.ch < 0:
		s.emit(EOF, "")

	case s.ch == '\n':
		s.tok = Token{Kind: NewLine, Text: "\n", Line: s.line, Col: s.col + 1, file: s.filename}
		s.nextch()

	case s.ch == '_':
		err = s.scanKeyword()

	case s.ch == '"':
		err = s.scanString()

	case s.ch == '#':
		s.scanComment()

	case isDigit(s.ch) || isSign(s.ch):
		err = s.scanNumber()

	case isLetter(s.ch):
		s.scanWord()

	default:
		err = s.scanSingle()
	}

	if s.source.err != nil {
		return fmt.Errorf("reading %s: %w", s.filename, s.source.err)
	}
	return err
}

// emit sets the current token; it ends at the current column.
func (s *Scanner) emit(kind Kind, text string) {
	s.tok = Token{Kind: kind, Text: text, Line: s.tokLine, Col: s.col, file: s.filename}
}

// errorf builds a LexError for the token being scanned.
func (s *Scanner) errorf(format string, args ...interface{}) error {
	end := s.col
	s.finishLine()
	return &LexError{
		Pos:    NewPos(s.filename, s.tokLine, s.tokCol),
		End:    end,
		Msg:    fmt.Sprintf(format, args...),
		Source: s.lineText(s.tokLine),
	}
}

// skipWhitespace skips space, tab, and carriage return.
func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

// startLit begins accumulating a literal.
func (s *Scanner) startLit() {
	s.litBuf.Reset()
	s.litBuf.WriteRune(s.ch)
}

// continueLit adds the current character to the literal being accumulated.
func (s *Scanner) continueLit() {
	s.litBuf.WriteRune(s.ch)
}

// stopLit ends literal accumulation and returns the accumulated string.
func (s *Scanner) stopLit() string {
	return s.litBuf.String()
}

// scanKeyword scans '_' followed by lowercase letters; the result must be a keyword.
func (s *Scanner) scanKeyword() error {
	s.startLit()
	s.nextch()

	for isLower(s.ch) {
		s.continueLit()
		s.nextch()
	}

	lit := s.stopLit()
	kind, ok := keywords[lit]
	if !ok {
		return s.errorf("unknown keyword %q%s", lit, suggestKeyword(lit))
	}
	s.emit(kind, lit)
	return nil
}

// suggestKeyword returns a " (did you mean ...?)" hint for a misspelled keyword.
func suggestKeyword(lit string) string {
	ranks := fuzzy.RankFindNormalizedFold(lit, keywordList)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return fmt.Sprintf(" (did you mean %s?)", ranks[0].Target)
}

// scanString scans a string literal. The token text keeps the quotes and the
// escape sequences as written; a backslash escapes any following character.
func (s *Scanner) scanString() error {
	s.startLit() // opening "

	for {
		s.nextch()
		switch s.ch {
		case -1:
			return s.errorf("string literal not terminated")

		case '\n':
			return s.errorf("string literal must not contain a new line")

		case '\\':
			s.continueLit()
			s.nextch()
			switch s.ch {
			case -1:
				return s.errorf("string literal not terminated")
			case '\n':
				return s.errorf("string literal must not contain a new line")
			}
			s.continueLit()

		case '"':
			s.continueLit()
			s.nextch()
			s.emit(StringLiteral, s.stopLit())
			return nil

		default:
			s.continueLit()
		}
	}
}

// scanComment scans a comment up to the end of the line.
func (s *Scanner) scanComment() {
	s.startLit()
	s.nextch()

	for s.ch >= 0 && s.ch != '\n' && s.ch != '\r' {
		s.continueLit()
		s.nextch()
	}

	s.emit(Comment, s.stopLit())
}

// scanNumber scans a numeric literal:
//
//	[+|-] digits [. digits] [E [+|-] digits] [b]
//
// The fraction or the exponent makes it a float; a trailing 'b' on an
// integer makes it a byte.
func (s *Scanner) scanNumber() error {
	s.litBuf.Reset()
	kind := IntLiteral

	// Sign
	if isSign(s.ch) {
		s.continueLit()
		s.nextch()
	}

	if s.scanDigits() == 0 {
		return s.errorf("invalid numeric literal %q", s.stopLit())
	}

	// Fraction
	if s.ch == '.' {
		kind = FloatLiteral
		s.continueLit()
		s.nextch()
		if s.scanDigits() == 0 {
			return s.errorf("invalid float literal %q: no digits after '.'", s.stopLit())
		}
	}

	// Exponent
	if s.ch == 'E' {
		kind = FloatLiteral
		s.continueLit()
		s.nextch()
		if isSign(s.ch) {
			s.continueLit()
			s.nextch()
		}
		if s.scanDigits() == 0 {
			return s.errorf("invalid float literal %q: exponent has no digits", s.stopLit())
		}
	}

	// Byte suffix
	if kind == IntLiteral && s.ch == 'b' {
		kind = ByteLiteral
		s.continueLit()
		s.nextch()
	}

	s.emit(kind, s.stopLit())
	return nil
}

// scanDigits scans decimal digits and returns how many it consumed.
func (s *Scanner) scanDigits() int {
	n := 0
	for isDigit(s.ch) {
		s.continueLit()
		s.nextch()
		n++
	}
	return n
}

// scanWord scans a name, type, bool literal or void. A single trailing '!'
// belongs to the word.
func (s *Scanner) scanWord() {
	s.startLit()
	s.nextch()

	for isLetter(s.ch) || isDigit(s.ch) || s.ch == '_' {
		s.continueLit()
		s.nextch()
	}
	if s.ch == '!' {
		s.continueLit()
		s.nextch()
	}

	lit := s.stopLit()
	s.emit(LookupWord(lit), lit)
}

// scanSingle scans a one-character token.
func (s *Scanner) scanSingle() error {
	ch := s.ch
	s.nextch()

	var kind Kind
	switch ch {
	case '(':
		kind = LeftParen
	case ')':
		kind = RightParen
	case ',':
		kind = Comma
	case ':':
		kind = Colon
	case '=':
		kind = EqualSign
	default:
		return s.errorf("illegal character %q", ch)
	}

	s.emit(kind, string(ch))
	return nil
}
