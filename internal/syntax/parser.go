package syntax

import (
	"fmt"
	"io"
)

// Parser performs syntax analysis on woods source code.
//
// The parser works on logical lines: the tokens between two NEW_LINE tokens.
// Every statement and declaration occupies exactly one line, except for the
// blocks of functions, loops and conditions, which run until a line holding
// nothing but _end (or _else).
type Parser struct {
	scanner *Scanner

	// Current line
	line        []Token // tokens of the current line, or a single EOF token
	blankBefore bool    // a blank line preceded the current line
	started     bool    // whether the first line has been read

	// Options
	returnCheck bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithReturnCheck makes the parser reject functions that declare a return
// type but contain no _return statement.
func WithReturnCheck() Option {
	return func(p *Parser) {
		p.returnCheck = true
	}
}

// NewParser creates a new Parser for the given source and reads its first line.
func NewParser(filename string, src io.Reader, opts ...Option) (*Parser, error) {
	s, err := NewScanner(filename, src)
	if err != nil {
		return nil, err
	}

	p := &Parser{scanner: s}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.readLine(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse parses a complete source and returns its WHOLE_FILE node.
func Parse(filename string, src io.Reader, opts ...Option) (*Node, error) {
	p, err := NewParser(filename, src, opts...)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// ----------------------------------------------------------------------------
// Line navigation

// readLine replaces the current line with the next non-empty line.
func (p *Parser) readLine() error {
	tok := p.scanner.Token()
	p.line = nil

	// The first NEW_LINE terminates the previous line; any further one is a blank line.
	newlines := 0
	for tok.Kind == NewLine {
		newlines++
		var err error
		if tok, err = p.scanner.Next(); err != nil {
			return err
		}
	}
	if p.started {
		p.blankBefore = newlines > 1
	} else {
		p.blankBefore = newlines > 0
		p.started = true
	}

	for tok.Kind != NewLine && tok.Kind != EOF {
		p.line = append(p.line, tok)
		var err error
		if tok, err = p.scanner.Next(); err != nil {
			return err
		}
	}
	if len(p.line) == 0 {
		p.line = append(p.line, tok)
	}
	return nil
}

// first returns the first token of the current line.
func (p *Parser) first() Token {
	return p.line[0]
}

// atEOF reports whether the input is exhausted.
func (p *Parser) atEOF() bool {
	return p.line[0].Kind == EOF
}

// isSingle reports whether the current line consists of exactly one token of the given kind.
func (p *Parser) isSingle(kind Kind) bool {
	return len(p.line) == 1 && p.line[0].Kind == kind
}

// ----------------------------------------------------------------------------
// Error handling

// errorAt returns a SyntaxError pointing at tok.
func (p *Parser) errorAt(tok Token, format string, args ...interface{}) error {
	return &SyntaxError{
		Tok:    tok,
		Msg:    fmt.Sprintf(format, args...),
		Source: p.scanner.Line(tok.Line),
	}
}

// describe names a token in error messages.
func describe(tok Token) string {
	switch tok.Kind {
	case EOF:
		return "end of file"
	case NewLine:
		return "end of line"
	}
	if tok.Kind.IsKeyword() {
		return "keyword " + tok.Text
	}
	return fmt.Sprintf("%s %q", tok.Kind, tok.Text)
}

// expect returns the i-th token of the current line if it has the given kind.
func (p *Parser) expect(i int, kind Kind, what string) (Token, error) {
	if i >= len(p.line) {
		last := p.line[len(p.line)-1]
		return Token{}, p.errorAt(last, "expected %s after %s", what, describe(last))
	}
	tok := p.line[i]
	if tok.Kind != kind {
		return Token{}, p.errorAt(tok, "expected %s, found %s", what, describe(tok))
	}
	return tok, nil
}

// expectEnd reports an error if the current line has more than n tokens.
func (p *Parser) expectEnd(n int, what string) error {
	if len(p.line) > n {
		return p.errorAt(p.line[n], "unexpected %s after %s", describe(p.line[n]), what)
	}
	return nil
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses the whole input into a WHOLE_FILE node holding a GLOBALS and a
// FUNCTIONS node. Comment lines directly preceding a declaration are attached
// to it as a trailing COMMENT_BLOCK; a blank line discards pending comments.
func (p *Parser) Parse() (*Node, error) {
	globals := NewNode(Globals)
	functions := NewNode(Functions)
	file := NewNode(WholeFile, globals, functions)
	comments := NewNode(CommentBlock)

	for !p.atEOF() {
		first := p.first()

		var decl *Node
		var err error
		switch first.Kind {
		case Type:
			if decl, err = p.varDecl(); err == nil {
				globals.Add(decl)
			}
		case FunctionKeyword:
			if decl, err = p.funcDecl(); err == nil {
				functions.Add(decl)
			}
		case Comment:
			comments.AddTokens(first)
		default:
			err = p.errorAt(first, "unexpected statement in global scope: %s", describe(first))
		}
		if err != nil {
			return nil, err
		}

		if decl != nil && !comments.IsLeaf() {
			decl.Add(comments)
			comments = NewNode(CommentBlock)
		}

		if err := p.readLine(); err != nil {
			return nil, err
		}
		if p.blankBefore {
			comments = NewNode(CommentBlock)
		}
	}

	return file, nil
}

// ----------------------------------------------------------------------------
// Statements

// parseCurrentLine parses the statement starting on the current line.
func (p *Parser) parseCurrentLine() (*Node, error) {
	first := p.first()
	switch first.Kind {
	case IfKeyword:
		return p.condition()
	case WhileKeyword:
		return p.loop()
	case ReturnKeyword:
		return p.returnStmt()
	case Type:
		return p.varDecl()
	case Name:
		if len(p.line) > 1 && p.line[1].Kind == EqualSign {
			return p.assignment()
		}
		return p.funcCall()
	case Comment:
		return NewNode(Comment), nil
	}
	return nil, p.errorAt(first, "unknown statement starting with %s", describe(first))
}

// varDecl parses: TYPE NAME = value
func (p *Parser) varDecl() (*Node, error) {
	typ := p.first()
	name, err := p.expect(1, Name, "variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(2, EqualSign, "'=' in variable declaration"); err != nil {
		return nil, err
	}
	val, err := p.valueAt(3)
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(4, "variable declaration"); err != nil {
		return nil, err
	}
	return NewNode(VariableDeclaration, NewLeaf(typ), NewLeaf(name), val), nil
}

// assignment parses: NAME = value
func (p *Parser) assignment() (*Node, error) {
	name := p.first()
	if _, err := p.expect(1, EqualSign, "'=' in variable assignment"); err != nil {
		return nil, err
	}
	val, err := p.valueAt(2)
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(3, "variable assignment"); err != nil {
		return nil, err
	}
	return NewNode(VariableAssignment, NewLeaf(name), val), nil
}

// funcCall parses: NAME value*
func (p *Parser) funcCall() (*Node, error) {
	call := NewNode(FunctionCall, NewLeaf(p.first()))
	for _, tok := range p.line[1:] {
		val, err := p.value(tok)
		if err != nil {
			return nil, err
		}
		call.Add(val)
	}
	return call, nil
}

// returnStmt parses: _return [value]
func (p *Parser) returnStmt() (*Node, error) {
	ret := NewNode(ReturnStatement)
	if len(p.line) > 1 {
		val, err := p.value(p.line[1])
		if err != nil {
			return nil, err
		}
		ret.Add(val)
	}
	if err := p.expectEnd(2, "return value"); err != nil {
		return nil, err
	}
	return ret, nil
}

// loop parses: _while value, the body lines and the closing _end.
func (p *Parser) loop() (*Node, error) {
	open := p.first()
	cond, err := p.valueAt(1)
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(2, "loop condition"); err != nil {
		return nil, err
	}

	body, _, err := p.block(open, EndKeyword)
	if err != nil {
		return nil, err
	}
	return NewNode(Loop, cond, body), nil
}

// condition parses: _if value, the if body, an optional _else line with the
// else body, and the closing _end.
func (p *Parser) condition() (*Node, error) {
	open := p.first()
	cond, err := p.valueAt(1)
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(2, "condition"); err != nil {
		return nil, err
	}

	then, term, err := p.block(open, EndKeyword, ElseKeyword)
	if err != nil {
		return nil, err
	}
	n := NewNode(Condition, cond, then)

	if term == ElseKeyword {
		els, _, err := p.block(p.first(), EndKeyword)
		if err != nil {
			return nil, err
		}
		n.Add(els)
	}
	return n, nil
}

// block parses the lines following the current one into a CODE_BLOCK, up to
// a line consisting of exactly one of the terminator kinds, which is returned.
// The terminator line stays the current line.
func (p *Parser) block(open Token, terms ...Kind) (*Node, Kind, error) {
	body := NewNode(CodeBlock)
	for {
		if err := p.readLine(); err != nil {
			return nil, Nil, err
		}
		if p.atEOF() {
			return nil, Nil, &SyntaxError{
				Tok:    p.first(),
				Mark:   open,
				Msg:    fmt.Sprintf("expected _end before end of file, %s on line %d is not closed", open.Text, open.Line),
				Source: p.scanner.Line(open.Line),
			}
		}
		for _, k := range terms {
			if p.isSingle(k) {
				return body, k, nil
			}
		}

		stmt, err := p.parseCurrentLine()
		if err != nil {
			return nil, Nil, err
		}
		body.Add(stmt)
	}
}

// ----------------------------------------------------------------------------
// Functions

// funcDecl parses a function header line, its body and the closing _end.
func (p *Parser) funcDecl() (*Node, error) {
	header, err := p.funcHeader()
	if err != nil {
		return nil, err
	}
	open := p.first()
	name := p.line[2]

	body, _, err := p.block(open, EndKeyword)
	if err != nil {
		return nil, err
	}

	if p.returnCheck && header.Child(0).Kind == Type && Count(body, ReturnStatement) == 0 {
		return nil, p.errorAt(name, "missing _return in function %s returning %s", name.Text, header.Child(0).Text)
	}
	return NewNode(FunctionDeclaration, header, body), nil
}

// funcHeader parses: _function (TYPE|VOID) NAME [: TYPE NAME {, TYPE NAME}]
func (p *Parser) funcHeader() (*Node, error) {
	if len(p.line) < 2 {
		return nil, p.errorAt(p.first(), "expected return type after %s", describe(p.first()))
	}
	ret := p.line[1]
	if ret.Kind != Type && ret.Kind != Void {
		return nil, p.errorAt(ret, "expected return type, found %s", describe(ret))
	}
	name, err := p.expect(2, Name, "function name")
	if err != nil {
		return nil, err
	}

	header := NewNode(FunctionHeader, NewLeaf(ret), NewLeaf(name))
	if len(p.line) > 3 {
		if p.line[3].Kind != Colon {
			return nil, p.errorAt(p.line[3], "expected ':' and parameter declarations, found %s", describe(p.line[3]))
		}
		params, err := p.paramList(4)
		if err != nil {
			return nil, err
		}
		header.Add(params)
	}
	return header, nil
}

// paramList parses the parameter declarations starting at token i.
func (p *Parser) paramList(i int) (*Node, error) {
	list := NewNode(ParameterDeclList)
	for num := 1; ; num++ {
		typ, err := p.expect(i, Type, fmt.Sprintf("type of parameter no. %d", num))
		if err != nil {
			return nil, err
		}
		name, err := p.expect(i+1, Name, fmt.Sprintf("name of parameter no. %d", num))
		if err != nil {
			return nil, err
		}
		list.Add(NewNode(ParameterDecl, NewLeaf(typ), NewLeaf(name)))

		i += 2
		if i >= len(p.line) {
			return list, nil
		}
		if _, err := p.expect(i, Comma, "',' between parameter declarations"); err != nil {
			return nil, err
		}
		i++
	}
}

// ----------------------------------------------------------------------------
// Values

// valueAt parses the i-th token of the current line as a value.
func (p *Parser) valueAt(i int) (*Node, error) {
	if i >= len(p.line) {
		last := p.line[len(p.line)-1]
		return nil, p.errorAt(last, "expected a variable name or literal after %s", describe(last))
	}
	return p.value(p.line[i])
}

// value wraps a NAME or literal token into a VALUE node.
func (p *Parser) value(tok Token) (*Node, error) {
	if !tok.Kind.IsValue() {
		return nil, p.errorAt(tok, "expected a variable name or literal, found %s", describe(tok))
	}
	return NewNode(Value, NewLeaf(tok)), nil
}
