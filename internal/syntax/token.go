// Package syntax implements lexical and syntactic analysis for the woods
// scripting language.
package syntax

import (
	"fmt"
	"unicode/utf8"
)

// Kind is the type of a token or of an AST node.
// Node kinds reuse the token kinds and add structural kinds.
type Kind uint8

const (
	// Structural marker for imaginary grouping nodes
	Nil Kind = iota

	// Literals
	BoolLiteral   // true, false
	ByteLiteral   // 0b, -12b
	IntLiteral    // 42, +7
	FloatLiteral  // 3.14, 6E-2
	StringLiteral // "text"

	// Names and types
	Name // foo, bar!
	Type // bool byte int float pointer string
	Void // void

	// Keywords
	FunctionKeyword // _function
	ReturnKeyword   // _return
	IfKeyword       // _if
	ElseKeyword     // _else
	WhileKeyword    // _while
	EndKeyword      // _end

	// Others
	Comment    // # ...
	LeftParen  // (
	RightParen // )
	Comma      // ,
	Colon      // :
	EqualSign  // =
	NewLine    // \n
	EOF        // end of input

	// Structural node kinds
	WholeFile
	Globals
	Functions
	VariableDeclaration
	VariableAssignment
	FunctionDeclaration
	FunctionHeader
	ParameterDeclList
	ParameterDecl
	FunctionCall
	ReturnStatement
	Loop
	Condition
	CodeBlock
	Value
	CommentBlock

	kindCount
)

// kindNames maps kinds to their string representation.
var kindNames = [...]string{
	Nil: "NIL",

	BoolLiteral:   "BOOL_LITERAL",
	ByteLiteral:   "BYTE_LITERAL",
	IntLiteral:    "INT_LITERAL",
	FloatLiteral:  "FLOAT_LITERAL",
	StringLiteral: "STRING_LITERAL",

	Name: "NAME",
	Type: "TYPE",
	Void: "VOID",

	FunctionKeyword: "FUNCTION_KEYWORD",
	ReturnKeyword:   "RETURN_KEYWORD",
	IfKeyword:       "IF_KEYWORD",
	ElseKeyword:     "ELSE_KEYWORD",
	WhileKeyword:    "WHILE_KEYWORD",
	EndKeyword:      "END_KEYWORD",

	Comment:    "COMMENT",
	LeftParen:  "LEFT_PAREN",
	RightParen: "RIGHT_PAREN",
	Comma:      "COMMA",
	Colon:      "COLON",
	EqualSign:  "EQUAL_SIGN",
	NewLine:    "NEW_LINE",
	EOF:        "EOF",

	WholeFile:           "WHOLE_FILE",
	Globals:             "GLOBALS",
	Functions:           "FUNCTIONS",
	VariableDeclaration: "VARIABLE_DECLARATION",
	VariableAssignment:  "VARIABLE_ASSIGNMENT",
	FunctionDeclaration: "FUNCTION_DECLARATION",
	FunctionHeader:      "FUNCTION_HEADER",
	ParameterDeclList:   "PARAMETER_DECL_LIST",
	ParameterDecl:       "PARAMETER_DECL",
	FunctionCall:        "FUNCTION_CALL",
	ReturnStatement:     "RETURN_STATEMENT",
	Loop:                "LOOP",
	Condition:           "CONDITION",
	CodeBlock:           "CODE_BLOCK",
	Value:               "VALUE",
	CommentBlock:        "COMMENT_BLOCK",
}

// kindsByName is the inverse of kindNames.
var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// LookupKind returns the kind whose name is name.
func LookupKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// IsLiteral reports whether k is one of the literal kinds.
func (k Kind) IsLiteral() bool {
	return k >= BoolLiteral && k <= StringLiteral
}

// IsValue reports whether a token of kind k can be used as a value.
func (k Kind) IsValue() bool {
	return k == Name || k.IsLiteral()
}

// IsKeyword reports whether k is a keyword kind.
func (k Kind) IsKeyword() bool {
	return k >= FunctionKeyword && k <= EndKeyword
}

// keywords maps keyword lexemes to their kind.
var keywords = map[string]Kind{
	"_function": FunctionKeyword,
	"_return":   ReturnKeyword,
	"_if":       IfKeyword,
	"_else":     ElseKeyword,
	"_while":    WhileKeyword,
	"_end":      EndKeyword,
}

// keywordList holds the keyword lexemes in a stable order for suggestions.
var keywordList = []string{"_function", "_return", "_if", "_else", "_while", "_end"}

// words maps reserved alphabetic lexemes to their kind.
var words = map[string]Kind{
	"true":    BoolLiteral,
	"false":   BoolLiteral,
	"bool":    Type,
	"byte":    Type,
	"int":     Type,
	"float":   Type,
	"pointer": Type,
	"string":  Type,
	"void":    Void,
}

// LookupWord returns the kind of an alphabetic lexeme: BoolLiteral, Type,
// Void, or Name for everything else.
func LookupWord(text string) Kind {
	if k, ok := words[text]; ok {
		return k
	}
	return Name
}

// Token is a lexical unit.
type Token struct {
	Kind Kind
	Text string // exact lexed text, empty for EOF
	Line uint32 // 1-based line
	Col  uint32 // 0-based column immediately after the last character
	file string
}

// StartCol returns the column of the token's first character.
func (t Token) StartCol() uint32 {
	n := uint32(utf8.RuneCountInString(t.Text))
	if n > t.Col {
		return 0
	}
	return t.Col - n
}

// Pos returns the start position of the token.
func (t Token) Pos() Pos {
	return NewPos(t.file, t.Line, t.StartCol())
}

// End returns the position immediately after the token.
func (t Token) End() Pos {
	return NewPos(t.file, t.Line, t.Col)
}

func (t Token) String() string {
	return fmt.Sprintf("Token{type=%s, text='%s', location=%d[%d,%d]}",
		t.Kind, t.Text, t.Line, t.StartCol(), t.Col)
}
