package syntax

import (
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Nil, "NIL"},
		{BoolLiteral, "BOOL_LITERAL"},
		{ByteLiteral, "BYTE_LITERAL"},
		{StringLiteral, "STRING_LITERAL"},
		{Void, "VOID"},
		{FunctionKeyword, "FUNCTION_KEYWORD"},
		{EndKeyword, "END_KEYWORD"},
		{LeftParen, "LEFT_PAREN"},
		{EqualSign, "EQUAL_SIGN"},
		{NewLine, "NEW_LINE"},
		{EOF, "EOF"},
		{WholeFile, "WHOLE_FILE"},
		{ParameterDeclList, "PARAMETER_DECL_LIST"},
		{CommentBlock, "COMMENT_BLOCK"},
		{kindCount, "kind(39)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindNamesComplete(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		name := kindNames[k]
		if name == "" {
			t.Errorf("kind %d has no name", k)
			continue
		}
		if got, ok := LookupKind(name); !ok || got != k {
			t.Errorf("LookupKind(%q) = %v, %v; want %v, true", name, got, ok, k)
		}
	}

	if _, ok := LookupKind("no_such_kind"); ok {
		t.Error("LookupKind accepted an unknown name")
	}
}

func TestKindPredicates(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		literal := k == BoolLiteral || k == ByteLiteral || k == IntLiteral || k == FloatLiteral || k == StringLiteral
		if got := k.IsLiteral(); got != literal {
			t.Errorf("%v.IsLiteral() = %v, want %v", k, got, literal)
		}
		if got := k.IsValue(); got != (literal || k == Name) {
			t.Errorf("%v.IsValue() = %v, want %v", k, got, literal || k == Name)
		}
		if k.IsKeyword() && (k.IsValue() || k >= WholeFile) {
			t.Errorf("%v is a keyword and a value or node kind", k)
		}
	}
}

func TestKeywords(t *testing.T) {
	if len(keywords) != len(keywordList) {
		t.Fatalf("keywords has %d entries, keywordList %d", len(keywords), len(keywordList))
	}
	for _, kw := range keywordList {
		k, ok := keywords[kw]
		if !ok {
			t.Errorf("keyword %q missing from map", kw)
			continue
		}
		if !k.IsKeyword() {
			t.Errorf("keyword %q maps to non-keyword kind %v", kw, k)
		}
	}
}

func TestLookupWord(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"true", BoolLiteral},
		{"false", BoolLiteral},
		{"bool", Type},
		{"byte", Type},
		{"int", Type},
		{"float", Type},
		{"pointer", Type},
		{"string", Type},
		{"void", Void},
		{"main", Name},
		{"True", Name},
		{"print!", Name},
		{"int8", Name},
	}

	for _, tt := range tests {
		if got := LookupWord(tt.text); got != tt.want {
			t.Errorf("LookupWord(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	tok := Token{Kind: Name, Text: "abc", Line: 3, Col: 7, file: "a.woods"}

	if got := tok.StartCol(); got != 4 {
		t.Errorf("StartCol() = %d, want 4", got)
	}
	if got := tok.Pos().String(); got != "a.woods:3[4]" {
		t.Errorf("Pos() = %s, want a.woods:3[4]", got)
	}
	if got := tok.End().String(); got != "a.woods:3[7]" {
		t.Errorf("End() = %s, want a.woods:3[7]", got)
	}

	want := "Token{type=NAME, text='abc', location=3[4,7]}"
	if got := tok.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	// Multi-byte text counts runes
	tok = Token{Kind: StringLiteral, Text: `"äö"`, Line: 1, Col: 4}
	if got := tok.StartCol(); got != 0 {
		t.Errorf("StartCol() = %d, want 0", got)
	}
}
