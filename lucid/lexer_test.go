package lucid

import "testing"

func lexAll(t *testing.T, input string) []Token {
	t.Helper()
	return newLexer(input, "test.lucid").tokenize()
}

func TestLexerPunctuationAndOperators(t *testing.T) {
	input := "( ) { } [ ] , . : + - * / % ** = == != < > <= >="
	expected := []TokenType{
		tokenLParen, tokenRParen, tokenLBrace, tokenRBrace,
		tokenLBracket, tokenRBracket, tokenComma, tokenDot, tokenColon,
		tokenPlus, tokenMinus, tokenStar, tokenSlash, tokenPercent,
		tokenPower, tokenAssign, tokenEQ, tokenNotEQ,
		tokenLT, tokenGT, tokenLTE, tokenGTE,
		tokenEOF,
	}

	tokens := lexAll(t, input)
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Errorf("token %d: expected %s, got %s", i, tt, tokens[i].Type)
		}
	}
}

func TestLexerKeywords(t *testing.T) {
	input := "function returns let if else return lambda true false and or not Int Float String Bool List"
	expected := []TokenType{
		tokenFunction, tokenReturns, tokenLet, tokenIf, tokenElse,
		tokenReturn, tokenLambda, tokenTrue, tokenFalse,
		tokenAnd, tokenOr, tokenNot,
		tokenTypeInt, tokenTypeFloat, tokenTypeString, tokenTypeBool, tokenTypeList,
		tokenEOF,
	}

	tokens := lexAll(t, input)
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Errorf("token %d: expected %s, got %s", i, tt, tokens[i].Type)
		}
	}
}

func TestLexerIdentifiers(t *testing.T) {
	tokens := lexAll(t, "foo _bar baz_42 functionX")
	names := []string{"foo", "_bar", "baz_42", "functionX"}

	for i, name := range names {
		if tokens[i].Type != tokenIdent {
			t.Fatalf("token %d: expected IDENT, got %s", i, tokens[i].Type)
		}
		if tokens[i].Literal != name {
			t.Errorf("token %d: expected %q, got %q", i, name, tokens[i].Literal)
		}
	}
}

func TestLexerIntegerLiterals(t *testing.T) {
	tests := []struct {
		input string
		value int64
	}{
		{"0", 0},
		{"42", 42},
		{"1_000_000", 1000000},
		{"9223372036854775807", 9223372036854775807},
	}

	for _, tc := range tests {
		tokens := lexAll(t, tc.input)
		if tokens[0].Type != tokenInt {
			t.Fatalf("%q: expected INT, got %s", tc.input, tokens[0].Type)
		}
		if tokens[0].Int != tc.value {
			t.Errorf("%q: expected %d, got %d", tc.input, tc.value, tokens[0].Int)
		}
	}
}

func TestLexerFloatLiterals(t *testing.T) {
	tests := []struct {
		input string
		value float64
	}{
		{"3.14", 3.14},
		{"1_0.5", 10.5},
		{"2e3", 2000},
		{"2E3", 2000},
		{"1.5e-2", 0.015},
		{"1e+2", 100},
	}

	for _, tc := range tests {
		tokens := lexAll(t, tc.input)
		if tokens[0].Type != tokenFloat {
			t.Fatalf("%q: expected FLOAT, got %s", tc.input, tokens[0].Type)
		}
		if tokens[0].Float != tc.value {
			t.Errorf("%q: expected %v, got %v", tc.input, tc.value, tokens[0].Float)
		}
	}
}

func TestLexerDotWithoutDigitIsNotFloat(t *testing.T) {
	tokens := lexAll(t, "3.foo")
	expected := []TokenType{tokenInt, tokenDot, tokenIdent, tokenEOF}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Fatalf("token %d: expected %s, got %s", i, tt, tokens[i].Type)
		}
	}
}

func TestLexerInvalidExponent(t *testing.T) {
	tokens := lexAll(t, "2e+")
	if tokens[0].Type != tokenError {
		t.Fatalf("expected ERROR, got %s", tokens[0].Type)
	}
	if tokens[0].Str != "Invalid exponent in number literal" {
		t.Errorf("unexpected message: %q", tokens[0].Str)
	}
}

func TestLexerStringLiterals(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"cr\rhere"`, "cr\rhere"},
		{`"quote\"inside"`, `quote"inside`},
		{`"back\\slash"`, `back\slash`},
		{`"unknown\qescape"`, `unknown\qescape`},
	}

	for _, tc := range tests {
		tokens := lexAll(t, tc.input)
		if tokens[0].Type != tokenString {
			t.Fatalf("%q: expected STRING, got %s", tc.input, tokens[0].Type)
		}
		if tokens[0].Str != tc.value {
			t.Errorf("%q: expected %q, got %q", tc.input, tc.value, tokens[0].Str)
		}
	}
}

func TestLexerMultilineString(t *testing.T) {
	tokens := lexAll(t, "\"line one\nline two\" x")
	if tokens[0].Type != tokenString {
		t.Fatalf("expected STRING, got %s", tokens[0].Type)
	}
	if tokens[0].Str != "line one\nline two" {
		t.Errorf("unexpected value: %q", tokens[0].Str)
	}
	// The identifier after the string sits on line 2.
	if tokens[1].Pos.Line != 2 {
		t.Errorf("expected line 2, got %d", tokens[1].Pos.Line)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	tokens := lexAll(t, `"never closed`)
	if tokens[0].Type != tokenError {
		t.Fatalf("expected ERROR, got %s", tokens[0].Type)
	}
	if tokens[0].Str != "Unterminated string literal" {
		t.Errorf("unexpected message: %q", tokens[0].Str)
	}
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	tokens := lexAll(t, "let x = @")
	last := tokens[len(tokens)-2]
	if last.Type != tokenError {
		t.Fatalf("expected ERROR, got %s", last.Type)
	}
	if last.Str != "Unexpected character: '@'" {
		t.Errorf("unexpected message: %q", last.Str)
	}
}

func TestLexerBangAloneIsError(t *testing.T) {
	tokens := lexAll(t, "!")
	if tokens[0].Type != tokenError {
		t.Fatalf("expected ERROR, got %s", tokens[0].Type)
	}
	if tokens[0].Str != "Unexpected character '!'" {
		t.Errorf("unexpected message: %q", tokens[0].Str)
	}
}

func TestLexerLineComments(t *testing.T) {
	tokens := lexAll(t, "1 # a comment\n2")
	expected := []TokenType{tokenInt, tokenInt, tokenEOF}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Fatalf("token %d: expected %s, got %s", i, tt, tokens[i].Type)
		}
	}
	if tokens[1].Pos.Line != 2 {
		t.Errorf("expected second token on line 2, got %d", tokens[1].Pos.Line)
	}
}

func TestLexerMultilineComments(t *testing.T) {
	tokens := lexAll(t, "1 #[ skipped\nstill skipped ]# 2")
	expected := []TokenType{tokenInt, tokenInt, tokenEOF}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Fatalf("token %d: expected %s, got %s", i, tt, tokens[i].Type)
		}
	}
	if tokens[1].Pos.Line != 2 {
		t.Errorf("expected second token on line 2, got %d", tokens[1].Pos.Line)
	}
}

func TestLexerPositions(t *testing.T) {
	tokens := lexAll(t, "let x\n  = 5")

	if tokens[0].Pos.Line != 1 || tokens[0].Pos.Column != 1 {
		t.Errorf("let: expected 1:1, got %d:%d", tokens[0].Pos.Line, tokens[0].Pos.Column)
	}
	if tokens[1].Pos.Line != 1 || tokens[1].Pos.Column != 5 {
		t.Errorf("x: expected 1:5, got %d:%d", tokens[1].Pos.Line, tokens[1].Pos.Column)
	}
	if tokens[2].Pos.Line != 2 || tokens[2].Pos.Column != 3 {
		t.Errorf("=: expected 2:3, got %d:%d", tokens[2].Pos.Line, tokens[2].Pos.Column)
	}
}

func TestLexerEOFAlwaysLast(t *testing.T) {
	for _, input := range []string{"", "   ", "# only a comment", "42"} {
		tokens := lexAll(t, input)
		if tokens[len(tokens)-1].Type != tokenEOF {
			t.Errorf("%q: last token is %s, not EOF", input, tokens[len(tokens)-1].Type)
		}
	}
}
