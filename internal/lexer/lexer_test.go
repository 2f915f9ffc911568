package lexer

import (
	"testing"

	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/token"
)

func collect(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(src)
	var toks []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func TestPunctuationAndKeywords(t *testing.T) {
	toks := collect(t, "class Main : Object { }")
	want := []token.Type{token.CLASS, token.CID, token.COLON, token.CID, token.LBRACE, token.RBRACE, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, ty := range want {
		if toks[i].Type != ty {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, ty)
		}
	}
}

func TestSelectorShapes(t *testing.T) {
	toks := collect(t, "run [ :x | x := x plus: 1 . ]")
	wantTypes := []token.Type{
		token.ID, token.LBRACKET, token.SELECTOR_ID, token.PIPE,
		token.ID, token.ASSIGN, token.ID, token.ID_SELECTOR, token.INT, token.DOT,
		token.RBRACKET, token.EOF,
	}
	if len(toks) != len(wantTypes) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wantTypes), toks)
	}
	for i, ty := range wantTypes {
		if toks[i].Type != ty {
			t.Errorf("token %d: got %s(%q), want %s", i, toks[i].Type, toks[i].Literal, ty)
		}
	}
	if toks[2].Literal != ":x" {
		t.Errorf("SELECTOR_ID literal = %q, want %q", toks[2].Literal, ":x")
	}
	if toks[7].Literal != "plus:" {
		t.Errorf("ID_SELECTOR literal = %q, want %q", toks[7].Literal, "plus:")
	}
}

func TestIntegerLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"10", "10"},
		{"+10", "+10"},
		{"-10", "-10"},
	}
	for _, c := range cases {
		toks := collect(t, c.src)
		if toks[0].Type != token.INT || toks[0].Literal != c.want {
			t.Errorf("lexing %q: got %s(%q)", c.src, toks[0].Type, toks[0].Literal)
		}
	}
}

func TestStringLiteralEscapes(t *testing.T) {
	toks := collect(t, `'a\nb\'c\\d'`)
	if toks[0].Type != token.STRING {
		t.Fatalf("want STRING, got %s", toks[0].Type)
	}
	if toks[0].Literal != `a\nb\'c\\d` {
		t.Errorf("literal = %q", toks[0].Literal)
	}
}

func TestStringLiteralUnsupportedEscape(t *testing.T) {
	l := New(`'bad\xescape'`)
	if _, err := l.NextToken(); err == nil {
		t.Fatal("expected lexical error for unsupported escape sequence")
	}
}

func TestUnterminatedStringIsLexicalError(t *testing.T) {
	l := New("'no closing quote")
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected lexical error for unterminated string")
	}
}

func TestUnterminatedCommentIsLexicalError(t *testing.T) {
	l := New(`"comment never closes`)
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected lexical error for unterminated comment")
	}
}

func TestCommentsAreIgnoredButFirstSavedSeparately(t *testing.T) {
	toks := collect(t, `"hello
world" class Main : Object { }`)
	if toks[0].Type != token.CLASS {
		t.Fatalf("comment should be skipped by the token stream, got %s", toks[0].Type)
	}
	desc, ok := FirstCommentDescription(`"hello
world" class Main : Object { }`)
	if !ok {
		t.Fatal("expected a first comment to be found")
	}
	if desc != "hello&nbsp;world" {
		t.Errorf("description = %q", desc)
	}
}

func TestFirstCommentDescriptionEscapesXMLSpecialCharacters(t *testing.T) {
	desc, ok := FirstCommentDescription(`"a & b < c > d 'e'" class Main : Object { }`)
	if !ok {
		t.Fatal("expected a first comment to be found")
	}
	want := "a &amp; b &lt; c &gt; d &apos;e&apos;"
	if desc != want {
		t.Errorf("description = %q, want %q", desc, want)
	}
}

func TestFirstCommentDescriptionAbsent(t *testing.T) {
	if _, ok := FirstCommentDescription("class Main : Object { }"); ok {
		t.Fatal("expected no comment found")
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("$")
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected lexical error for illegal character")
	}
}

func TestLonePlusIsLexicalError(t *testing.T) {
	l := New("+x")
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected lexical error for '+' not followed by a digit")
	}
}

func TestPositionsAreRuneCounted(t *testing.T) {
	l := New("'é' x := 1")
	tok, _ := l.NextToken()
	if tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Errorf("pos = %v", tok.Pos)
	}
	// 'é' is three runes but four bytes, so x starts at rune column 5.
	tok, _ = l.NextToken()
	if tok.Pos.Line != 1 || tok.Pos.Column != 5 {
		t.Errorf("pos of x = %v, want 1:5", tok.Pos)
	}
}
