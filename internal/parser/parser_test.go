package parser

import (
	"testing"

	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/ast"
)

func TestParseMinimalProgram(t *testing.T) {
	src := `class Main : Object { run [ | ] }`
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Classes) != 1 {
		t.Fatalf("got %d classes, want 1", len(prog.Classes))
	}
	class := prog.Classes[0]
	if class.Name != "Main" || class.Parent != "Object" {
		t.Errorf("class = %+v", class)
	}
	if len(class.Methods) != 1 || class.Methods[0].Selector != "run" {
		t.Fatalf("methods = %+v", class.Methods)
	}
}

func TestParseCompositeSelectorMethod(t *testing.T) {
	src := `class Main : Object { at: put: [ :x :y | z := x . ] }`
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := prog.Classes[0].Methods[0]
	if m.Selector != "at:put:" {
		t.Errorf("selector = %q", m.Selector)
	}
	if m.Arity() != 2 {
		t.Errorf("arity = %d", m.Arity())
	}
	if len(m.Body.Parameters) != 2 || m.Body.Parameters[0].Name != "x" || m.Body.Parameters[1].Name != "y" {
		t.Fatalf("params = %+v", m.Body.Parameters)
	}
}

func TestParseUnaryAndKeywordSendChain(t *testing.T) {
	src := `class Main : Object { run [ | x := (1 plus: 2) negate . ] }`
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stmt := prog.Classes[0].Methods[0].Body.Statements[0]
	outer, ok := stmt.Expression.(*ast.Send)
	if !ok {
		t.Fatalf("expression is %T, want *ast.Send", stmt.Expression)
	}
	if outer.Selector != "negate" {
		t.Errorf("outer selector = %q", outer.Selector)
	}
	inner, ok := outer.Receiver.(*ast.Send)
	if !ok {
		t.Fatalf("receiver is %T, want *ast.Send", outer.Receiver)
	}
	if inner.Selector != "plus:" || len(inner.Args) != 1 {
		t.Errorf("inner send = %+v", inner)
	}
}

func TestParseUnparenthesizedSendChainIsSyntaxError(t *testing.T) {
	src := `class Main : Object { run [ | x := 1 plus: 2 negate . ] }`
	if _, err := Parse(src); err == nil {
		t.Fatal("expected syntax error: a send's result needs parentheses before a further send")
	}
}

func TestParseBlockLiteralAsArgument(t *testing.T) {
	src := `class Main : Object { run [ | x := true ifTrue: [ | y := 1 . ] ifFalse: [ | y := 2 . ] . ] }`
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	send := prog.Classes[0].Methods[0].Body.Statements[0].Expression.(*ast.Send)
	if send.Selector != "ifTrue:ifFalse:" {
		t.Errorf("selector = %q", send.Selector)
	}
	if len(send.Args) != 2 {
		t.Fatalf("args = %+v", send.Args)
	}
	if _, ok := send.Args[0].(*ast.BlockLiteral); !ok {
		t.Errorf("arg 0 is %T, want *ast.BlockLiteral", send.Args[0])
	}
}

func TestParseParenthesizedExpression(t *testing.T) {
	src := `class Main : Object { run [ | x := (1 plus: 2) negate . ] }`
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	send := prog.Classes[0].Methods[0].Body.Statements[0].Expression.(*ast.Send)
	if send.Selector != "negate" {
		t.Errorf("selector = %q", send.Selector)
	}
}

func TestParseAllLiteralForms(t *testing.T) {
	src := `class Main : Object {
		run [ |
			a := nil .
			b := true .
			c := false .
			d := -5 .
			e := 'hi' .
			f := self .
			g := super .
		]
	}`
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stmts := prog.Classes[0].Methods[0].Body.Statements
	if len(stmts) != 7 {
		t.Fatalf("got %d statements, want 7", len(stmts))
	}
	if _, ok := stmts[0].Expression.(*ast.NilLiteral); !ok {
		t.Errorf("stmt 0 = %T", stmts[0].Expression)
	}
	if _, ok := stmts[1].Expression.(*ast.TrueLiteral); !ok {
		t.Errorf("stmt 1 = %T", stmts[1].Expression)
	}
	if iv, ok := stmts[3].Expression.(*ast.IntLiteral); !ok || iv.Value != -5 {
		t.Errorf("stmt 3 = %+v", stmts[3].Expression)
	}
	if sv, ok := stmts[4].Expression.(*ast.StringLiteral); !ok || sv.Value != "hi" {
		t.Errorf("stmt 4 = %+v", stmts[4].Expression)
	}
}

func TestParseMultipleClasses(t *testing.T) {
	src := `class Other : Object { run [ | ] } class Main : Object { run [ | ] }`
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Classes) != 2 {
		t.Fatalf("got %d classes", len(prog.Classes))
	}
}

func TestAssignToRunIsSyntaxError(t *testing.T) {
	src := `class Main : Object { run [ | run := 1 . ] }`
	if _, err := Parse(src); err == nil {
		t.Fatal("expected syntax error: \"run\" cannot be an assignment target")
	}
}

func TestBlockParameterNamedRunIsSyntaxError(t *testing.T) {
	src := `class Main : Object { at: [ :run | ] run [ | ] }`
	if _, err := Parse(src); err == nil {
		t.Fatal("expected syntax error: \"run\" cannot be a block parameter name")
	}
}

func TestRunRemainsValidAsMethodSelector(t *testing.T) {
	if _, err := Parse(`class Main : Object { run [ | ] }`); err != nil {
		t.Fatalf("\"run\" must remain usable as a method selector: %v", err)
	}
}

func TestKeywordSelectorPartNamedAfterKeywordIsSyntaxError(t *testing.T) {
	src := `class Main : Object { run [ | ] nil: [ :x | ] }`
	if _, err := Parse(src); err == nil {
		t.Fatal(`expected syntax error: a keyword-selector part must not be named "nil"`)
	}
}

func TestBlockParameterMarkerNamedAfterKeywordIsSyntaxError(t *testing.T) {
	src := `class Main : Object { run [ | ] at: [ :self | ] }`
	if _, err := Parse(src); err == nil {
		t.Fatal(`expected syntax error: a block parameter must not be named "self"`)
	}
}

func TestSendKeywordPartNamedAfterKeywordIsSyntaxError(t *testing.T) {
	src := `class Main : Object { run [ | x := 1 true: 2 . ] }`
	if _, err := Parse(src); err == nil {
		t.Fatal(`expected syntax error: a send's keyword part must not be named "true"`)
	}
}

func TestParseEmptyProgramIsSyntaxError(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Fatal("expected syntax error for empty program")
	}
}

func TestParseMissingColonIsSyntaxError(t *testing.T) {
	if _, err := Parse(`class Main Object { run [ | ] }`); err == nil {
		t.Fatal("expected syntax error for missing ':'")
	}
}

func TestParseUnterminatedClassIsSyntaxError(t *testing.T) {
	if _, err := Parse(`class Main : Object { run [ | ]`); err == nil {
		t.Fatal("expected syntax error for missing '}'")
	}
}

func TestParseLexicalErrorPropagates(t *testing.T) {
	if _, err := Parse(`class Main : Object { run [ | x := $ . ] }`); err == nil {
		t.Fatal("expected lexical error to propagate from the parser")
	}
}

func TestDescriptionCapturedFromLeadingComment(t *testing.T) {
	src := "\"hi\nthere\" class Main : Object { run [ | ] }"
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !prog.HasComment || prog.Description != "hi&nbsp;there" {
		t.Errorf("description = %q, hasComment=%v", prog.Description, prog.HasComment)
	}
}

func TestEscapeXMLDoesNotDoubleEscapeAmpersandSequences(t *testing.T) {
	got := EscapeXML("a & b")
	if got != "a &amp; b" {
		t.Errorf("EscapeXML = %q", got)
	}
}

func TestUnescapeSOL25(t *testing.T) {
	got := UnescapeSOL25(`line1\nline2\'q\\b`)
	want := "line1\nline2'q\\b"
	if got != want {
		t.Errorf("UnescapeSOL25 = %q, want %q", got, want)
	}
}
