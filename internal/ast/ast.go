// Package ast defines the SOL25 abstract syntax tree.
//
// Node shapes follow spec §3 exactly. Expr is a tagged variant: a Go
// interface implemented by the eight expression alternatives, rather than
// a class hierarchy with virtual dispatch — the idiomatic Go encoding of a
// sum type.
package ast

import "github.com/Honziksick/ipp-project-1-sol25-parser/internal/token"

// Node is implemented by every AST node; it exposes the node's starting
// source position for error reporting.
type Node interface {
	Pos() token.Position
}

// Expr is implemented by every expression alternative: IntLiteral,
// StringLiteral, NilLiteral, TrueLiteral, FalseLiteral, IdentifierRef,
// BlockLiteral, Send.
type Expr interface {
	Node
	exprNode()
}

// Program is the root node: an ordered sequence of class declarations.
type Program struct {
	Classes     []*ClassDecl
	Description string // first-comment text, "&nbsp;"-joined; empty if absent
	HasComment  bool
}

func (p *Program) Pos() token.Position {
	if len(p.Classes) > 0 {
		return p.Classes[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// ClassDecl is one `class Name : Parent { ... }` declaration.
type ClassDecl struct {
	Name      string
	NamePos   token.Position
	Parent    string
	ParentPos token.Position
	Methods   []*MethodDecl
}

func (c *ClassDecl) Pos() token.Position { return c.NamePos }

// MethodDecl is one method definition: a selector bound to a block body.
type MethodDecl struct {
	Selector    string
	SelectorPos token.Position
	Body        *Block
}

func (m *MethodDecl) Pos() token.Position { return m.SelectorPos }

// Arity returns the number of colons in the selector.
func (m *MethodDecl) Arity() int { return SelectorArity(m.Selector) }

// SelectorArity counts the colons in a selector string.
func SelectorArity(selector string) int {
	n := 0
	for _, r := range selector {
		if r == ':' {
			n++
		}
	}
	return n
}

// Param is one formal block parameter.
type Param struct {
	Name    string
	NamePos token.Position
}

func (p *Param) Pos() token.Position { return p.NamePos }

// Block is a parameterized sequence of assignment statements, either a
// method body or a block literal.
type Block struct {
	LBracePos  token.Position
	Parameters []*Param
	Statements []*Assign
}

func (b *Block) Pos() token.Position  { return b.LBracePos }
func (b *Block) exprNode()            {}
func (b *Block) Arity() int           { return len(b.Parameters) }

// Assign is one `target := expr .` statement.
type Assign struct {
	Target     string
	TargetPos  token.Position
	Expression Expr
}

func (a *Assign) Pos() token.Position { return a.TargetPos }

// IntLiteral is an integer literal, e.g. `-10`.
type IntLiteral struct {
	Value   int64
	Literal string
	NodePos token.Position
}

func (n *IntLiteral) Pos() token.Position { return n.NodePos }
func (n *IntLiteral) exprNode()           {}

// StringLiteral is a string literal. Value has already been escaped for
// safe inclusion as an XML attribute value by the parser's AST-build step.
type StringLiteral struct {
	Value   string
	NodePos token.Position
}

func (n *StringLiteral) Pos() token.Position { return n.NodePos }
func (n *StringLiteral) exprNode()           {}

// NilLiteral is the `nil` literal.
type NilLiteral struct{ NodePos token.Position }

func (n *NilLiteral) Pos() token.Position { return n.NodePos }
func (n *NilLiteral) exprNode()           {}

// TrueLiteral is the `true` literal.
type TrueLiteral struct{ NodePos token.Position }

func (n *TrueLiteral) Pos() token.Position { return n.NodePos }
func (n *TrueLiteral) exprNode()           {}

// FalseLiteral is the `false` literal.
type FalseLiteral struct{ NodePos token.Position }

func (n *FalseLiteral) Pos() token.Position { return n.NodePos }
func (n *FalseLiteral) exprNode()           {}

// IdentifierRef is a reference to a variable, a class name, or a
// pseudo-variable (self/super).
type IdentifierRef struct {
	Name    string
	NodePos token.Position
}

func (n *IdentifierRef) Pos() token.Position { return n.NodePos }
func (n *IdentifierRef) exprNode()           {}

// IsClassRef reports whether the identifier names a class (uppercase
// first letter) rather than a variable or pseudo-variable.
func (n *IdentifierRef) IsClassRef() bool {
	return len(n.Name) > 0 && n.Name[0] >= 'A' && n.Name[0] <= 'Z'
}

// BlockLiteral wraps a Block used as an expression.
type BlockLiteral struct {
	*Block
}

// Send is a message send: `receiver selector arg1 arg2 ...`.
type Send struct {
	Receiver Expr
	Selector string
	Args     []Expr
	NodePos  token.Position
}

func (n *Send) Pos() token.Position { return n.NodePos }
func (n *Send) exprNode()           {}
