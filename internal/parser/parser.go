// Package parser implements a recursive-descent parser for SOL25 that
// builds the typed AST directly: there is no separate untyped parse tree
// and no separate ASTBuilder pass. Normalizations the grammar calls for at
// parse time (XML-safe string escaping, composite-selector assembly,
// identifier-shape validation) are applied inline as the AST is built.
package parser

import (
	"fmt"

	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/ast"
	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/lexer"
	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/token"
)

// isReservedStructureName reports whether name is the one lowercase
// identifier the program's entry point depends on. "run" may not be
// reused as an assignment target or a block parameter, to avoid
// shadowing; it remains valid as a method selector. "Main" needs no
// parallel check here: assignment targets and block parameters are
// always lexed as lowercase ID/SELECTOR_ID tokens, so the literal
// "Main" (uppercase) can never reach either position.
func isReservedStructureName(name string) bool {
	return name == "run"
}

// checkNotKeyword returns a syntax error if word (an identifier pulled out
// of an ID_SELECTOR or SELECTOR_ID token with its colon stripped) names one
// of the six reserved keywords.
func (p *Parser) checkNotKeyword(pos token.Position, word string) error {
	if token.IsKeywordWord(word) {
		return p.errorf(pos, "keyword %q must not be used as a selector part", word)
	}
	return nil
}

// Error is a syntax error: an unexpected token, or a structurally invalid
// program the grammar itself rules out (e.g. a reserved word used where an
// identifier is required).
type Error struct {
	Msg string
	Pos token.Position
}

func (e *Error) Error() string { return e.Msg }

// Parser consumes a token stream from a lexer.Lexer and builds a
// *ast.Program, or returns the first lexical or syntax error encountered.
type Parser struct {
	lex *lexer.Lexer
	tok token.Token
}

// New creates a Parser over src. Call Parse to run it.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	return p
}

// Parse runs the parser to completion, returning the program AST or the
// first error (lexical or syntactic) encountered. The returned error, if
// any, is either a *lexer.Error or a *Error.
func Parse(src string) (*ast.Program, error) {
	p := New(src)
	if err := p.advance(); err != nil {
		return nil, err
	}
	prog, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	if desc, ok := lexer.FirstCommentDescription(src); ok {
		prog.Description = desc
		prog.HasComment = true
	}
	return prog, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) errorf(pos token.Position, format string, args ...interface{}) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) expect(ty token.Type) (token.Token, error) {
	if p.tok.Type != ty {
		return token.Token{}, p.errorf(p.tok.Pos, "expected %s, found %s(%q)", ty, p.tok.Type, p.tok.Literal)
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

// parseProgram ::= { classDecl } EOF
func (p *Parser) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.tok.Type != token.EOF {
		class, err := p.parseClassDecl()
		if err != nil {
			return nil, err
		}
		prog.Classes = append(prog.Classes, class)
	}
	if len(prog.Classes) == 0 {
		return nil, p.errorf(p.tok.Pos, "program must declare at least one class")
	}
	return prog, nil
}

// classDecl ::= "class" CID ":" CID "{" { method } "}"
func (p *Parser) parseClassDecl() (*ast.ClassDecl, error) {
	if _, err := p.expect(token.CLASS); err != nil {
		return nil, err
	}
	name, err := p.expect(token.CID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	parent, err := p.expect(token.CID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	class := &ast.ClassDecl{
		Name: name.Literal, NamePos: name.Pos,
		Parent: parent.Literal, ParentPos: parent.Pos,
	}
	for p.tok.Type != token.RBRACE {
		if p.tok.Type == token.EOF {
			return nil, p.errorf(p.tok.Pos, "unexpected end of input inside class %s", class.Name)
		}
		method, err := p.parseMethodDecl()
		if err != nil {
			return nil, err
		}
		class.Methods = append(class.Methods, method)
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return class, nil
}

// method ::= selector block
//
// selector is either a plain ID (unary, arity 0) or one-or-more
// ID_SELECTOR tokens concatenated into a composite keyword selector
// (arity = number of parts).
func (p *Parser) parseMethodDecl() (*ast.MethodDecl, error) {
	selPos := p.tok.Pos
	var selector string
	switch p.tok.Type {
	case token.ID:
		selector = p.tok.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
	case token.ID_SELECTOR:
		for p.tok.Type == token.ID_SELECTOR {
			part := p.tok.Literal
			if err := p.checkNotKeyword(p.tok.Pos, part[:len(part)-1]); err != nil {
				return nil, err
			}
			selector += part
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	default:
		return nil, p.errorf(p.tok.Pos, "expected method selector, found %s(%q)", p.tok.Type, p.tok.Literal)
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.MethodDecl{Selector: selector, SelectorPos: selPos, Body: body}, nil
}

// block ::= "[" params "|" { assign } "]"
// params ::= { SELECTOR_ID }
//
// The "|" is mandatory even with zero parameters, e.g. "[|]".
func (p *Parser) parseBlock() (*ast.Block, error) {
	lbrace, err := p.expect(token.LBRACKET)
	if err != nil {
		return nil, err
	}
	block := &ast.Block{LBracePos: lbrace.Pos}

	for p.tok.Type == token.SELECTOR_ID {
		name := p.tok.Literal[1:] // drop leading ':'
		if err := p.checkNotKeyword(p.tok.Pos, name); err != nil {
			return nil, err
		}
		if isReservedStructureName(name) {
			return nil, p.errorf(p.tok.Pos, "block parameter must not be named %q", name)
		}
		block.Parameters = append(block.Parameters, &ast.Param{Name: name, NamePos: p.tok.Pos})
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.PIPE); err != nil {
		return nil, err
	}

	for p.tok.Type != token.RBRACKET {
		if p.tok.Type == token.EOF {
			return nil, p.errorf(p.tok.Pos, "unexpected end of input inside block")
		}
		stmt, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return block, nil
}

// assign ::= ID ":=" expr "."
func (p *Parser) parseAssign() (*ast.Assign, error) {
	target, err := p.expect(token.ID)
	if err != nil {
		return nil, err
	}
	if isReservedStructureName(target.Literal) {
		return nil, p.errorf(target.Pos, "cannot assign to %q, reserved for program structure", target.Literal)
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DOT); err != nil {
		return nil, err
	}
	return &ast.Assign{Target: target.Literal, TargetPos: target.Pos, Expression: expr}, nil
}

// expr ::= exprBase exprTail
// exprTail ::= ID | (ID_SELECTOR exprBase)*
//
// exprTail forms at most one Send on top of the base receiver: either a
// single unary send (one trailing ID) or one composite keyword send
// (one-or-more ID_SELECTOR/argument pairs, concatenated into a single
// selector). It does not chain further — a second send on the result
// needs an explicit "(" expr ")" to make the inner send its own
// exprBase.
func (p *Parser) parseExpr() (ast.Expr, error) {
	recv, err := p.parseExprBase()
	if err != nil {
		return nil, err
	}
	return p.parseExprTail(recv)
}

func (p *Parser) parseExprTail(recv ast.Expr) (ast.Expr, error) {
	switch p.tok.Type {
	case token.ID:
		pos := p.tok.Pos
		sel := p.tok.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Send{Receiver: recv, Selector: sel, NodePos: pos}, nil
	case token.ID_SELECTOR:
		pos := p.tok.Pos
		var selector string
		var args []ast.Expr
		for p.tok.Type == token.ID_SELECTOR {
			part := p.tok.Literal
			if err := p.checkNotKeyword(p.tok.Pos, part[:len(part)-1]); err != nil {
				return nil, err
			}
			selector += part
			if err := p.advance(); err != nil {
				return nil, err
			}
			arg, err := p.parseExprBase()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return &ast.Send{Receiver: recv, Selector: selector, Args: args, NodePos: pos}, nil
	default:
		return recv, nil
	}
}

// exprBase ::= INT | STRING | "nil" | "true" | "false"
//            | "self" | "super" | ID | CID | block | "(" expr ")"
func (p *Parser) parseExprBase() (ast.Expr, error) {
	pos := p.tok.Pos
	switch p.tok.Type {
	case token.INT:
		lit := p.tok.Literal
		n, convErr := parseInt(lit)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if convErr != nil {
			return nil, p.errorf(pos, "invalid integer literal %q", lit)
		}
		return &ast.IntLiteral{Value: n, Literal: lit, NodePos: pos}, nil
	case token.STRING:
		lit := p.tok.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.StringLiteral{Value: EscapeXML(UnescapeSOL25(lit)), NodePos: pos}, nil
	case token.NIL:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.NilLiteral{NodePos: pos}, nil
	case token.TRUE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.TrueLiteral{NodePos: pos}, nil
	case token.FALSE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.FalseLiteral{NodePos: pos}, nil
	case token.SELF:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.IdentifierRef{Name: "self", NodePos: pos}, nil
	case token.SUPER:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.IdentifierRef{Name: "super", NodePos: pos}, nil
	case token.ID:
		name := p.tok.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.IdentifierRef{Name: name, NodePos: pos}, nil
	case token.CID:
		name := p.tok.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.IdentifierRef{Name: name, NodePos: pos}, nil
	case token.LBRACKET:
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.BlockLiteral{Block: block}, nil
	case token.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, p.errorf(pos, "unexpected token %s(%q) in expression", p.tok.Type, p.tok.Literal)
	}
}
