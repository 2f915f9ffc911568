// Package xmlgen serializes a validated SOL25 AST to the XML
// representation sol25parse writes to stdout on success.
//
// Output is built with a plain strings.Builder walk rather than
// encoding/xml.Marshal: StringLiteral.Value and the program's description
// attribute are already escaped (or, for description, deliberately
// contain the literal "&nbsp;") by the time they reach this package, and
// must be written out verbatim — a generic marshaler would escape them a
// second time.
package xmlgen

import (
	"fmt"
	"strings"

	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/ast"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>`

// Generate renders prog as the complete XML document.
func Generate(prog *ast.Program) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteByte('\n')
	g := &generator{sb: &sb}
	g.program(prog)
	return sb.String()
}

type generator struct {
	sb *strings.Builder
}

func (g *generator) program(prog *ast.Program) {
	g.sb.WriteString(`<program language="SOL25"`)
	if prog.HasComment {
		fmt.Fprintf(g.sb, ` description="%s"`, prog.Description)
	}
	g.sb.WriteString(">\n")
	for _, class := range prog.Classes {
		g.class(class)
	}
	g.sb.WriteString("</program>\n")
}

func (g *generator) class(class *ast.ClassDecl) {
	fmt.Fprintf(g.sb, `<class name="%s" parent="%s">`, class.Name, class.Parent)
	g.sb.WriteByte('\n')
	for _, method := range class.Methods {
		g.method(method)
	}
	g.sb.WriteString("</class>\n")
}

func (g *generator) method(m *ast.MethodDecl) {
	fmt.Fprintf(g.sb, `<method selector="%s">`, m.Selector)
	g.sb.WriteByte('\n')
	g.block(m.Body)
	g.sb.WriteString("</method>\n")
}

func (g *generator) block(b *ast.Block) {
	fmt.Fprintf(g.sb, `<block arity="%d">`, b.Arity())
	g.sb.WriteByte('\n')
	for i, p := range b.Parameters {
		fmt.Fprintf(g.sb, `<parameter name="%s" order="%d"/>`, p.Name, i+1)
		g.sb.WriteByte('\n')
	}
	for i, stmt := range b.Statements {
		g.assign(stmt, i+1)
	}
	g.sb.WriteString("</block>\n")
}

func (g *generator) assign(a *ast.Assign, order int) {
	fmt.Fprintf(g.sb, `<assign order="%d">`, order)
	g.sb.WriteByte('\n')
	fmt.Fprintf(g.sb, `<var name="%s"/>`, a.Target)
	g.sb.WriteByte('\n')
	fmt.Fprintf(g.sb, `<expr>`)
	g.sb.WriteByte('\n')
	g.expr(a.Expression)
	g.sb.WriteString("</expr>\n")
	g.sb.WriteString("</assign>\n")
}

func (g *generator) expr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.IntLiteral:
		fmt.Fprintf(g.sb, `<literal class="Integer" value="%s"/>`, n.Literal)
		g.sb.WriteByte('\n')
	case *ast.StringLiteral:
		fmt.Fprintf(g.sb, `<literal class="String" value="%s"/>`, n.Value)
		g.sb.WriteByte('\n')
	case *ast.NilLiteral:
		g.sb.WriteString(`<literal class="Nil" value="nil"/>`)
		g.sb.WriteByte('\n')
	case *ast.TrueLiteral:
		g.sb.WriteString(`<literal class="True" value="true"/>`)
		g.sb.WriteByte('\n')
	case *ast.FalseLiteral:
		g.sb.WriteString(`<literal class="False" value="false"/>`)
		g.sb.WriteByte('\n')
	case *ast.IdentifierRef:
		g.identifierRef(n)
	case *ast.BlockLiteral:
		g.block(n.Block)
	case *ast.Send:
		g.send(n)
	default:
		// Unreachable: the analyzer walks this same tree and rejects any
		// node shape it doesn't recognize before Generate ever runs.
		panic(fmt.Sprintf("xmlgen: unhandled expression node %T", e))
	}
}

// identifierRef renders a class-name reference (uppercase identifier,
// including self/super's dynamic class is NOT handled here) as a literal
// of class "class"; a variable or pseudo-variable reference is rendered
// as <var>.
func (g *generator) identifierRef(n *ast.IdentifierRef) {
	if n.IsClassRef() {
		fmt.Fprintf(g.sb, `<literal class="class" value="%s"/>`, n.Name)
		g.sb.WriteByte('\n')
		return
	}
	fmt.Fprintf(g.sb, `<var name="%s"/>`, n.Name)
	g.sb.WriteByte('\n')
}

func (g *generator) send(s *ast.Send) {
	fmt.Fprintf(g.sb, `<send selector="%s">`, s.Selector)
	g.sb.WriteByte('\n')
	g.sb.WriteString("<expr>\n")
	g.expr(s.Receiver)
	g.sb.WriteString("</expr>\n")
	for i, arg := range s.Args {
		fmt.Fprintf(g.sb, `<arg order="%d">`, i+1)
		g.sb.WriteByte('\n')
		g.expr(arg)
		g.sb.WriteString("</arg>\n")
	}
	g.sb.WriteString("</send>\n")
}
