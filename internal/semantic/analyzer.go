package semantic

import (
	"fmt"
	"strings"

	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/ast"
	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/sol25err"
)

// Analyzer walks a *ast.Program and checks it against every static
// semantic rule SOL25 defines: class well-formedness, method arity and
// override consistency, scope-checked variable resolution, and the
// presence of a runnable entry point.
type Analyzer struct {
	classes      *ClassManager
	scopes       *ScopeManager
	currentClass string
}

// New returns an Analyzer with a fresh built-in class table.
func New() *Analyzer {
	return &Analyzer{classes: NewClassManager(), scopes: NewScopeManager()}
}

// Analyze runs every check against prog and returns the first violation
// found, or nil if the program is semantically valid.
func Analyze(prog *ast.Program) *sol25err.Error {
	a := New()
	if err := a.registerClasses(prog); err != nil {
		return err
	}
	if err := a.checkInheritance(); err != nil {
		return err
	}
	if err := a.checkOverrideArities(); err != nil {
		return err
	}
	for _, class := range prog.Classes {
		a.currentClass = class.Name
		for _, method := range class.Methods {
			if err := a.analyzeMethod(method); err != nil {
				return err
			}
		}
	}
	return a.checkEntryPoint()
}

// registerClasses is the pre-pass: it declares every user class and
// rejects duplicate names and collisions with built-in class names.
func (a *Analyzer) registerClasses(prog *ast.Program) *sol25err.Error {
	for _, class := range prog.Classes {
		if a.classes.IsBuiltin(class.Name) {
			return sol25err.New(sol25err.OtherSemanticError,
				"class %q redefines a built-in class", class.Name)
		}
		if existing := a.classes.Lookup(class.Name); existing != nil && existing.Decl != nil {
			return sol25err.New(sol25err.OtherSemanticError,
				"class %q is declared more than once", class.Name)
		}
		seen := map[string]bool{}
		for _, m := range class.Methods {
			if seen[m.Selector] {
				return sol25err.New(sol25err.OtherSemanticError,
					"method %q is declared more than once in class %q", m.Selector, class.Name)
			}
			seen[m.Selector] = true
		}
		a.classes.Declare(class)
	}
	return nil
}

// checkInheritance verifies every declared class's parent exists and that
// no inheritance cycle exists.
func (a *Analyzer) checkInheritance() *sol25err.Error {
	for _, class := range a.classes.All() {
		parent := a.classes.Lookup(class.Parent)
		if parent == nil {
			return sol25err.New(sol25err.UndefinedSymbolError,
				"class %q inherits from undefined class %q", class.Name, class.Parent)
		}
		if a.classes.IsCyclic(class.Name) {
			return sol25err.New(sol25err.OtherSemanticError,
				"class %q participates in a cyclic inheritance chain", class.Name)
		}
	}
	return nil
}

// checkOverrideArities verifies that every method overriding an inherited
// method (same selector declared on an ancestor) keeps the ancestor's own
// declared arity. A method's own selector is free to diverge from its
// body's parameter count when nothing overrides or self-sends it; only an
// override is required to agree with what it overrides.
func (a *Analyzer) checkOverrideArities() *sol25err.Error {
	for _, class := range a.classes.All() {
		for _, m := range class.Decl.Methods {
			ancestor := a.classes.ResolveMethod(class.Parent, m.Selector)
			if ancestor == nil {
				continue
			}
			if m.Body.Arity() != ancestor.Arity {
				return sol25err.New(sol25err.ArityError,
					"method %q overrides %q's method of the same name, which takes %d argument(s), but declares %d",
					m.Selector, ancestor.Class, ancestor.Arity, m.Body.Arity())
			}
		}
	}
	return nil
}

// checkEntryPoint enforces that a class Main exists and declares a
// zero-arity instance method run.
func (a *Analyzer) checkEntryPoint() *sol25err.Error {
	main := a.classes.Lookup("Main")
	if main == nil || main.Decl == nil {
		return sol25err.New(sol25err.SemanticMainRunError, "program does not declare a class Main")
	}
	run := main.Methods["run"]
	if run == nil || run.Arity != 0 {
		return sol25err.New(sol25err.SemanticMainRunError, "class Main does not declare a parameterless method run")
	}
	return nil
}

// analyzeMethod checks one method: a method named run must take no
// parameters (ArityError otherwise), and its body is a block whose
// parameters are the outermost scope of the method.
func (a *Analyzer) analyzeMethod(m *ast.MethodDecl) *sol25err.Error {
	if m.Selector == "run" && m.Body.Arity() != 0 {
		return sol25err.New(sol25err.ArityError,
			"method \"run\" of class %q must take no parameters, but declares %d", a.currentClass, m.Body.Arity())
	}
	return a.analyzeBlock(m.Body)
}

func (a *Analyzer) analyzeBlock(b *ast.Block) *sol25err.Error {
	a.scopes.Push()
	defer a.scopes.Pop()

	seen := map[string]bool{}
	for _, p := range b.Parameters {
		if seen[p.Name] {
			return sol25err.New(sol25err.VariableCollisionError,
				"parameter %q is declared more than once in the same block", p.Name)
		}
		seen[p.Name] = true
		a.scopes.DeclareParam(p.Name, p.Pos())
	}
	for _, stmt := range b.Statements {
		if err := a.analyzeAssign(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeAssign(asn *ast.Assign) *sol25err.Error {
	if asn.Target == "self" || asn.Target == "super" {
		return sol25err.New(sol25err.OtherSemanticError,
			"cannot assign to pseudo-variable %q", asn.Target)
	}
	if a.scopes.IsParamInCurrent(asn.Target) {
		return sol25err.New(sol25err.VariableCollisionError,
			"cannot assign to formal parameter %q", asn.Target)
	}
	if !a.scopes.DeclaredInCurrent(asn.Target) && a.scopes.Resolve(asn.Target) {
		return sol25err.New(sol25err.VariableCollisionError,
			"variable %q collides with a parameter of an enclosing block", asn.Target)
	}
	a.scopes.DeclareVar(asn.Target, asn.TargetPos)
	return a.analyzeExpr(asn.Expression)
}

func (a *Analyzer) analyzeExpr(e ast.Expr) *sol25err.Error {
	switch n := e.(type) {
	case *ast.IntLiteral, *ast.StringLiteral, *ast.NilLiteral, *ast.TrueLiteral, *ast.FalseLiteral:
		return nil
	case *ast.IdentifierRef:
		return a.analyzeIdentifierRef(n)
	case *ast.BlockLiteral:
		return a.analyzeBlock(n.Block)
	case *ast.Send:
		return a.analyzeSend(n)
	default:
		return sol25err.New(sol25err.InternalError, "unhandled expression node %T", e)
	}
}

func (a *Analyzer) analyzeIdentifierRef(ref *ast.IdentifierRef) *sol25err.Error {
	switch ref.Name {
	case "self", "super":
		return nil
	}
	if ref.IsClassRef() {
		if a.classes.Lookup(ref.Name) == nil {
			return sol25err.New(sol25err.UndefinedSymbolError,
				"reference to undefined class %q", ref.Name)
		}
		return nil
	}
	if !a.scopes.Resolve(ref.Name) {
		return sol25err.New(sol25err.UndefinedSymbolError,
			"undefined variable %q", ref.Name)
	}
	return nil
}

// controlFlowBlockArity lists the built-in control-flow selectors whose
// arguments are expected to be literal blocks, and the arity each
// positional block argument must have. Checked only when the argument is
// itself a literal block (statically known); a variable or expression
// holding a block is resolved dynamically and not checked here.
var controlFlowBlockArity = map[string][]int{
	"ifTrue:ifFalse:": {0, 0},
	"and:":             {0},
	"or:":              {0},
	"whileTrue:":       {0},
	"timesRepeat:":     {0},
}

func (a *Analyzer) analyzeSend(s *ast.Send) *sol25err.Error {
	if err := a.analyzeExpr(s.Receiver); err != nil {
		return err
	}
	for _, arg := range s.Args {
		if err := a.analyzeExpr(arg); err != nil {
			return err
		}
	}
	if wants, ok := controlFlowBlockArity[s.Selector]; ok {
		for i, arg := range s.Args {
			if i >= len(wants) {
				break
			}
			if block, ok := arg.(*ast.BlockLiteral); ok && block.Arity() != wants[i] {
				return sol25err.New(sol25err.ArityError,
					"block argument to %q must take %s", s.Selector, arityWord(wants[i]))
			}
		}
	}

	recv, ok := s.Receiver.(*ast.IdentifierRef)
	if !ok {
		return nil
	}
	if recv.Name == "self" {
		return a.checkSelfSendArity(s)
	}
	if !recv.IsClassRef() {
		return nil
	}
	return a.checkClassMethodSend(recv.Name, s)
}

// checkSelfSendArity checks a self-send's argument count against the
// selector's resolution in the current class, when it resolves there.
// A selector the current class does not declare may still exist on
// whatever class self is at runtime, so that case is left unchecked
// (per spec.md:253, static arity checking applies only when the selector
// is declared in the current class).
func (a *Analyzer) checkSelfSendArity(s *ast.Send) *sol25err.Error {
	m := a.classes.ResolveMethod(a.currentClass, s.Selector)
	if m == nil {
		return nil
	}
	if m.Arity != len(s.Args) {
		return sol25err.New(sol25err.ArityError,
			"method %q expects %d argument(s), but got %d", s.Selector, m.Arity, len(s.Args))
	}
	return nil
}

// checkClassMethodSend resolves s.Selector against className's method
// table. An exact match must still agree in arity (its own selector and
// body are free to diverge, see checkOverrideArities); a composite
// selector with no exact match is resolved keyword-by-keyword (each "k:"
// part looked up independently, contributing 0 if absent), per the
// structural pairing rules hard-coded for startsWith:/endsBefore: and
// ifTrue:/ifFalse:.
func (a *Analyzer) checkClassMethodSend(className string, s *ast.Send) *sol25err.Error {
	if m := a.classes.ResolveMethod(className, s.Selector); m != nil {
		if m.Arity != len(s.Args) {
			return sol25err.New(sol25err.ArityError,
				"class method %q of class %q expects %d argument(s), but got %d",
				s.Selector, className, m.Arity, len(s.Args))
		}
		return nil
	}
	if !strings.Contains(s.Selector, ":") {
		return sol25err.New(sol25err.UndefinedSymbolError,
			"class %q has no class method %q", className, s.Selector)
	}
	return a.resolveCompositeSelector(className, s)
}

func (a *Analyzer) resolveCompositeSelector(className string, s *ast.Send) *sol25err.Error {
	parts := strings.Split(strings.TrimSuffix(s.Selector, ":"), ":")
	for i, part := range parts {
		if part == "startsWith" && (i+1 >= len(parts) || parts[i+1] != "endsBefore") {
			return sol25err.New(sol25err.UndefinedSymbolError,
				"\"startsWith\" keyword must be immediately followed by \"endsBefore\" in %q", s.Selector)
		}
		if part == "ifTrue" && (i+1 >= len(parts) || parts[i+1] != "ifFalse") {
			return sol25err.New(sol25err.UndefinedSymbolError,
				"\"ifTrue\" keyword must be immediately followed by \"ifFalse\" in %q", s.Selector)
		}
	}
	// Each resolved part contributes its own declared arity (the resolved
	// method's parameter count, which for a user method is its body's block
	// arity); a part that does not resolve on className contributes 0
	// rather than failing the lookup outright. The composite is accepted
	// only if those contributions sum to the actual argument count — a
	// missing part surfaces as an arity mismatch, not a separate existence
	// error.
	expected := 0
	for _, part := range parts {
		if m := a.classes.ResolveMethod(className, part+":"); m != nil {
			expected += m.Arity
		}
	}
	if expected != len(s.Args) {
		return sol25err.New(sol25err.ArityError,
			"composite method %q of class %q expects %d argument(s) from its resolved keyword parts, got %d",
			s.Selector, className, expected, len(s.Args))
	}
	return nil
}

func arityWord(n int) string {
	if n == 0 {
		return "no parameters"
	}
	return fmt.Sprintf("%d parameter(s)", n)
}
