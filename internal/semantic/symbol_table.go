// Package semantic implements SOL25's static semantic checks: class and
// method registration, scope-checked variable resolution, and the
// well-formedness rules spec'd for inheritance, overrides, and the
// program's entry point.
package semantic

import (
	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/ast"
	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/token"
)

// MethodSymbol records one method's selector, declaring class, and arity
// — its actual declared parameter count (the method body's own block
// arity for user methods, a fixed built-in arity otherwise), which need
// not equal the selector's own keyword-colon count. Used for
// self-send/class-method-send arity checks, override-arity checks, and
// composite-selector resolution.
type MethodSymbol struct {
	Selector string
	Arity    int
	Class    string
	Decl     *ast.MethodDecl // nil for built-in methods
}

// ClassSymbol records one class's name, parent name, and method table.
type ClassSymbol struct {
	Name    string
	Parent  string
	Methods map[string]*MethodSymbol
	Decl    *ast.ClassDecl // nil for built-in classes
	builtin bool
}

func newClassSymbol(name, parent string, builtin bool) *ClassSymbol {
	return &ClassSymbol{Name: name, Parent: parent, Methods: map[string]*MethodSymbol{}, builtin: builtin}
}

// ClassManager owns the set of declared classes plus the seven built-in
// classes, and answers ancestry/method-lookup questions over them.
type ClassManager struct {
	classes map[string]*ClassSymbol
}

// NewClassManager returns a ClassManager pre-populated with SOL25's seven
// built-in classes and their built-in methods.
func NewClassManager() *ClassManager {
	cm := &ClassManager{classes: map[string]*ClassSymbol{}}
	for _, b := range builtinClasses {
		cls := newClassSymbol(b.name, b.parent, true)
		for selector, arity := range b.methods {
			cls.Methods[selector] = &MethodSymbol{Selector: selector, Arity: arity, Class: b.name}
		}
		cm.classes[b.name] = cls
	}
	return cm
}

// Lookup returns the class symbol for name, or nil if undeclared.
func (cm *ClassManager) Lookup(name string) *ClassSymbol {
	return cm.classes[name]
}

// IsBuiltin reports whether name is one of SOL25's seven built-in classes.
func (cm *ClassManager) IsBuiltin(name string) bool {
	cls := cm.classes[name]
	return cls != nil && cls.builtin
}

// Declare registers a user class declaration. It does not check for
// duplicate names or cyclic inheritance; the analyzer's pre-pass does
// that, since it needs to report a specific error per violation.
func (cm *ClassManager) Declare(decl *ast.ClassDecl) *ClassSymbol {
	cls := newClassSymbol(decl.Name, decl.Parent, false)
	cls.Decl = decl
	for _, m := range decl.Methods {
		cls.Methods[m.Selector] = &MethodSymbol{
			Selector: m.Selector, Arity: m.Body.Arity(), Class: decl.Name, Decl: m,
		}
	}
	cm.classes[decl.Name] = cls
	return cls
}

// Ancestors returns the chain of class names from name up to (and
// including) "Object", or nil if name is undeclared or the chain does
// not terminate at Object within len(classes)+1 steps (a cycle).
func (cm *ClassManager) Ancestors(name string) []string {
	var chain []string
	seen := map[string]bool{}
	cur := name
	for {
		if cur == "" || seen[cur] {
			return nil
		}
		cls := cm.classes[cur]
		if cls == nil {
			return nil
		}
		seen[cur] = true
		chain = append(chain, cur)
		if cur == "Object" {
			return chain
		}
		cur = cls.Parent
	}
}

// IsCyclic reports whether name's ancestry chain never reaches Object
// because it loops back on itself. A class whose parent is simply
// undeclared is reported separately (UndefinedSymbolError), not as a cycle.
func (cm *ClassManager) IsCyclic(name string) bool {
	seen := map[string]bool{}
	cur := name
	for {
		if seen[cur] {
			return true
		}
		cls := cm.classes[cur]
		if cls == nil {
			return false // undeclared parent, not a cycle
		}
		seen[cur] = true
		if cur == "Object" {
			return false
		}
		cur = cls.Parent
	}
}

// ResolveMethod looks up selector on class name's ancestry chain,
// returning the first match (most specific class first) or nil.
func (cm *ClassManager) ResolveMethod(name, selector string) *MethodSymbol {
	chain := cm.Ancestors(name)
	for _, cname := range chain {
		if m := cm.classes[cname].Methods[selector]; m != nil {
			return m
		}
	}
	return nil
}

// All returns every declared user class, in no particular order.
func (cm *ClassManager) All() []*ClassSymbol {
	var out []*ClassSymbol
	for _, c := range cm.classes {
		if !c.builtin {
			out = append(out, c)
		}
	}
	return out
}

// binding records one name's declaration site and whether it was
// introduced as a block's formal parameter (as opposed to a plain
// assignment target), so the analyzer can tell the two apart when an
// assignment targets a name already bound in the current scope.
type binding struct {
	pos     token.Position
	isParam bool
}

// Scope is one block's or method's own variable namespace: its formal
// parameters plus its own locals (SOL25 has no separate local-variable
// declaration; any assignment target introduces one). It does not inherit
// bindings from an enclosing Scope — only self/super carry across block
// boundaries, and the analyzer recognizes those directly rather than
// storing them here.
type Scope struct {
	vars   map[string]binding
	parent *Scope
}

// ScopeManager is a stack of Scopes, pushed on method/block entry and
// popped on exit, mirroring the analyzer's single-pass traversal. Only the
// top of the stack is ever consulted for name resolution; parent links
// exist solely to restore the previous top on Pop.
type ScopeManager struct {
	top *Scope
}

// NewScopeManager returns an empty ScopeManager.
func NewScopeManager() *ScopeManager { return &ScopeManager{} }

// Push opens a new nested scope.
func (sm *ScopeManager) Push() {
	sm.top = &Scope{vars: map[string]binding{}, parent: sm.top}
}

// Pop closes the innermost scope.
func (sm *ScopeManager) Pop() {
	if sm.top != nil {
		sm.top = sm.top.parent
	}
}

// DeclareParam binds name in the innermost scope as a formal parameter.
func (sm *ScopeManager) DeclareParam(name string, pos token.Position) {
	sm.top.vars[name] = binding{pos: pos, isParam: true}
}

// DeclareVar binds name in the innermost scope as a plain local, unless
// it is already bound there (assigning an existing local is
// non-destructive and must not downgrade a parameter binding to a
// variable one).
func (sm *ScopeManager) DeclareVar(name string, pos token.Position) {
	if _, ok := sm.top.vars[name]; ok {
		return
	}
	sm.top.vars[name] = binding{pos: pos}
}

// DeclaredInCurrent reports whether name is already bound in the
// innermost scope specifically (used for the formal-parameter and
// same-block local collision rule).
func (sm *ScopeManager) DeclaredInCurrent(name string) bool {
	_, ok := sm.top.vars[name]
	return ok
}

// IsParamInCurrent reports whether name is bound in the innermost scope
// as a formal parameter, rather than a plain local variable.
func (sm *ScopeManager) IsParamInCurrent(name string) bool {
	b, ok := sm.top.vars[name]
	return ok && b.isParam
}

// Resolve reports whether name is a Variable or FormalParameter visible in
// the current (innermost) scope. Unlike a conventional lexical scope chain,
// a block's own locals and parameters do not leak into nested blocks: only
// the pseudo-variables self/super propagate downward, and those are
// recognized separately by the analyzer rather than stored here. Entering
// a nested block starts that block's variable namespace from empty.
func (sm *ScopeManager) Resolve(name string) bool {
	_, ok := sm.top.vars[name]
	return ok
}
