// Package sol25err defines the closed set of exit codes the analyzer can
// terminate with, and the single Error type used to report them.
package sol25err

import (
	"fmt"
	"io"
)

// Code is one of the fixed exit codes spec'd for sol25parse.
type Code int

const (
	OK                    Code = 0
	ArgumentError         Code = 10
	InputFileError        Code = 11
	OutputFileError       Code = 12
	LexicalError          Code = 21
	SyntaxError           Code = 22
	SemanticMainRunError  Code = 31
	UndefinedSymbolError  Code = 32
	ArityError            Code = 33
	VariableCollisionError Code = 34
	OtherSemanticError    Code = 35
	InternalError         Code = 99
)

var names = map[Code]string{
	OK:                     "OK",
	ArgumentError:          "ArgumentError",
	InputFileError:         "InputFileError",
	OutputFileError:        "OutputFileError",
	LexicalError:           "LexicalError",
	SyntaxError:            "SyntaxError",
	SemanticMainRunError:   "SemanticMainRunError",
	UndefinedSymbolError:   "UndefinedSymbolError",
	ArityError:             "ArityError",
	VariableCollisionError: "VariableCollisionError",
	OtherSemanticError:     "OtherSemanticError",
	InternalError:          "InternalError",
}

func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Error is the single error type sol25parse ever reports: an exit code, a
// fixed one-line message for that code, and an optional detail line
// identifying the specific offending class, selector, or identifier.
type Error struct {
	Code    Code
	Message string
	Detail  string
}

func (e *Error) Error() string { return e.Message }

// genericMessage holds the fixed, code-specific description every Error
// of that code carries as its Message. One string per exit code.
var genericMessage = map[Code]string{
	ArgumentError: "Missing script parameter (if required) or use of a " +
		"prohibited combination of parameters.",
	InputFileError: "Error opening input files (e.g., non-existence, " +
		"insufficient permissions).",
	OutputFileError: "Error opening output files for writing (e.g., " +
		"insufficient permissions, write error).",
	LexicalError: "Lexical error in the SOL25 source code.",
	SyntaxError:  "Syntactic error in the SOL25 source code.",
	SemanticMainRunError: "Semantic error - missing 'Main' class or its " +
		"instance method 'run'.",
	UndefinedSymbolError: "Semantic error - use of undefined (and " +
		"therefore uninitialized) variable, formal parameter, class, or " +
		"class method.",
	ArityError: "Semantic error - incorrect arity (wrong arity of the " +
		"block assigned to the selector when defining an instance method).",
	VariableCollisionError: "Semantic error - variable collision (local " +
		"variable collides with the formal parameter of the block).",
	OtherSemanticError: "Semantic error - other semantic errors.",
	InternalError: "Internal error (not affected by integration, input " +
		"files, or command line parameters).",
}

// New builds an Error of code, whose Message is the fixed description for
// that code. detailFormat, formatted with args, becomes the Detail line
// identifying the specific offending construct; pass "" for no detail.
func New(code Code, detailFormat string, args ...interface{}) *Error {
	e := &Error{Code: code, Message: genericMessage[code]}
	if detailFormat != "" {
		e.Detail = fmt.Sprintf(detailFormat, args...)
	}
	return e
}

// Report writes the error to w in sol25parse's stderr format:
//
//	Error <code>: <message>
//	Detail: <detail>
//
// The Detail line is omitted when Detail is empty.
func (e *Error) Report(w io.Writer) {
	fmt.Fprintf(w, "Error %d: %s\n", int(e.Code), e.Message)
	if e.Detail != "" {
		fmt.Fprintf(w, "Detail: %s\n", e.Detail)
	}
}
