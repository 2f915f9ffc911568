// Package sol25 is the public entry point for embedding sol25parse's
// analysis pipeline in another Go program, as a thin wrapper over the
// internal lexer/parser/semantic/xmlgen pipeline.
package sol25

import (
	"io"

	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/facade"
	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/sol25err"
)

// ExitCode is the exit code a failed analysis maps to, re-exported so
// callers don't need to import internal/sol25err directly.
type ExitCode = sol25err.Code

const (
	OK                     = sol25err.OK
	ArgumentError          = sol25err.ArgumentError
	InputFileError         = sol25err.InputFileError
	OutputFileError        = sol25err.OutputFileError
	LexicalError           = sol25err.LexicalError
	SyntaxError            = sol25err.SyntaxError
	SemanticMainRunError   = sol25err.SemanticMainRunError
	UndefinedSymbolError   = sol25err.UndefinedSymbolError
	ArityError             = sol25err.ArityError
	VariableCollisionError = sol25err.VariableCollisionError
	OtherSemanticError     = sol25err.OtherSemanticError
	InternalError          = sol25err.InternalError
)

// Error is the single error type an Analyze call can return.
type Error = sol25err.Error

// Analyze reads a complete SOL25 program from r and returns its XML
// serialization, or the first lexical, syntax, or semantic error found.
func Analyze(r io.Reader) (string, *Error) {
	return facade.Analyze(r)
}
