// Package facade wires the lexer, parser, semantic analyzer, and XML
// emitter into the single entry point sol25parse's CLI calls.
package facade

import (
	"io"

	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/lexer"
	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/parser"
	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/semantic"
	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/sol25err"
	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/xmlgen"
)

// Analyze reads complete SOL25 source from r, validates it, and returns
// its XML serialization. On any lexical, syntax, or semantic violation it
// returns the single categorized *sol25err.Error describing the first one
// encountered.
func Analyze(r io.Reader) (string, *sol25err.Error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", sol25err.New(sol25err.InputFileError, "could not read input: %v", err)
	}
	if len(src) == 0 {
		return "", sol25err.New(sol25err.InputFileError, "input is empty")
	}

	prog, perr := parser.Parse(string(src))
	if perr != nil {
		return "", classifyParseError(perr)
	}

	if serr := semantic.Analyze(prog); serr != nil {
		return "", serr
	}

	return xmlgen.Generate(prog), nil
}

// classifyParseError maps a lexer/parser error to its exit code. A
// *lexer.Error always comes from tokenization (LexicalError); any other
// error returned by parser.Parse is a grammar violation (SyntaxError).
func classifyParseError(err error) *sol25err.Error {
	if lexErr, ok := err.(*lexer.Error); ok {
		return sol25err.New(sol25err.LexicalError, "%s (at %s)", lexErr.Msg, lexErr.Pos.String())
	}
	if synErr, ok := err.(*parser.Error); ok {
		return sol25err.New(sol25err.SyntaxError, "%s (at %s)", synErr.Msg, synErr.Pos.String())
	}
	return sol25err.New(sol25err.InternalError, "unexpected parse error: %v", err)
}
