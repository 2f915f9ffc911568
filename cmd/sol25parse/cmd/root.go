// Package cmd implements sol25parse's command-line surface: a single
// command accepting only -h/--help, everything else coming from stdin.
package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/facade"
	"github.com/Honziksick/ipp-project-1-sol25-parser/internal/sol25err"
)

const helpEpilog = `
Exit codes:
   0  success; the program's XML representation was written to stdout
  10  wrong combination or number of command-line arguments
  11  error opening/reading the input file (or stdin)
  12  error opening/writing the output file (or stdout)
  21  lexical error in the source code
  22  syntax error in the source code
  31  semantic error: missing Main class or its parameterless run method
  32  semantic error: use of an undefined variable, symbol, or class
  33  semantic error: bad arity in a method or block definition/call
  34  semantic error: collision of a local/parameter variable's name
  35  other semantic error
  99  internal error unrelated to the input program
`

// newRootCommand builds a fresh cobra command for one invocation. A new
// command is built per call, not reused as a package-level var, so
// concurrent or repeated test invocations never share flag state.
func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "sol25parse",
		Short: "Static analyzer and XML serializer for SOL25 source code",
		Long: `sol25parse reads a SOL25 program from standard input, performs
lexical, syntactic, and semantic analysis, and writes the program's
abstract syntax tree to standard output as XML.

It takes no arguments beyond an optional -h/--help, and that flag must
appear alone: any other argument, or -h/--help combined with anything
else, is a parameter error.`,
		Example: "sol25parse < program.sol25",
		Args:    cobra.ArbitraryArgs,
		// Flag parsing is disabled so that cobra's built-in -h/--help
		// handling never intercepts execution: that shortcut fires whenever
		// the flag is present anywhere in argv, but -h/--help is only valid
		// here when it is the invocation's one and only argument. RunE does
		// that check itself against the raw, unparsed argument list.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
				return c.Help()
			}
			if len(args) > 0 {
				return sol25err.New(sol25err.ArgumentError, "sol25parse accepts only -h/--help given alone, got %v", args)
			}
			out, err := facade.Analyze(stdin)
			if err != nil {
				return err
			}
			_, writeErr := io.WriteString(stdout, out)
			if writeErr != nil {
				return sol25err.New(sol25err.OutputFileError, "could not write output: %v", writeErr)
			}
			return nil
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetHelpTemplate(root.HelpTemplate() + helpEpilog)
	return root
}

// Run executes the CLI once against the given args and I/O streams and
// returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCommand(stdin, stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return int(sol25err.OK)
	}

	sErr, ok := err.(*sol25err.Error)
	if !ok {
		sErr = sol25err.New(sol25err.InternalError, "%v", err)
	}
	sErr.Report(stderr)
	return int(sErr.Code)
}
