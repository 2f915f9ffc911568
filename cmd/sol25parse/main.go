// Command sol25parse reads a SOL25 program from standard input, checks it
// lexically, syntactically, and semantically, and writes its XML
// serialization to standard output. On the first violation found, it
// writes a single categorized error to standard error and exits with the
// matching code.
package main

import (
	"os"

	"github.com/Honziksick/ipp-project-1-sol25-parser/cmd/sol25parse/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
