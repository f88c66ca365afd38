// Package main implements woodsc, the command line front end of the woods
// lexer and parser.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// errReported marks a failure whose diagnostics have already been written.
var errReported = errors.New("failed")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes woodsc with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}
