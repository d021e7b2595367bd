package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/amta/internal/amtaerr"
	"github.com/cwbudde/amta/internal/interp"
	"github.com/cwbudde/amta/internal/parser"
	"github.com/cwbudde/amta/internal/stdlib"
	"github.com/spf13/cobra"
)

// runFile reads the source file named by args[0], evaluates it, and prints
// its exit value. It is the cobra handler wired as rootCmd.RunE.
func runFile(_ *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return runSource(os.Stdout, os.Stderr, string(source), maxWhileLoops)
}

// runSource lexes, parses, and evaluates source, writing the program's exit
// value to out (after a separator line, per spec.md §6) or a formatted
// diagnostic to diag. It is split out from runFile so the pipeline can be
// driven directly from a test without a real file or os.Stdout.
func runSource(out, diag io.Writer, source string, maxLoopIterations int) error {
	program, err := parser.Parse(source)
	if err != nil {
		printDiagnostic(diag, err)
		return err
	}

	e := interp.New(out, maxLoopIterations)
	stdlib.Register(e)

	exitValue, err := e.Run(program)
	if err != nil {
		printDiagnostic(diag, err)
		return err
	}

	fmt.Fprintln(out, "---")
	fmt.Fprintln(out, exitValue.String())
	return nil
}

// printDiagnostic renders a lexer/parser/runtime error to diag, using
// amtaerr's source-line-and-caret formatting when available.
func printDiagnostic(diag io.Writer, err error) {
	if ae, ok := err.(*amtaerr.Error); ok {
		fmt.Fprintln(diag, ae.Format(false))
		return
	}
	fmt.Fprintln(diag, err)
}
