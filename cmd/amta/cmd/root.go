package cmd

import (
	"github.com/spf13/cobra"
)

var maxWhileLoops int

var rootCmd = &cobra.Command{
	Use:   "amta <source-file>",
	Short: "amta interprets programs in the small scripting language it hosts",
	Long: `amta is a tree-walking interpreter for a small, dynamically-typed
scripting language: a lexer and operator-precedence parser feed a
tree-walking evaluator with three variable-resolution sigils (local,
force-local, global) and a uniform object/array value model.`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	rootCmd.Flags().IntVar(&maxWhileLoops, "max_while_loops", 10000,
		"while-loop iteration budget; -1 disables the check")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
