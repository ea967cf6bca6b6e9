// Package cmd implements the vaina CLI, a cobra-based front end over the
// lexer/parser/evaluator packages, adapted from the teacher's
// cmd/dwscript/cmd layout.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; Date is informational only.
	Version = "0.1.0-dev"
	Date    = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "vaina",
	Short:   "vaina runs programs written in the bilingual Spanish/English scripting language",
	Version: Version,
	Long: `vaina is an interpreter for a small, dynamically-typed, bilingual
(Spanish/English) imperative scripting language: si/if, mientras/while,
para/for, funcion/function, decir/print and their English equivalents are
interchangeable at every syntax position.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("vaina version %%s\nBuilt: %s\n", Date))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

// readSource resolves a command's input, preferring an inline -e expression
// over a file argument, per the teacher CLI's convention.
func readSource(evalExpr string, args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}
