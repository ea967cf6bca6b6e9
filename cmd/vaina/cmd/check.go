package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/vaina/internal/diagnostics"
	"github.com/cwbudde/vaina/internal/lexer"
	"github.com/cwbudde/vaina/internal/parser"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse a program and report syntax errors without running it",
	Long: `check lexes and parses a program, reporting every diagnostic found,
without evaluating it. There is no separate compiled artifact: the language
has no bytecode form, so checking a program is simply running its front end
to the point of a complete syntax tree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: checkScript,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "check inline code instead of reading from file")
}

func checkScript(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	p := parser.New(l)
	p.ParseProgram()

	diagCount := len(l.Errors()) + len(p.Errors())
	for _, le := range l.Errors() {
		d := diagnostics.New(diagnostics.Lex, le.Pos, le.Message).WithSource(filename, input)
		fmt.Fprintln(os.Stderr, d.Format(true))
	}
	for _, pe := range p.Errors() {
		d := diagnostics.New(diagnostics.Parse, pe.Pos, pe.Message).WithSource(filename, input)
		fmt.Fprintln(os.Stderr, d.Format(true))
	}

	if diagCount > 0 {
		return fmt.Errorf("%d diagnostic(s)", diagCount)
	}

	fmt.Println("ok")
	return nil
}
