package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/vaina/internal/diagnostics"
	"github.com/cwbudde/vaina/internal/lexer"
	"github.com/cwbudde/vaina/internal/parser"
	"github.com/spf13/cobra"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse a program and print its syntax tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  dumpProgramAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func dumpProgramAST(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, pe := range p.Errors() {
			d := diagnostics.New(diagnostics.Parse, pe.Pos, pe.Message).WithSource(filename, input)
			fmt.Fprintln(os.Stderr, d.Format(true))
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	fmt.Println(program.String())
	return nil
}
