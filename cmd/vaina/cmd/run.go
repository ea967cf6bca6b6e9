package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/vaina/internal/diagnostics"
	"github.com/cwbudde/vaina/internal/evaluator"
	"github.com/cwbudde/vaina/internal/lexer"
	"github.com/cwbudde/vaina/internal/parser"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program from a file or inline expression",
	Long: `Execute a vaina program from a file or inline expression.

Examples:
  vaina run script.vn
  vaina run -e "decir \"hola\""
  vaina run --dump-ast script.vn
  vaina run --trace script.vn`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before running")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace builtin calls to stderr (with --verbose, also dump their arguments via kr/pretty)")
}

func runScript(_ *cobra.Command, args []string) error {
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

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	eval := evaluator.New()
	eval.Trace = trace
	eval.SetTraceSink(func(format string, traceArgs ...interface{}) {
		fmt.Fprintf(os.Stderr, "[trace] "+format+"\n", traceArgs...)
		if verbose {
			fmt.Fprintf(os.Stderr, "%# v\n", pretty.Formatter(traceArgs))
		}
	})

	_, runtimeErr := eval.Run(program)
	if runtimeErr != nil {
		d := diagnostics.New(diagnostics.Runtime, program.Pos(), runtimeErr.Message).WithSource(filename, input)
		fmt.Fprintln(os.Stderr, d.Format(true))
		return fmt.Errorf("execution failed: %s", runtimeErr.Kind)
	}

	return nil
}
