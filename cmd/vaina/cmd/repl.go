package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/vaina/internal/evaluator"
	"github.com/cwbudde/vaina/internal/lexer"
	"github.com/cwbudde/vaina/internal/parser"
	"github.com/cwbudde/vaina/internal/value"
	"github.com/spf13/cobra"
)

const replPrompt = ">> "

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		startREPL(os.Stdin, os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// startREPL runs the interactive loop: one evaluator (and therefore one
// global environment) persists across every line typed, adapted from the
// Eloquence REPL's session-persistence model.
func startREPL(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	eval := evaluator.New()

	fmt.Fprintln(out, "vaina repl -- .salir/.exit to quit, .ayuda/.help for commands")

	for {
		fmt.Fprint(out, replPrompt)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if handled := handleREPLCommand(line, out, &eval); handled {
				if line == ".salir" || line == ".exit" {
					return
				}
				continue
			}
		}

		l := lexer.New(line)
		p := parser.New(l)
		program := p.ParseProgram()

		if len(p.Errors()) > 0 {
			for _, pe := range p.Errors() {
				fmt.Fprintf(out, "error de sintaxis: %s (%s)\n", pe.Message, pe.Pos)
			}
			continue
		}

		result, runtimeErr := eval.Run(program)
		if runtimeErr != nil {
			fmt.Fprintf(out, "error: %s\n", runtimeErr.String())
			continue
		}
		if result != value.Null {
			fmt.Fprintln(out, result.String())
		}
	}
}

func handleREPLCommand(line string, out io.Writer, eval **evaluator.Evaluator) bool {
	switch line {
	case ".salir", ".exit":
		fmt.Fprintln(out, "adios")
		return true
	case ".limpiar", ".clear":
		*eval = evaluator.New()
		fmt.Fprintln(out, "entorno reiniciado")
		return true
	case ".ayuda", ".help":
		fmt.Fprintln(out, "comandos: .salir/.exit  .limpiar/.clear  .ayuda/.help")
		return true
	default:
		fmt.Fprintf(out, "comando desconocido: %s\n", line)
		return true
	}
}
