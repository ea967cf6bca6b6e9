package cmd

import (
	"os"
	"testing"

	"github.com/cwbudde/vaina/internal/lexer"
	"github.com/cwbudde/vaina/internal/parser"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestDumpProgramASTSnapshot snapshot-tests the textual AST rendering that
// `vaina ast` prints, so an accidental change to any node's String() method
// is caught by diffing against the committed snapshot.
func TestDumpProgramASTSnapshot(t *testing.T) {
	input := `
funcion factorial(n):
  si n <= 1:
    retornar 1
  fin
  retornar n * factorial(n - 1)
fin
factorial(5)
`
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parser errors: %+v", p.Errors())
	}

	snaps.MatchSnapshot(t, program.String())
}

// TestMain lets go-snaps prune obsolete snapshots after the package's tests
// finish running.
func TestMain(m *testing.M) {
	code := m.Run()
	snaps.Clean(m)
	os.Exit(code)
}
