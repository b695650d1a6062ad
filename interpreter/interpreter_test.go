package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gochef/chef/ast"
	"github.com/gochef/chef/parser"
)

func mustBuild(t *testing.T, src string) *ast.Recipes {
	t.Helper()
	tree, err := parser.ParseString(src)
	if err != nil {
		t.Fatalf("parser.ParseString: %v", err)
	}
	recipes, err := ast.Build(tree)
	if err != nil {
		t.Fatalf("ast.Build: %v", err)
	}
	return recipes
}

func run(t *testing.T, src, stdin string) string {
	t.Helper()
	recipes := mustBuild(t, src)
	var out bytes.Buffer
	interp := New(recipes, WithStdin(strings.NewReader(stdin)), WithStdout(&out), WithSeed(1))
	if err := interp.RunMain(); err != nil {
		t.Fatalf("RunMain: %v", err)
	}
	return out.String()
}

func TestHelloWorldDish(t *testing.T) {
	src := "Hello Kitchen.\n\nIngredients.\n72 ml hot water.\n\nMethod.\nPut hot water into the mixing bowl.\nPour contents of the mixing bowl into the baking dish.\nServes 1.\n"
	if got := run(t, src, ""); got != "H" {
		t.Fatalf("expected \"H\", got %q", got)
	}
}

func TestNumericDish(t *testing.T) {
	src := "Numbers.\n\nIngredients.\n1 one.\n2 two.\n\nMethod.\nPut one into the mixing bowl.\nPut two into the mixing bowl.\nPour contents of the mixing bowl into the baking dish.\nServes 1.\n"
	if got := run(t, src, ""); got != "2, 1, " {
		t.Fatalf("expected \"2, 1, \", got %q", got)
	}
}

func TestLoopCountdown(t *testing.T) {
	src := "Countdown.\n\nIngredients.\n3 n.\n0 zero.\n\nMethod.\nShake the n.\nPut zero into the mixing bowl.\nShake the n until shaken.\nPour contents of the mixing bowl into the baking dish.\nServes 1.\n"
	got := run(t, src, "")
	if got != "0, 0, 0, " {
		t.Fatalf("expected three copies of zero, got %q", got)
	}
}

func TestAuxiliaryCallSplice(t *testing.T) {
	src := strings.Join([]string{
		"Main.",
		"",
		"Ingredients.",
		"1 a.",
		"",
		"Method.",
		"Put a into the mixing bowl.",
		"Serve with Helper.",
		"Pour contents of the mixing bowl into the baking dish.",
		"Serves 1.",
		"",
		"Helper.",
		"",
		"Ingredients.",
		"2 b.",
		"3 c.",
		"",
		"Method.",
		"Put b into the mixing bowl.",
		"Put c into the mixing bowl.",
		"",
	}, "\n")
	got := run(t, src, "")
	if got != "1, 2, 3, 1, " {
		t.Fatalf("expected \"1, 2, 3, 1, \", got %q", got)
	}
}

func TestBreakInsideNestedLoop(t *testing.T) {
	src := strings.Join([]string{
		"Nested.",
		"",
		"Ingredients.",
		"2 outer.",
		"1 inner.",
		"0 zero.",
		"",
		"Method.",
		"Stir the outer.",
		"Stir the inner.",
		"Put zero into the mixing bowl.",
		"Set aside.",
		"Stir the inner until stirred.",
		"Stir the outer until stirred.",
		"Pour contents of the mixing bowl into the baking dish.",
		"Serves 1.",
		"",
	}, "\n")
	got := run(t, src, "")
	if got != "0, 0, " {
		t.Fatalf("expected outer loop to run twice, got %q", got)
	}
}
