package ast

import (
	"testing"

	"github.com/gochef/chef/parser"
)

func mustBuild(t *testing.T, src string) *Recipes {
	t.Helper()
	tree, err := parser.ParseString(src)
	if err != nil {
		t.Fatalf("parser.ParseString: %v", err)
	}
	recipes, err := Build(tree)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return recipes
}

func TestBuildHelloKitchenDish(t *testing.T) {
	src := "Hello Kitchen.\n\nIngredients.\n72 ml hot water.\n\nMethod.\nPut hot water into the mixing bowl.\nPour contents of the mixing bowl into the baking dish.\nServes 1.\n"
	recipes := mustBuild(t, src)
	recipe, ok := recipes.Main()
	if !ok {
		t.Fatalf("expected a main recipe")
	}
	if recipe.Name != "hello kitchen" {
		t.Fatalf("expected lowercased name, got %q", recipe.Name)
	}
	if len(recipe.Ingredients) != 1 || recipe.Ingredients[0].Name != "hot water" || !recipe.Ingredients[0].Liquid {
		t.Fatalf("unexpected ingredient: %+v", recipe.Ingredients)
	}
	if len(recipe.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d: %+v", len(recipe.Statements), recipe.Statements)
	}
	if _, ok := recipe.Statements[0].(*PushStatement); !ok {
		t.Fatalf("expected first statement to be a push, got %T", recipe.Statements[0])
	}
	ret, ok := recipe.Statements[2].(*ReturnStatement)
	if !ok || ret.Count != 1 {
		t.Fatalf("expected trailing Return{Count:1}, got %+v", recipe.Statements[2])
	}
}

func TestBuildLoopStatement(t *testing.T) {
	src := "Test.\n\nIngredients.\n3 n.\n0 zero.\n\nMethod.\nShake the n.\nPut zero into the mixing bowl.\nShake the n until shaken.\nServes 1.\n"
	recipes := mustBuild(t, src)
	recipe, _ := recipes.Main()
	loop, ok := recipe.Statements[0].(*LoopStatement)
	if !ok {
		t.Fatalf("expected first statement to be a loop, got %T", recipe.Statements[0])
	}
	if loop.TestIngredient != "n" {
		t.Fatalf("expected test ingredient \"n\", got %q", loop.TestIngredient)
	}
	if len(loop.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(loop.Body))
	}
}

func TestBuildDryIngredientDefaultsLiquidFalse(t *testing.T) {
	src := "Test.\n\nIngredients.\n2 flour.\n\nMethod.\nPut flour into the mixing bowl.\n"
	recipes := mustBuild(t, src)
	recipe, _ := recipes.Main()
	if recipe.Ingredients[0].Liquid {
		t.Fatalf("expected an unmeasured ingredient to default to dry")
	}
}

func TestRecipesInsertionOrder(t *testing.T) {
	src := "Main.\n\nIngredients.\n1 a.\n\nMethod.\nServe with Helper.\nServes 1.\n\nHelper.\n\nIngredients.\n1 b.\n\nMethod.\nPut b into the mixing bowl.\n"
	recipes := mustBuild(t, src)
	main, ok := recipes.Main()
	if !ok || main.Name != "main" {
		t.Fatalf("expected \"main\" to be the entry point, got %+v", main)
	}
	if recipes.Len() != 2 {
		t.Fatalf("expected 2 recipes, got %d", recipes.Len())
	}
}
