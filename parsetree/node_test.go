package parsetree

import "testing"

func TestCursorTryNext(t *testing.T) {
	parent := &Node{
		Rule: RuleRecipe,
		Children: []*Node{
			{Rule: RuleRecipeName, Text: "Caramel Sauce"},
			{Rule: RuleIngredientList},
		},
	}

	c := NewCursor(parent)
	if n := c.TryNext(RuleIngredientList); n != nil {
		t.Fatalf("expected no match against the wrong rule first, got %v", n.Rule)
	}
	name := c.TryNext(RuleRecipeName)
	if name == nil || name.Text != "Caramel Sauce" {
		t.Fatalf("expected recipeName node, got %+v", name)
	}
	if n := c.Next(); n == nil || n.Rule != RuleIngredientList {
		t.Fatalf("expected ingredientList next, got %+v", n)
	}
	if n := c.Next(); n != nil {
		t.Fatalf("expected cursor exhausted, got %+v", n)
	}
}

func TestCursorRest(t *testing.T) {
	parent := &Node{Children: []*Node{
		{Rule: RuleMixingBowl},
		{Rule: RuleBakingDish},
		{Rule: RuleBakingDish},
	}}
	c := NewCursor(parent)
	c.Next()
	rest := c.Rest()
	if len(rest) != 2 {
		t.Fatalf("expected 2 remaining nodes, got %d", len(rest))
	}
}
