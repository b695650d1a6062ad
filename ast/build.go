package ast

import (
	"strconv"
	"strings"

	"github.com/gochef/chef/measure"
	"github.com/gochef/chef/parsetree"
)

// Build lowers a parsetree.Node rooted at parsetree.RuleRecipes into
// Recipes, or returns a *ParseError.
func Build(root *parsetree.Node) (*Recipes, error) {
	if root == nil || root.Rule != parsetree.RuleRecipes {
		return nil, ruleNotFoundErr(0, 0, "expected a recipes root node")
	}
	recipes := NewRecipes()
	for _, child := range root.Children {
		recipe, err := buildRecipe(child)
		if err != nil {
			return nil, err
		}
		recipes.Set(recipe.Name, recipe)
	}
	return recipes, nil
}

func buildRecipe(node *parsetree.Node) (*Recipe, error) {
	c := parsetree.NewCursor(node)

	nameNode := c.TryNext(parsetree.RuleRecipeName)
	if nameNode == nil {
		return nil, ruleNotFoundErr(0, 0, "recipe is missing a title")
	}
	recipe := &Recipe{Name: strings.ToLower(nameNode.Text)}

	if comment := c.TryNext(parsetree.RuleRecipeComment); comment != nil {
		recipe.Comment = comment.Text
		recipe.HasComment = true
	}

	listNode := c.TryNext(parsetree.RuleIngredientList)
	if listNode == nil {
		return nil, ruleNotFoundErr(0, 0, "recipe %q is missing an ingredient list", recipe.Name)
	}
	for _, ingNode := range listNode.Children {
		ing, err := buildIngredient(ingNode)
		if err != nil {
			return nil, err
		}
		recipe.Ingredients = append(recipe.Ingredients, ing)
	}

	methodNode := c.TryNext(parsetree.RuleMethod)
	if methodNode == nil {
		return nil, ruleNotFoundErr(0, 0, "recipe %q is missing a method", recipe.Name)
	}
	stmts, err := buildStatements(methodNode.Children)
	if err != nil {
		return nil, err
	}
	recipe.Statements = stmts

	return recipe, nil
}

func buildIngredient(node *parsetree.Node) (IngredientDefinition, error) {
	def := IngredientDefinition{}
	forceDry := false
	explicitLiquid := false

	for _, child := range node.Children {
		switch child.Rule {
		case parsetree.RuleIngredientInitialValue:
			v, err := strconv.ParseFloat(child.Text, 64)
			if err != nil {
				return def, genericErr(0, "malformed ingredient initial value %q", child.Text)
			}
			def.InitialValue = v
			def.HasInitial = true
		case parsetree.RuleIngredientMeasureType:
			if measure.IsMeasureType(child.Text) {
				forceDry = true
			}
		case parsetree.RuleIngredientMeasureDry:
			explicitLiquid = false
		case parsetree.RuleIngredientMeasureLiqd:
			if !forceDry {
				explicitLiquid = true
			}
		case parsetree.RuleIngredientName:
			def.Name = strings.ToLower(child.Text)
		}
	}
	if def.Name == "" {
		return def, genericErr(0, "ingredient declaration is missing a name")
	}
	def.Liquid = explicitLiquid
	return def, nil
}

func buildStatements(nodes []*parsetree.Node) ([]Statement, error) {
	stmts := make([]Statement, 0, len(nodes))
	for _, n := range nodes {
		stmt, err := buildStatement(n)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// bowlID extracts the container number from an optional mixing-bowl or
// baking-dish node, defaulting to 1 per spec.md's "bowl and dish IDs
// default to 1 where omitted syntactically" invariant.
func bowlID(node *parsetree.Node) int {
	if node == nil || len(node.Children) == 0 {
		return 1
	}
	n, err := strconv.Atoi(trimOrdinalSuffix(node.Children[0].Text))
	if err != nil {
		return 1
	}
	return n
}

func trimOrdinalSuffix(s string) string {
	lower := strings.ToLower(s)
	for _, suf := range []string{"st", "nd", "rd", "th"} {
		if strings.HasSuffix(lower, suf) {
			return s[:len(s)-len(suf)]
		}
	}
	return s
}

func findContainer(node *parsetree.Node, rules ...parsetree.Rule) *parsetree.Node {
	for _, child := range node.Children {
		for _, r := range rules {
			if child.Rule == r {
				return child
			}
		}
	}
	return nil
}

func buildStatement(node *parsetree.Node) (Statement, error) {
	switch node.Rule {
	case parsetree.RuleTakeStatement:
		return &ReadStatement{Ingredient: strings.ToLower(node.Text)}, nil
	case parsetree.RuleCheckStatement:
		return &CheckInputStatement{Ingredient: strings.ToLower(node.Text)}, nil
	case parsetree.RulePutStatement:
		return &PushStatement{
			Ingredient: ingredientName(node),
			BowlID:     bowlID(findContainer(node, parsetree.RuleMixingBowl)),
		}, nil
	case parsetree.RuleFoldStatement:
		return &PopStatement{
			Ingredient: ingredientName(node),
			BowlID:     bowlID(findContainer(node, parsetree.RuleMixingBowl)),
		}, nil
	case parsetree.RuleAddStatement:
		return &ArithStatement{
			Op:         Add,
			Ingredient: ingredientName(node),
			BowlID:     bowlID(findContainer(node, parsetree.RuleMixingBowl)),
		}, nil
	case parsetree.RuleAddDryStatement:
		return &AddAllStatement{BowlID: bowlID(findContainer(node, parsetree.RuleMixingBowl))}, nil
	case parsetree.RuleRemoveStatement:
		return &ArithStatement{
			Op:         Subtract,
			Ingredient: ingredientName(node),
			BowlID:     bowlID(findContainer(node, parsetree.RuleMixingBowl)),
		}, nil
	case parsetree.RuleCombineStatement:
		return &ArithStatement{
			Op:         Multiply,
			Ingredient: ingredientName(node),
			BowlID:     bowlID(findContainer(node, parsetree.RuleMixingBowl)),
		}, nil
	case parsetree.RuleDivideStatement:
		return &ArithStatement{
			Op:         Divide,
			Ingredient: ingredientName(node),
			BowlID:     bowlID(findContainer(node, parsetree.RuleMixingBowl)),
		}, nil
	case parsetree.RuleLiquefyStatement:
		return &ToCharStatement{Ingredient: strings.ToLower(node.Text)}, nil
	case parsetree.RuleLiquefyBowlStmt:
		return &ToCharAllStatement{BowlID: bowlID(findContainer(node, parsetree.RuleMixingBowl))}, nil
	case parsetree.RuleStirBowlStatement:
		return &MoveDynamicStatement{
			Ingredient: ingredientName(node),
			BowlID:     bowlID(findContainer(node, parsetree.RuleMixingBowl)),
		}, nil
	case parsetree.RuleStirStatement:
		timeNode := findContainer(node, parsetree.RuleStirBowlTime)
		offset := 0
		if timeNode != nil {
			offset, _ = strconv.Atoi(timeNode.Text)
		}
		return &MoveStaticStatement{Offset: offset, BowlID: bowlID(findContainer(node, parsetree.RuleMixingBowl))}, nil
	case parsetree.RuleMixBowlStatement:
		return &ShuffleStatement{BowlID: bowlID(findContainer(node, parsetree.RuleMixingBowl))}, nil
	case parsetree.RuleCleanBowlStatement:
		return &ClearStatement{BowlID: bowlID(findContainer(node, parsetree.RuleMixingBowl))}, nil
	case parsetree.RuleSortBowlStatement:
		return &SortStatement{BowlID: bowlID(findContainer(node, parsetree.RuleMixingBowl))}, nil
	case parsetree.RulePourBowlStatement:
		return &SetResultStatement{
			BowlID: bowlID(findContainer(node, parsetree.RuleMixingBowl)),
			DishID: bowlID(findContainer(node, parsetree.RuleBakingDish)),
		}, nil
	case parsetree.RuleExamineStatement:
		// The parser only attaches children for the "Examine contents of
		// ... bowl." shape; "Examine the <ingredient>." is a bare leaf
		// node with Text set and no children, so presence of children
		// alone disambiguates the two surface forms here.
		if bowl := findContainer(node, parsetree.RuleMixingBowl); bowl != nil || len(node.Children) > 0 {
			return &ExamineBowlStatement{BowlID: bowlID(bowl)}, nil
		}
		return &ExamineStatement{Ingredient: strings.ToLower(node.Text)}, nil
	case parsetree.RuleLoopBreakStatement:
		return &BreakLoopStatement{}, nil
	case parsetree.RuleServeWithStatement:
		return &CallAuxiliaryStatement{Recipe: strings.ToLower(node.Text)}, nil
	case parsetree.RuleRefrigerateStmt:
		count := 0
		if d := findContainer(node, parsetree.RuleRefrigerateDuration); d != nil {
			count, _ = strconv.Atoi(d.Text)
		}
		return &ReturnStatement{Count: count}, nil
	case parsetree.RuleServesStatement:
		count := 0
		if p := findContainer(node, parsetree.RuleServesPeople); p != nil {
			count, _ = strconv.Atoi(p.Text)
		}
		return &ReturnStatement{Count: count}, nil
	case parsetree.RuleLoopBlock:
		return buildLoop(node)
	default:
		return nil, genericErr(0, "unknown statement kind %q", node.Rule)
	}
}

// ingredientName extracts the ingredient-name child common to every
// container statement shape (Put/Fold/Add/Remove/Combine/Divide/Stir).
func ingredientName(node *parsetree.Node) string {
	if n := findContainer(node, parsetree.RuleIngredientName); n != nil {
		return strings.ToLower(n.Text)
	}
	return ""
}

// buildLoop lowers a RuleLoopBlock: a RuleLoopBeginStatement, a run of
// body statements, then a RuleLoopEndStatement. The begin/end verbs
// were already prefix-matched by the parser; the builder only needs to
// verify the shape.
func buildLoop(node *parsetree.Node) (Statement, error) {
	if len(node.Children) < 2 {
		return nil, ruleNotFoundErr(0, 0, "malformed loop block")
	}
	begin := node.Children[0]
	end := node.Children[len(node.Children)-1]
	body := node.Children[1 : len(node.Children)-1]

	if begin.Rule != parsetree.RuleLoopBeginStatement || end.Rule != parsetree.RuleLoopEndStatement {
		return nil, ruleNotFoundErr(0, 0, "malformed loop block")
	}

	testIngredient := ""
	if n := findContainer(begin, parsetree.RuleIngredientName); n != nil {
		testIngredient = strings.ToLower(n.Text)
	}

	bodyStmts, err := buildStatements(body)
	if err != nil {
		return nil, err
	}

	loop := &LoopStatement{TestIngredient: testIngredient, Body: bodyStmts}
	if n := findContainer(end, parsetree.RuleIngredientName); n != nil {
		loop.DecrementIngredient = strings.ToLower(n.Text)
		loop.HasDecrement = true
	}
	return loop, nil
}
