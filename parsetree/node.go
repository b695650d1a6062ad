// Package parsetree is the labeled-span parse tree produced by the
// grammar-driven parser and consumed exclusively by the ast package.
//
// The grammar itself is treated as a black-box oracle (spec §4.1): it
// maps source spans to rule-labeled nodes. This mirrors a pest parse
// tree (Pair/Rule in the Siphalor/chef-rs original this system was
// distilled from) without pulling in a parser-generator dependency.
package parsetree

// Rule labels a Node with the grammar production that produced it.
type Rule string

const (
	RuleRecipes Rule = "recipes"
	RuleRecipe  Rule = "recipe"

	RuleRecipeName    Rule = "recipeName"
	RuleRecipeComment Rule = "recipeComment"

	RuleIngredientList         Rule = "ingredientList"
	RuleIngredientDefinition   Rule = "ingredientDefinition"
	RuleIngredientInitialValue Rule = "ingredientInitialValue"
	RuleIngredientMeasureType  Rule = "ingredientMeasureType"
	RuleIngredientMeasureDry   Rule = "ingredientMeasureDry"
	RuleIngredientMeasureLiqd  Rule = "ingredientMeasureLiquid"
	RuleIngredientName         Rule = "ingredientName"

	RuleMethod Rule = "method"

	RuleTakeStatement       Rule = "takeStatement"
	RuleCheckStatement      Rule = "checkStatement"
	RulePutStatement        Rule = "putStatement"
	RuleFoldStatement       Rule = "foldStatement"
	RuleAddStatement        Rule = "addStatement"
	RuleAddDryStatement     Rule = "addDryStatement"
	RuleRemoveStatement     Rule = "removeStatement"
	RuleCombineStatement    Rule = "combineStatement"
	RuleDivideStatement     Rule = "divideStatement"
	RuleLiquefyStatement    Rule = "liquefyStatement"
	RuleLiquefyBowlStmt     Rule = "liquefyBowlStatement"
	RuleStirStatement       Rule = "stirStatement"
	RuleStirBowlStatement   Rule = "stirBowlStatement"
	RuleStirBowlTime        Rule = "stirBowlTime"
	RuleMixBowlStatement    Rule = "mixBowlStatement"
	RuleCleanBowlStatement  Rule = "cleanBowlStatement"
	RuleSortBowlStatement   Rule = "sortBowlStatement"
	RulePourBowlStatement   Rule = "pourBowlStatement"
	RuleExamineStatement    Rule = "examineStatement"
	RuleLoopBlock           Rule = "loopBlock"
	RuleLoopBeginStatement  Rule = "loopBeginStatement"
	RuleLoopVerb            Rule = "loopVerb"
	RuleLoopEndStatement    Rule = "loopEndStatement"
	RuleLoopBreakStatement  Rule = "loopBreakStatement"
	RuleServeWithStatement  Rule = "serveWithStatement"
	RuleRefrigerateStmt     Rule = "refrigerateStatement"
	RuleRefrigerateDuration Rule = "refrigerateDuration"
	RuleServesStatement     Rule = "servesStatement"
	RuleServesPeople        Rule = "servesPeople"

	RuleMixingBowl       Rule = "mixingBowl"
	RuleMixingBowlNumber Rule = "mixingBowlNumber"
	RuleBakingDish       Rule = "bakingDish"
	RuleBakingDishNumber Rule = "bakingDishNumber"
)

// Position is a 1-based line/column location in the source.
type Position struct {
	Line, Column int
}

// Node is one labeled span of the parse tree. Text holds the node's own
// literal text when it is a leaf (names, numbers); Children holds nested
// rule matches for composite nodes.
type Node struct {
	Rule     Rule
	Text     string
	Start    Position
	End      Position
	Children []*Node
}

// Cursor walks a Node's children in order, the way the AST builder
// consumes them. It plays the role that Siphalor/chef-rs's
// PairsExtensions trait plays over a pest Pairs iterator.
type Cursor struct {
	nodes []*Node
	pos   int
}

// NewCursor returns a Cursor over parent's children.
func NewCursor(parent *Node) *Cursor {
	return &Cursor{nodes: parent.Children}
}

// Peek returns the next node without consuming it, or nil if exhausted.
func (c *Cursor) Peek() *Node {
	if c.pos >= len(c.nodes) {
		return nil
	}
	return c.nodes[c.pos]
}

// Next consumes and returns the next node, or nil if exhausted.
func (c *Cursor) Next() *Node {
	n := c.Peek()
	if n != nil {
		c.pos++
	}
	return n
}

// TryNext consumes and returns the next node if it matches rule, else
// leaves the cursor untouched and returns nil.
func (c *Cursor) TryNext(rule Rule) *Node {
	n := c.Peek()
	if n == nil || n.Rule != rule {
		return nil
	}
	c.pos++
	return n
}

// Rest returns every remaining node without consuming them.
func (c *Cursor) Rest() []*Node {
	return c.nodes[c.pos:]
}
