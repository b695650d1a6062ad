// Package parser recognizes Chef recipe source text and builds the
// labeled parse tree that the ast package lowers into Recipes.
package parser

import (
	"fmt"
	"strings"

	"github.com/gochef/chef/lexer"
	"github.com/gochef/chef/measure"
	"github.com/gochef/chef/parsetree"
	"github.com/gochef/chef/token"
)

// Parser turns a token stream into a parsetree.Node tree.
type Parser struct {
	lines []line
	pos   int
}

// line is one source line with whitespace and the terminating newline
// stripped, as a run of significant tokens.
type line struct {
	tokens []token.Token
	blank  bool
}

// New creates a Parser over input.
func New(input string) *Parser {
	return &Parser{lines: splitLines(input)}
}

// ParseString parses input into a parsetree.Node tree rooted at
// parsetree.RuleRecipes.
func ParseString(input string) (*parsetree.Node, error) {
	return New(input).Parse()
}

func splitLines(input string) []line {
	l := lexer.New(input)
	var lines []line
	var cur []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			lines = append(lines, line{tokens: cur, blank: len(cur) == 0})
			break
		}
		if tok.Type == token.NEWLINE {
			lines = append(lines, line{tokens: cur, blank: len(cur) == 0})
			cur = nil
			continue
		}
		if tok.Type == token.WHITESPACE {
			continue
		}
		cur = append(cur, tok)
	}
	return lines
}

// Parse consumes the whole line stream and returns the root node.
func (p *Parser) Parse() (*parsetree.Node, error) {
	root := &parsetree.Node{Rule: parsetree.RuleRecipes}
	for p.pos < len(p.lines) {
		p.skipBlank()
		if p.pos >= len(p.lines) {
			break
		}
		recipe, err := p.parseRecipe()
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, recipe)
	}
	if len(root.Children) == 0 {
		return nil, &ParseError{Kind: RuleNotFound, Message: "no recipe found in source"}
	}
	return root, nil
}

func (p *Parser) skipBlank() {
	for p.pos < len(p.lines) && p.lines[p.pos].blank {
		p.pos++
	}
}

func (p *Parser) current() *line {
	if p.pos >= len(p.lines) {
		return nil
	}
	return &p.lines[p.pos]
}

// ParseErrorKind distinguishes the two parse-error shapes spec.md §7
// names.
type ParseErrorKind int

const (
	Generic ParseErrorKind = iota
	RuleNotFound
)

// ParseError is returned for malformed numerics, loop-verb mismatches,
// unknown statements, and missing required sub-rules.
type ParseError struct {
	Kind    ParseErrorKind
	Message string
	Line    int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func errAt(ln int, format string, args ...any) error {
	return &ParseError{Kind: Generic, Message: fmt.Sprintf(format, args...), Line: ln}
}

func notFoundAt(ln int, format string, args ...any) error {
	return &ParseError{Kind: RuleNotFound, Message: fmt.Sprintf(format, args...), Line: ln}
}

// parseRecipe consumes one recipe: title, optional comment paragraph,
// "Ingredients.", ingredient list, "Method.", statements, optional
// "Serves N.".
func (p *Parser) parseRecipe() (*parsetree.Node, error) {
	titleLine := p.current()
	if titleLine == nil {
		return nil, notFoundAt(0, "expected a recipe title")
	}
	title, err := requirePeriodSentence(titleLine.tokens)
	if err != nil {
		return nil, err
	}
	recipe := &parsetree.Node{Rule: parsetree.RuleRecipe}
	recipe.Children = append(recipe.Children, &parsetree.Node{
		Rule: parsetree.RuleRecipeName,
		Text: joinWords(title),
	})
	p.pos++

	// Optional comment paragraph: any non-blank lines before the
	// "Ingredients." header that are not themselves that header.
	var commentLines []string
	for {
		cur := p.current()
		if cur == nil {
			return nil, notFoundAt(titleLineNo(titleLine), "expected \"Ingredients.\" header")
		}
		if cur.blank {
			p.pos++
			continue
		}
		if isHeader(cur.tokens, "ingredients") {
			break
		}
		commentLines = append(commentLines, joinWords(cur.tokens))
		p.pos++
	}
	if len(commentLines) > 0 {
		recipe.Children = append(recipe.Children, &parsetree.Node{
			Rule: parsetree.RuleRecipeComment,
			Text: strings.Join(commentLines, "\n"),
		})
	}
	p.pos++ // consume "Ingredients." line

	ingredientList := &parsetree.Node{Rule: parsetree.RuleIngredientList}
	for {
		cur := p.current()
		if cur == nil {
			return nil, notFoundAt(0, "expected \"Method.\" header")
		}
		if cur.blank {
			p.pos++
			continue
		}
		if isHeader(cur.tokens, "method") {
			break
		}
		ing, err := p.parseIngredientLine(cur.tokens)
		if err != nil {
			return nil, err
		}
		ingredientList.Children = append(ingredientList.Children, ing)
		p.pos++
	}
	recipe.Children = append(recipe.Children, ingredientList)
	p.pos++ // consume "Method." line

	method := &parsetree.Node{Rule: parsetree.RuleMethod}
	for {
		cur := p.current()
		if cur == nil || cur.blank {
			if cur != nil {
				p.pos++
			}
			break
		}
		stmt, err := p.parseStatementOrLoop()
		if err != nil {
			return nil, err
		}
		method.Children = append(method.Children, stmt)
	}
	recipe.Children = append(recipe.Children, method)

	return recipe, nil
}

func titleLineNo(l *line) int {
	if l == nil || len(l.tokens) == 0 {
		return 0
	}
	return l.tokens[0].Line
}

// requirePeriodSentence verifies toks ends with a single trailing
// PERIOD and returns the words before it.
func requirePeriodSentence(toks []token.Token) ([]token.Token, error) {
	if len(toks) == 0 || toks[len(toks)-1].Type != token.PERIOD {
		ln := 0
		if len(toks) > 0 {
			ln = toks[0].Line
		}
		return nil, errAt(ln, "expected a sentence terminated by \".\"")
	}
	return toks[:len(toks)-1], nil
}

func joinWords(toks []token.Token) string {
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.Literal
	}
	return strings.Join(parts, " ")
}

// isHeader reports whether toks is exactly "<word>." case-insensitively.
func isHeader(toks []token.Token, word string) bool {
	if len(toks) != 2 || toks[1].Type != token.PERIOD {
		return false
	}
	return strings.EqualFold(toks[0].Literal, word)
}

// parseIngredientLine recognizes "[number] [measure-type] [measure]
// name." per spec.md §4.1.
func (p *Parser) parseIngredientLine(toks []token.Token) (*parsetree.Node, error) {
	words, err := requirePeriodSentence(toks)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, errAt(toks[0].Line, "expected an ingredient name")
	}

	node := &parsetree.Node{Rule: parsetree.RuleIngredientDefinition}
	i := 0
	if words[i].Type == token.NUMBER {
		node.Children = append(node.Children, &parsetree.Node{
			Rule: parsetree.RuleIngredientInitialValue,
			Text: words[i].Literal,
		})
		i++
	}
	if i < len(words) && measure.IsMeasureType(strings.ToLower(words[i].Literal)) {
		node.Children = append(node.Children, &parsetree.Node{
			Rule: parsetree.RuleIngredientMeasureType,
			Text: strings.ToLower(words[i].Literal),
		})
		i++
	}
	if i < len(words) {
		kind, ok := measure.Classify(strings.ToLower(words[i].Literal))
		if ok && i < len(words)-1 { // a measure word must still leave a name behind
			rule := parsetree.RuleIngredientMeasureDry
			if kind == measure.Liquid {
				rule = parsetree.RuleIngredientMeasureLiqd
			}
			node.Children = append(node.Children, &parsetree.Node{Rule: rule, Text: strings.ToLower(words[i].Literal)})
			i++
		}
	}
	if i >= len(words) {
		return nil, errAt(toks[0].Line, "expected an ingredient name")
	}
	node.Children = append(node.Children, &parsetree.Node{
		Rule: parsetree.RuleIngredientName,
		Text: joinWords(words[i:]),
	})
	return node, nil
}

// openLoop pairs a loop's begin verb with its node. It is not used by
// parseLoopBlock, which passes the begin verb to tryLoopEnd directly.
type openLoop struct {
	verb     string
	verbNode *parsetree.Node
}

// parseStatementOrLoop recognizes a single statement line, or, if the
// line opens a loop ("<Verb> the <ingredient>."), recurses until the
// matching end line is found.
func (p *Parser) parseStatementOrLoop() (*parsetree.Node, error) {
	cur := p.current()
	words, err := requirePeriodSentence(cur.tokens)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, errAt(cur.tokens[0].Line, "empty statement")
	}

	verb := strings.ToLower(words[0].Literal)
	lineNo := words[0].Line

	if node, ok, err := p.tryLeafStatement(verb, words, lineNo); ok || err != nil {
		if err == nil {
			p.pos++
		}
		return node, err
	}

	// Fall through to the loop-begin form: "<Verb> the <ingredient>."
	return p.parseLoopBlock(verb, words, lineNo)
}

// tryLeafStatement attempts every non-loop statement shape. ok is false
// when verb matches none of them, signalling the caller should try the
// loop form instead.
func (p *Parser) tryLeafStatement(verb string, words []token.Token, ln int) (*parsetree.Node, bool, error) {
	rest := words[1:]
	switch verb {
	case "take":
		name, err := dropTrailingWords(rest, "from", "refrigerator")
		if err != nil {
			return nil, true, errAt(ln, "malformed Take statement: %v", err)
		}
		return leaf(parsetree.RuleTakeStatement, joinWords(skipWord(name, "the"))), true, nil
	case "check":
		// "Check whether <ingredient> from refrigerator." -- the peek
		// variant of Take, see SPEC_FULL.md §4.
		if len(rest) < 1 || !strings.EqualFold(rest[0].Literal, "whether") {
			return nil, true, errAt(ln, "malformed Check statement")
		}
		name, err := dropTrailingWords(rest[1:], "from", "refrigerator")
		if err != nil {
			return nil, true, errAt(ln, "malformed Check statement: %v", err)
		}
		return leaf(parsetree.RuleCheckStatement, joinWords(skipWord(name, "the"))), true, nil
	case "put":
		return p.containerStatement(parsetree.RulePutStatement, rest, "into", ln)
	case "fold":
		return p.containerStatement(parsetree.RuleFoldStatement, rest, "into", ln)
	case "add":
		if len(rest) >= 2 && strings.EqualFold(rest[0].Literal, "dry") && strings.EqualFold(rest[1].Literal, "ingredients") {
			bowl := parseOptionalBowl(rest[2:], "to")
			n := &parsetree.Node{Rule: parsetree.RuleAddDryStatement}
			if bowl != nil {
				n.Children = append(n.Children, bowl)
			}
			return n, true, nil
		}
		return p.containerStatement(parsetree.RuleAddStatement, rest, "to", ln)
	case "remove":
		return p.containerStatement(parsetree.RuleRemoveStatement, rest, "from", ln)
	case "combine":
		return p.containerStatement(parsetree.RuleCombineStatement, rest, "into", ln)
	case "divide":
		return p.containerStatement(parsetree.RuleDivideStatement, rest, "into", ln)
	case "liquefy":
		if len(rest) >= 2 && strings.EqualFold(rest[0].Literal, "contents") && strings.EqualFold(rest[1].Literal, "of") {
			bowl := parseOptionalBowl(rest[2:], "")
			n := &parsetree.Node{Rule: parsetree.RuleLiquefyBowlStmt}
			if bowl != nil {
				n.Children = append(n.Children, bowl)
			}
			return n, true, nil
		}
		return leaf(parsetree.RuleLiquefyStatement, joinWords(skipWord(rest, "the"))), true, nil
	case "stir":
		return p.parseStir(rest, ln)
	case "mix":
		bowl := parseOptionalBowl(trimTrailing(rest, "well"), "")
		n := &parsetree.Node{Rule: parsetree.RuleMixBowlStatement}
		if bowl != nil {
			n.Children = append(n.Children, bowl)
		}
		return n, true, nil
	case "clean":
		bowl := parseOptionalBowl(rest, "")
		n := &parsetree.Node{Rule: parsetree.RuleCleanBowlStatement}
		if bowl != nil {
			n.Children = append(n.Children, bowl)
		}
		return n, true, nil
	case "sort":
		bowl := parseOptionalBowl(rest, "")
		n := &parsetree.Node{Rule: parsetree.RuleSortBowlStatement}
		if bowl != nil {
			n.Children = append(n.Children, bowl)
		}
		return n, true, nil
	case "pour":
		return p.parsePour(rest, ln)
	case "examine":
		if len(rest) >= 3 && strings.EqualFold(rest[0].Literal, "contents") && strings.EqualFold(rest[1].Literal, "of") {
			bowl := parseOptionalBowl(rest[2:], "")
			n := &parsetree.Node{Rule: parsetree.RuleExamineStatement}
			if bowl != nil {
				n.Children = append(n.Children, bowl)
			}
			return n, true, nil
		}
		return leaf(parsetree.RuleExamineStatement, joinWords(skipWord(rest, "the"))), true, nil
	case "set":
		if len(rest) == 1 && strings.EqualFold(rest[0].Literal, "aside") {
			return leaf(parsetree.RuleLoopBreakStatement, ""), true, nil
		}
		return nil, true, errAt(ln, "unknown \"Set\" statement")
	case "serve":
		if len(rest) >= 1 && strings.EqualFold(rest[0].Literal, "with") {
			return leaf(parsetree.RuleServeWithStatement, joinWords(rest[1:])), true, nil
		}
		return nil, true, errAt(ln, "unknown \"Serve\" statement")
	case "refrigerate":
		if len(rest) == 0 {
			return leaf(parsetree.RuleRefrigerateStmt, ""), true, nil
		}
		if len(rest) >= 3 && strings.EqualFold(rest[0].Literal, "for") && rest[1].Type == token.NUMBER {
			n := &parsetree.Node{Rule: parsetree.RuleRefrigerateStmt}
			n.Children = append(n.Children, &parsetree.Node{Rule: parsetree.RuleRefrigerateDuration, Text: rest[1].Literal})
			return n, true, nil
		}
		return nil, true, errAt(ln, "malformed Refrigerate statement")
	case "serves":
		if len(rest) == 1 && rest[0].Type == token.NUMBER {
			n := &parsetree.Node{Rule: parsetree.RuleServesStatement}
			n.Children = append(n.Children, &parsetree.Node{Rule: parsetree.RuleServesPeople, Text: rest[0].Literal})
			return n, true, nil
		}
		return nil, true, errAt(ln, "malformed Serves statement")
	}
	return nil, false, nil
}

func leaf(rule parsetree.Rule, text string) *parsetree.Node {
	return &parsetree.Node{Rule: rule, Text: text}
}

// containerStatement parses "<ingredient> [prep [the] [Nth] mixing
// bowl]." shapes shared by Put/Fold/Add/Remove/Combine/Divide.
func (p *Parser) containerStatement(rule parsetree.Rule, rest []token.Token, prep string, ln int) (*parsetree.Node, bool, error) {
	name, tail := splitBeforePrep(rest, prep)
	name = skipWord(name, "the")
	if len(name) == 0 {
		return nil, true, errAt(ln, "expected an ingredient name")
	}
	n := &parsetree.Node{Rule: rule}
	n.Children = append(n.Children, leaf(parsetree.RuleIngredientName, joinWords(name)))
	if bowl := parseOptionalBowl(tail, ""); bowl != nil {
		n.Children = append(n.Children, bowl)
	}
	return n, true, nil
}

// splitBeforePrep splits rest at the first occurrence of prep
// (case-insensitively), dropping prep itself. If prep never occurs, the
// whole of rest is the name and tail is empty.
func splitBeforePrep(rest []token.Token, prep string) (name, tail []token.Token) {
	if prep == "" {
		return rest, nil
	}
	for i, t := range rest {
		if strings.EqualFold(t.Literal, prep) {
			return rest[:i], rest[i+1:]
		}
	}
	return rest, nil
}

// parseOptionalBowl recognizes an optional "[the] [Nth] mixing bowl"
// (or "[the] [Nth] baking dish") phrase at the start of toks, skipping a
// leading preposition word if given. Returns nil if no container
// reference is present (bowl/dish ID then defaults to 1, per spec.md).
func parseOptionalBowl(toks []token.Token, leadingPrep string) *parsetree.Node {
	toks = skipWord(toks, leadingPrep)
	toks = skipWord(toks, "the")
	var number *parsetree.Node
	if len(toks) > 0 && toks[0].Type == token.IDENT && isOrdinal(toks[0].Literal) {
		number = &parsetree.Node{Rule: parsetree.RuleMixingBowlNumber, Text: toks[0].Literal}
		toks = toks[1:]
	}
	if len(toks) >= 2 && strings.EqualFold(toks[0].Literal, "mixing") && strings.EqualFold(toks[1].Literal, "bowl") {
		n := &parsetree.Node{Rule: parsetree.RuleMixingBowl}
		if number != nil {
			n.Children = append(n.Children, number)
		}
		return n
	}
	if len(toks) >= 2 && strings.EqualFold(toks[0].Literal, "baking") && strings.EqualFold(toks[1].Literal, "dish") {
		n := &parsetree.Node{Rule: parsetree.RuleBakingDish}
		if number != nil {
			n.Children = append(n.Children, &parsetree.Node{Rule: parsetree.RuleBakingDishNumber, Text: number.Text})
		}
		return n
	}
	return nil
}

func skipWord(toks []token.Token, word string) []token.Token {
	if word == "" {
		return toks
	}
	if len(toks) > 0 && strings.EqualFold(toks[0].Literal, word) {
		return toks[1:]
	}
	return toks
}

func trimTrailing(toks []token.Token, word string) []token.Token {
	if len(toks) > 0 && strings.EqualFold(toks[len(toks)-1].Literal, word) {
		return toks[:len(toks)-1]
	}
	return toks
}

func isOrdinal(lit string) bool {
	if len(lit) < 2 {
		return false
	}
	for _, suf := range []string{"st", "nd", "rd", "th"} {
		if strings.HasSuffix(strings.ToLower(lit), suf) {
			return true
		}
	}
	return false
}

// dropTrailingWords verifies toks ends with the literal word sequence
// tail (case-insensitively) and returns what precedes it.
func dropTrailingWords(toks []token.Token, tail ...string) ([]token.Token, error) {
	if len(toks) < len(tail) {
		return nil, fmt.Errorf("expected trailing %q", strings.Join(tail, " "))
	}
	offset := len(toks) - len(tail)
	for i, w := range tail {
		if !strings.EqualFold(toks[offset+i].Literal, w) {
			return nil, fmt.Errorf("expected trailing %q", strings.Join(tail, " "))
		}
	}
	return toks[:offset], nil
}

// parseStir recognizes the two Stir shapes: "Stir [the [Nth] mixing
// bowl] for <number> minutes." (MoveStatic) and "Stir <ingredient> into
// the [Nth] mixing bowl." (MoveDynamic).
func (p *Parser) parseStir(rest []token.Token, ln int) (*parsetree.Node, bool, error) {
	for i, t := range rest {
		if strings.EqualFold(t.Literal, "into") {
			name := skipWord(rest[:i], "the")
			bowl := parseOptionalBowl(rest[i+1:], "")
			n := &parsetree.Node{Rule: parsetree.RuleStirBowlStatement}
			n.Children = append(n.Children, leaf(parsetree.RuleIngredientName, joinWords(name)))
			if bowl != nil {
				n.Children = append(n.Children, bowl)
			}
			return n, true, nil
		}
	}
	if len(rest) >= 2 && strings.EqualFold(rest[len(rest)-1].Literal, "minutes") && rest[len(rest)-2].Type == token.NUMBER {
		bowl := parseOptionalBowl(rest[:len(rest)-2], "")
		n := &parsetree.Node{Rule: parsetree.RuleStirStatement}
		if bowl != nil {
			n.Children = append(n.Children, bowl)
		}
		n.Children = append(n.Children, &parsetree.Node{Rule: parsetree.RuleStirBowlTime, Text: rest[len(rest)-2].Literal})
		return n, true, nil
	}
	// Neither Stir shape matched (e.g. "Stir the sauce." with no "into"
	// and no "for N minutes") — this is the loop-begin form instead.
	return nil, false, nil
}

// parsePour recognizes "Pour [the] contents of the [Nth] mixing bowl
// into the [Pth] baking dish."
func (p *Parser) parsePour(rest []token.Token, ln int) (*parsetree.Node, bool, error) {
	rest = skipWord(rest, "the")
	if len(rest) < 2 || !strings.EqualFold(rest[0].Literal, "contents") || !strings.EqualFold(rest[1].Literal, "of") {
		return nil, true, errAt(ln, "malformed Pour statement")
	}
	rest = rest[2:]
	var intoIdx = -1
	for i, t := range rest {
		if strings.EqualFold(t.Literal, "into") {
			intoIdx = i
			break
		}
	}
	if intoIdx < 0 {
		return nil, true, errAt(ln, "malformed Pour statement: expected \"into\"")
	}
	bowl := parseOptionalBowl(rest[:intoIdx], "")
	dish := parseOptionalBowl(rest[intoIdx+1:], "")
	n := &parsetree.Node{Rule: parsetree.RulePourBowlStatement}
	if bowl != nil {
		n.Children = append(n.Children, bowl)
	}
	if dish != nil {
		n.Children = append(n.Children, dish)
	}
	return n, true, nil
}

// parseLoopBlock consumes the loop-begin line already split into verb
// and words, reads nested statements until a matching loop-end line is
// found, and returns the assembled RuleLoopBlock node.
func (p *Parser) parseLoopBlock(verb string, words []token.Token, ln int) (*parsetree.Node, error) {
	rest := words[1:]
	rest = skipWord(rest, "the")
	if len(rest) == 0 {
		return nil, errAt(ln, "unknown statement verb %q", verb)
	}
	testIngredient := joinWords(rest)
	p.pos++

	begin := &parsetree.Node{Rule: parsetree.RuleLoopBeginStatement}
	begin.Children = append(begin.Children, leaf(parsetree.RuleLoopVerb, verb), leaf(parsetree.RuleIngredientName, testIngredient))

	block := &parsetree.Node{Rule: parsetree.RuleLoopBlock}
	block.Children = append(block.Children, begin)

	for {
		cur := p.current()
		if cur == nil || cur.blank {
			return nil, notFoundAt(ln, "loop begun with verb %q never reached \"until\"", verb)
		}
		end, isEnd, err := p.tryLoopEnd(verb, ln, cur.tokens)
		if err != nil {
			return nil, err
		}
		if isEnd {
			p.pos++
			block.Children = append(block.Children, end)
			return block, nil
		}
		stmt, err := p.parseStatementOrLoop()
		if err != nil {
			return nil, err
		}
		block.Children = append(block.Children, stmt)
	}
}

// tryLoopEnd recognizes "<verb> [the <ingredient>] until <participle>."
// A line containing "until" is always the loop-end line; its verb must
// then start with beginVerb (case-insensitively), per spec.md §4.2 rule
// 4 and original_source/src/ast/statement.rs:246. A mismatched verb is a
// fatal Generic error reported at the loop-begin line, not a signal to
// keep scanning for some other end line.
func (p *Parser) tryLoopEnd(beginVerb string, beginLine int, toks []token.Token) (*parsetree.Node, bool, error) {
	words, err := requirePeriodSentence(toks)
	if err != nil {
		return nil, false, nil
	}
	untilIdx := -1
	for i, t := range words {
		if strings.EqualFold(t.Literal, "until") {
			untilIdx = i
			break
		}
	}
	if untilIdx < 0 || len(words) == 0 {
		return nil, false, nil
	}
	endVerb := strings.ToLower(words[0].Literal)
	if !sharesPrefix(endVerb, beginVerb) {
		return nil, true, errAt(beginLine, "loop verbs do not match: %q begun, %q ended", beginVerb, endVerb)
	}

	between := skipWord(words[1:untilIdx], "the")
	participle := words[untilIdx+1:]
	if len(participle) == 0 {
		return nil, false, errAt(words[0].Line, "expected a participle after \"until\"")
	}

	n := &parsetree.Node{Rule: parsetree.RuleLoopEndStatement}
	n.Children = append(n.Children, leaf(parsetree.RuleLoopVerb, endVerb))
	if len(between) > 0 {
		n.Children = append(n.Children, leaf(parsetree.RuleIngredientName, joinWords(between)))
	}
	n.Text = strings.ToLower(joinWords(participle))
	return n, true, nil
}

// sharesPrefix reports whether the loop-end verb a starts with the
// loop-begin verb b, case-insensitively, per
// original_source/src/ast/statement.rs:246.
func sharesPrefix(a, b string) bool {
	return strings.HasPrefix(strings.ToLower(a), strings.ToLower(b))
}
