// Package interpreter executes a parsed Chef program, tree-walking its
// statements against the runtime state defined in package runtime.
package interpreter

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/gochef/chef/ast"
	"github.com/gochef/chef/runtime"
)

const loopTolerance = 1e-10

// execCode is the statement-loop's control-flow result, per spec.md
// §4.4: every statement dispatch yields Normal, Break, or Return.
type execCode int

const (
	execNormal execCode = iota
	execBreak
	execReturn
)

// RuntimeError is a string-typed runtime failure per spec.md §7:
// unknown recipe, unknown ingredient, pop from an empty bowl, and so
// on. Every one aborts the program.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func runtimeErrf(format string, args ...any) error {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

type bowlMap = *runtime.ScopedMap[int, []runtime.Ingredient]

// Interpreter runs a built ast.Recipes program against shared
// input/output streams.
type Interpreter struct {
	recipes *ast.Recipes
	input   *runtime.InputBuffer
	stdout  io.Writer
	stderr  io.Writer
	rng     *rand.Rand
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithStdin supplies the reader Read/CheckInput statements draw from.
func WithStdin(r io.Reader) Option {
	return func(i *Interpreter) { i.input = runtime.NewInputBuffer(r) }
}

// WithStdout supplies the writer dish emission writes to.
func WithStdout(w io.Writer) Option {
	return func(i *Interpreter) { i.stdout = w }
}

// WithStderr supplies the writer Examine/ExamineBowl dumps go to.
func WithStderr(w io.Writer) Option {
	return func(i *Interpreter) { i.stderr = w }
}

// WithSeed pins Shuffle's RNG to a deterministic seed, the one
// configurable piece of interpreter behavior spec.md §9 calls out as
// acceptable (see the config package).
func WithSeed(seed int64) Option {
	return func(i *Interpreter) { i.rng = rand.New(rand.NewSource(seed)) }
}

// New builds an Interpreter for recipes.
func New(recipes *ast.Recipes, opts ...Option) *Interpreter {
	i := &Interpreter{
		recipes: recipes,
		input:   runtime.NewInputBuffer(os.Stdin),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		rng:     rand.New(rand.NewSource(rand.Int63())),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// RunMain locates the first recipe in insertion order and runs it,
// discarding its result bowl.
func (in *Interpreter) RunMain() error {
	main, ok := in.recipes.Main()
	if !ok {
		return runtimeErrf("program has no recipes")
	}
	_, err := in.runRecipe(main.Name, nil, nil)
	return err
}

// frame is the mutable state of one active recipe invocation.
type frame struct {
	recipe      *ast.Recipe
	ingredients map[string]runtime.Ingredient
	bowls       bowlMap
	dishes      bowlMap
}

// runRecipe implements spec.md §4.4's run_recipe: look up the recipe,
// build a fresh frame with the given scoped-map parents, execute its
// statements, and return the contents of its local bowl 1 if it was
// touched.
func (in *Interpreter) runRecipe(name string, parentBowls, parentDishes bowlMap) ([]runtime.Ingredient, bool, error) {
	recipe, ok := in.recipes.Get(name)
	if !ok {
		return nil, false, runtimeErrf("unknown recipe %q", name)
	}

	f := &frame{
		recipe:      recipe,
		ingredients: make(map[string]runtime.Ingredient, len(recipe.Ingredients)),
		bowls:       runtime.NewScopedMap[int, []runtime.Ingredient](parentBowls),
		dishes:      runtime.NewScopedMap[int, []runtime.Ingredient](parentDishes),
	}
	for _, def := range recipe.Ingredients {
		f.ingredients[def.Name] = runtime.Ingredient{Value: def.InitialValue, Liquid: def.Liquid}
	}

	code, err := in.execStatements(f, recipe.Statements)
	if err != nil {
		return nil, false, err
	}
	if code == execBreak {
		return nil, false, runtimeErrf("unexpected break at recipe top level in %q", name)
	}

	if !f.bowls.HasLocal(1) {
		return nil, false, nil
	}
	bowl, _ := f.bowls.Get(1)
	return bowl, true, nil
}

func cloneBowl(b []runtime.Ingredient) []runtime.Ingredient {
	cp := make([]runtime.Ingredient, len(b))
	copy(cp, b)
	return cp
}

func emptyBowl() []runtime.Ingredient { return nil }

// execStatements runs stmts in order, implementing the Normal/Break/
// Return propagation rules of spec.md §4.4.
func (in *Interpreter) execStatements(f *frame, stmts []ast.Statement) (execCode, error) {
	for _, stmt := range stmts {
		code, err := in.execStatement(f, stmt)
		if err != nil {
			return execNormal, err
		}
		if code != execNormal {
			return code, nil
		}
	}
	return execNormal, nil
}

func (in *Interpreter) execStatement(f *frame, stmt ast.Statement) (execCode, error) {
	switch s := stmt.(type) {
	case *ast.ReadStatement:
		return execNormal, in.execRead(f, s)
	case *ast.CheckInputStatement:
		return execNormal, in.execCheckInput(f, s)
	case *ast.PushStatement:
		return execNormal, in.execPush(f, s)
	case *ast.PopStatement:
		return execNormal, in.execPop(f, s)
	case *ast.ArithStatement:
		return execNormal, in.execArith(f, s)
	case *ast.AddAllStatement:
		return execNormal, in.execAddAll(f, s)
	case *ast.ToCharStatement:
		return execNormal, in.execToChar(f, s)
	case *ast.ToCharAllStatement:
		return execNormal, in.execToCharAll(f, s)
	case *ast.MoveDynamicStatement:
		return execNormal, in.execMoveDynamic(f, s)
	case *ast.MoveStaticStatement:
		return execNormal, in.execMoveStatic(f, s)
	case *ast.SortStatement:
		return execNormal, in.execSort(f, s)
	case *ast.ShuffleStatement:
		return execNormal, in.execShuffle(f, s)
	case *ast.ClearStatement:
		return execNormal, in.execClear(f, s)
	case *ast.SetResultStatement:
		return execNormal, in.execSetResult(f, s)
	case *ast.ExamineStatement:
		return execNormal, in.execExamine(f, s)
	case *ast.ExamineBowlStatement:
		return execNormal, in.execExamineBowl(f, s)
	case *ast.LoopStatement:
		return in.execLoop(f, s)
	case *ast.BreakLoopStatement:
		return execBreak, nil
	case *ast.CallAuxiliaryStatement:
		return execNormal, in.execCallAuxiliary(f, s)
	case *ast.ReturnStatement:
		if err := in.execReturn(f, s); err != nil {
			return execNormal, err
		}
		return execReturn, nil
	default:
		return execNormal, runtimeErrf("unknown statement variant %T", stmt)
	}
}

func (in *Interpreter) ingredient(f *frame, name string) (runtime.Ingredient, error) {
	ing, ok := f.ingredients[name]
	if !ok {
		return runtime.Ingredient{}, runtimeErrf("unknown ingredient %q", name)
	}
	return ing, nil
}

func (in *Interpreter) bowl(f *frame, id int) []runtime.Ingredient {
	return f.bowls.Ensure(id, cloneBowl, emptyBowl)
}

func (in *Interpreter) dish(f *frame, id int) []runtime.Ingredient {
	return f.dishes.Ensure(id, cloneBowl, emptyBowl)
}

func (in *Interpreter) execRead(f *frame, s *ast.ReadStatement) error {
	existing, declared := f.ingredients[s.Ingredient]
	if declared && existing.Liquid {
		r, ok := in.input.ReadChar()
		if !ok {
			r = 0
		}
		existing.Value = float64(r)
		f.ingredients[s.Ingredient] = existing
		return nil
	}
	value := in.input.ReadNumber()
	ing := existing
	ing.Value = value
	if !declared {
		ing.Liquid = false
	}
	f.ingredients[s.Ingredient] = ing
	return nil
}

func (in *Interpreter) execCheckInput(f *frame, s *ast.CheckInputStatement) error {
	saved := in.input.Peek()
	err := in.execRead(f, &ast.ReadStatement{Ingredient: s.Ingredient})
	in.input.Restore(saved)
	return err
}

func (in *Interpreter) execPush(f *frame, s *ast.PushStatement) error {
	ing, err := in.ingredient(f, s.Ingredient)
	if err != nil {
		return err
	}
	bowl := in.bowl(f, s.BowlID)
	bowl = append(bowl, ing.Clone())
	f.bowls.Set(s.BowlID, bowl)
	return nil
}

func (in *Interpreter) execPop(f *frame, s *ast.PopStatement) error {
	bowl := in.bowl(f, s.BowlID)
	if len(bowl) == 0 {
		return runtimeErrf("pop from empty bowl %d", s.BowlID)
	}
	top := bowl[len(bowl)-1]
	bowl = bowl[:len(bowl)-1]
	f.bowls.Set(s.BowlID, bowl)
	f.ingredients[s.Ingredient] = top
	return nil
}

func (in *Interpreter) execArith(f *frame, s *ast.ArithStatement) error {
	ing, err := in.ingredient(f, s.Ingredient)
	if err != nil {
		return err
	}
	bowl := in.bowl(f, s.BowlID)
	if len(bowl) == 0 {
		return runtimeErrf("bowl-top access on empty bowl %d", s.BowlID)
	}
	top := bowl[len(bowl)-1]
	switch s.Op {
	case ast.Add:
		top.Value += ing.Value
	case ast.Subtract:
		top.Value -= ing.Value
	case ast.Multiply:
		top.Value *= ing.Value
	case ast.Divide:
		top.Value /= ing.Value
	}
	bowl[len(bowl)-1] = top
	f.bowls.Set(s.BowlID, bowl)
	return nil
}

func (in *Interpreter) execAddAll(f *frame, s *ast.AddAllStatement) error {
	bowl := in.bowl(f, s.BowlID)
	if len(bowl) == 0 {
		return runtimeErrf("bowl-top access on empty bowl %d", s.BowlID)
	}
	var sum float64
	for _, ing := range f.ingredients {
		if !ing.Liquid {
			sum += ing.Value
		}
	}
	top := bowl[len(bowl)-1]
	top.Value += sum
	bowl[len(bowl)-1] = top
	f.bowls.Set(s.BowlID, bowl)
	return nil
}

func (in *Interpreter) execToChar(f *frame, s *ast.ToCharStatement) error {
	ing, err := in.ingredient(f, s.Ingredient)
	if err != nil {
		return err
	}
	ing.Liquid = true
	f.ingredients[s.Ingredient] = ing
	return nil
}

func (in *Interpreter) execToCharAll(f *frame, s *ast.ToCharAllStatement) error {
	bowl := in.bowl(f, s.BowlID)
	for i := range bowl {
		bowl[i].Liquid = true
	}
	f.bowls.Set(s.BowlID, bowl)
	return nil
}

// rotate implements spec.md §4.4's MoveDynamic/MoveStatic rotation: pop
// the top, then re-insert it at index len-n (length counted after the
// pop). Out-of-range n clamps to the nearest valid index. An empty bowl
// is a no-op.
func rotate(bowl []runtime.Ingredient, n int) []runtime.Ingredient {
	if len(bowl) == 0 {
		return bowl
	}
	top := bowl[len(bowl)-1]
	rest := bowl[:len(bowl)-1]
	idx := len(rest) - n
	if idx < 0 {
		idx = 0
	}
	if idx > len(rest) {
		idx = len(rest)
	}
	out := make([]runtime.Ingredient, 0, len(bowl))
	out = append(out, rest[:idx]...)
	out = append(out, top)
	out = append(out, rest[idx:]...)
	return out
}

func (in *Interpreter) execMoveDynamic(f *frame, s *ast.MoveDynamicStatement) error {
	ing, err := in.ingredient(f, s.Ingredient)
	if err != nil {
		return err
	}
	bowl := in.bowl(f, s.BowlID)
	bowl = rotate(bowl, int(ing.Value))
	f.bowls.Set(s.BowlID, bowl)
	return nil
}

func (in *Interpreter) execMoveStatic(f *frame, s *ast.MoveStaticStatement) error {
	bowl := in.bowl(f, s.BowlID)
	bowl = rotate(bowl, s.Offset)
	f.bowls.Set(s.BowlID, bowl)
	return nil
}

func (in *Interpreter) execSort(f *frame, s *ast.SortStatement) error {
	bowl := in.bowl(f, s.BowlID)
	sort.SliceStable(bowl, func(i, j int) bool { return bowl[i].Value < bowl[j].Value })
	f.bowls.Set(s.BowlID, bowl)
	return nil
}

func (in *Interpreter) execShuffle(f *frame, s *ast.ShuffleStatement) error {
	bowl := in.bowl(f, s.BowlID)
	in.rng.Shuffle(len(bowl), func(i, j int) { bowl[i], bowl[j] = bowl[j], bowl[i] })
	f.bowls.Set(s.BowlID, bowl)
	return nil
}

func (in *Interpreter) execClear(f *frame, s *ast.ClearStatement) error {
	f.bowls.Set(s.BowlID, nil)
	return nil
}

// execSetResult implements "Pour": for each ingredient in the source
// bowl from top to bottom, append onto the dish — i.e. append the
// bowl's contents reversed. The source bowl is left untouched per
// spec.md §9.
func (in *Interpreter) execSetResult(f *frame, s *ast.SetResultStatement) error {
	bowl := in.bowl(f, s.BowlID)
	dish := in.dish(f, s.DishID)
	for i := len(bowl) - 1; i >= 0; i-- {
		dish = append(dish, bowl[i])
	}
	f.dishes.Set(s.DishID, dish)
	return nil
}

func (in *Interpreter) execExamine(f *frame, s *ast.ExamineStatement) error {
	ing, err := in.ingredient(f, s.Ingredient)
	if err != nil {
		return err
	}
	fmt.Fprintf(in.stderr, "%s: %s\n", s.Ingredient, ing.String())
	return nil
}

func (in *Interpreter) execExamineBowl(f *frame, s *ast.ExamineBowlStatement) error {
	bowl := in.bowl(f, s.BowlID)
	parts := make([]string, len(bowl))
	for i, ing := range bowl {
		parts[i] = ing.String()
	}
	fmt.Fprintf(in.stderr, "bowl %d: [%s]\n", s.BowlID, strings.Join(parts, ", "))
	return nil
}

// execLoop implements spec.md §4.4's loop semantics: iterate while the
// test ingredient's value is non-zero within tolerance, decrementing
// the optional named ingredient after each completed iteration.
func (in *Interpreter) execLoop(f *frame, s *ast.LoopStatement) (execCode, error) {
	for {
		ing, err := in.ingredient(f, s.TestIngredient)
		if err != nil {
			return execNormal, err
		}
		if abs(ing.Value) <= loopTolerance {
			return execNormal, nil
		}

		code, err := in.execStatements(f, s.Body)
		if err != nil {
			return execNormal, err
		}
		if code == execReturn {
			return execReturn, nil
		}
		if code == execBreak {
			return execNormal, nil
		}

		if s.HasDecrement {
			dec, err := in.ingredient(f, s.DecrementIngredient)
			if err != nil {
				return execNormal, err
			}
			dec.Value -= 1
			f.ingredients[s.DecrementIngredient] = dec
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// execCallAuxiliary invokes another recipe with this frame's bowls and
// dishes as the callee's scoped-map parents (the dish-inheritance fix
// from SPEC_FULL.md §5, not the original's "both parents are bowls"
// behavior), then splices any result bowl onto this frame's bowl 1.
func (in *Interpreter) execCallAuxiliary(f *frame, s *ast.CallAuxiliaryStatement) error {
	result, ok, err := in.runRecipe(s.Recipe, f.bowls, f.dishes)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	bowl1 := in.bowl(f, 1)
	for i := len(result) - 1; i >= 0; i-- {
		bowl1 = append(bowl1, result[i])
	}
	f.bowls.Set(1, bowl1)
	return nil
}

// execReturn emits the requested dishes, per spec.md §4.4 and the
// output-formatting rule in the same section.
func (in *Interpreter) execReturn(f *frame, s *ast.ReturnStatement) error {
	for id := 1; id <= s.Count; id++ {
		dish, ok := f.dishes.Get(id)
		if !ok {
			continue
		}
		in.writeDish(dish)
	}
	return nil
}

// writeDish implements spec.md §4.4's output-formatting rule: if any
// ingredient in the dish is liquid, the whole dish is emitted as a
// character concatenation; otherwise each value is emitted followed by
// ", ".
func (in *Interpreter) writeDish(dish []runtime.Ingredient) {
	anyLiquid := false
	for _, ing := range dish {
		if ing.Liquid {
			anyLiquid = true
			break
		}
	}
	if anyLiquid {
		for _, ing := range dish {
			fmt.Fprint(in.stdout, ing.Char())
		}
		return
	}
	for _, ing := range dish {
		fmt.Fprintf(in.stdout, "%v, ", ing.Value)
	}
}
