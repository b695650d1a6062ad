// Package ast defines the lowered Chef program representation and the
// builder that produces it from a parsetree.Node.
package ast

import (
	"github.com/elliotchance/orderedmap/v3"
)

// IngredientDefinition is a declaration parsed from a recipe's
// ingredient list.
type IngredientDefinition struct {
	Name         string
	InitialValue float64
	HasInitial   bool
	Liquid       bool
}

// Recipe is one parsed recipe: a name, an optional comment, its
// ingredient declarations in order, and its statement body.
type Recipe struct {
	Name       string
	Comment    string
	HasComment bool
	Ingredients []IngredientDefinition
	Statements  []Statement
}

// Recipes maps recipe name to *Recipe, preserving insertion order so the
// first-inserted recipe is always the program's entry point.
type Recipes struct {
	m *orderedmap.OrderedMap[string, *Recipe]
}

// NewRecipes returns an empty Recipes map.
func NewRecipes() *Recipes {
	return &Recipes{m: orderedmap.NewOrderedMap[string, *Recipe]()}
}

// Set inserts or replaces the recipe under name.
func (r *Recipes) Set(name string, recipe *Recipe) {
	r.m.Set(name, recipe)
}

// Get looks up a recipe by name.
func (r *Recipes) Get(name string) (*Recipe, bool) {
	return r.m.Get(name)
}

// Main returns the first-inserted recipe, the program's entry point.
func (r *Recipes) Main() (*Recipe, bool) {
	for el := r.m.Front(); el != nil; el = el.Next() {
		return el.Value, true
	}
	return nil, false
}

// Len returns the number of recipes.
func (r *Recipes) Len() int {
	return r.m.Len()
}

// Names returns every recipe name in insertion order.
func (r *Recipes) Names() []string {
	names := make([]string, 0, r.m.Len())
	for el := r.m.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}
