package main

import (
	"fmt"

	"github.com/gochef/chef/ast"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <recipe-file>",
	Short: "Parse a recipe and dump its built AST",
	Long: `inspect parses a Chef recipe file, lowers it to the recipe/statement
AST, and marshals the result as YAML for inspection.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeChefFiles,
	RunE:              runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// recipeDump is a YAML-friendly projection of ast.Recipes: the map type
// itself wraps an orderedmap, so inspect walks it into a plain slice
// that preserves the same insertion order.
type recipeDump struct {
	Main    string       `yaml:"main"`
	Recipes []*ast.Recipe `yaml:"recipes"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	recipes, err := loadRecipes(args[0])
	if err != nil {
		return err
	}

	dump := recipeDump{}
	if main, ok := recipes.Main(); ok {
		dump.Main = main.Name
	}
	for _, name := range recipes.Names() {
		recipe, _ := recipes.Get(name)
		dump.Recipes = append(dump.Recipes, recipe)
	}

	out, err := yaml.Marshal(dump)
	if err != nil {
		return fmt.Errorf("marshaling AST: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
