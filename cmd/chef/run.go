package main

import (
	"fmt"
	"os"

	"github.com/gochef/chef/ast"
	"github.com/gochef/chef/config"
	"github.com/gochef/chef/interpreter"
	"github.com/gochef/chef/parser"
	"github.com/spf13/cobra"
)

func runRecipe(cmd *cobra.Command, args []string) error {
	filename := args[0]
	recipes, err := loadRecipes(filename)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	opts := []interpreter.Option{
		interpreter.WithStdin(os.Stdin),
		interpreter.WithStdout(os.Stdout),
		interpreter.WithStderr(os.Stderr),
	}
	if cfg.Shuffle.HasSeed {
		opts = append(opts, interpreter.WithSeed(cfg.Shuffle.Seed))
	}

	interp := interpreter.New(recipes, opts...)
	return interp.RunMain()
}

// loadRecipes reads, parses, and lowers a recipe file, wrapping every
// stage's error with the filename for context.
func loadRecipes(filename string) (*ast.Recipes, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	tree, err := parser.ParseString(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	recipes, err := ast.Build(tree)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", filename, err)
	}
	return recipes, nil
}
