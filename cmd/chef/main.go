// Command chef runs Chef recipe source files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const banner = "Hello, kitchen!"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "chef <recipe-file>",
	Short: "Run a Chef recipe",
	Long: `chef runs a Chef recipe file: ingredients as scalars, mixing bowls
and baking dishes as stacks, Method statements as the program body.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeChefFiles,
	RunE:              runRecipe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".chef.toml", "path to an optional interpreter config file")
}

func main() {
	fmt.Println(banner)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
