package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/kosha/internal/cli"
	"github.com/example/kosha/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "kosha",
		Short:   "kosha - Sanskrit lexicon curation toolkit",
		Version: version.String(),
		Long: `kosha curates a Sanskrit verb lexicon: it parses StarDict dictionaries,
distributes entries into a reviewable YAML tree, splits them among
proofreaders and carries resolved edits back into the canonical data files.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ParseCmd())
	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.SplitCmd())
	rootCmd.AddCommand(cli.ReviewCmd())
	rootCmd.AddCommand(cli.BackportCmd())
	rootCmd.AddCommand(cli.VerifyCmd())
	rootCmd.AddCommand(cli.DhatuCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
