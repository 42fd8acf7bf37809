package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/kosha/internal/wire"
)

var splitCmd = &cobra.Command{
	Use:   "split [source-file] [dest-folder]",
	Short: "Split a review file into numbered parts for proofreaders",
	Long: `Cut the source file into contiguous part_NN.yaml chunks, preserving entry
order. Each record gets the review bookkeeping fields (resolved, comment) and
a surrogate key. Re-running overwrites the previous parts.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		parts, _ := cmd.Flags().GetInt("parts")
		if parts == 0 {
			parts = wire.Config().DefaultParts
		}

		report, err := wire.SplitService().Split(args[0], args[1], parts)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Split %d entries into %d parts under %s\n",
			report.SourceEntries, report.Parts, args[1])
		fmt.Printf("  %d surrogate keys assigned\n", report.KeysAssigned)
		return nil
	},
}

func init() {
	splitCmd.Flags().IntP("parts", "n", 0, "Number of parts (default from config)")
}

// SplitCmd returns the split command
func SplitCmd() *cobra.Command {
	return splitCmd
}
