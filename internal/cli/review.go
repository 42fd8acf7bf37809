package cli

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/example/kosha/internal/wire"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Maintain review part files",
	Long:  "Add missing review fields and prune resolved entries from part files",
}

var reviewAddFieldsCmd = &cobra.Command{
	Use:   "add-fields [folder]",
	Short: "Ensure every record has resolved, comment and a surrogate key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := wire.ReviewService().AddFields(args[0])
		if err != nil {
			return err
		}

		if report.Files == 0 {
			fmt.Println("Nothing to do, all records already carry the review fields")
			return nil
		}
		fmt.Printf("✓ Updated %d file(s): %d records given review fields, %d keys assigned\n",
			report.Files, report.RecordsTouched, report.KeysAssigned)
		return nil
	},
}

var reviewRemoveResolvedCmd = &cobra.Command{
	Use:   "remove-resolved [folder]",
	Short: "Drop resolved entries and refresh the header counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		report, err := wire.ReviewService().RemoveResolved(args[0], dryRun)
		if err != nil {
			return err
		}

		if report.TotalRemoved() == 0 {
			fmt.Println("No resolved entries to remove")
			return nil
		}

		for _, path := range sortedKeys(report.Removed) {
			for _, key := range report.Removed[path] {
				if dryRun {
					fmt.Printf("would remove %s from %s\n", key, filepath.Base(path))
				} else {
					fmt.Printf("removed %s from %s\n", key, filepath.Base(path))
				}
			}
		}
		if dryRun {
			fmt.Printf("Dry run: %d entries would be removed, %d would remain\n",
				report.TotalRemoved(), report.Remaining)
		} else {
			fmt.Printf("✓ Removed %d entries, %d remaining\n",
				report.TotalRemoved(), report.Remaining)
		}
		return nil
	},
}

// sortedKeys returns the map keys in lexical order for stable output.
func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	reviewRemoveResolvedCmd.Flags().Bool("dry-run", false, "Report removals without writing")

	reviewCmd.AddCommand(reviewAddFieldsCmd)
	reviewCmd.AddCommand(reviewRemoveResolvedCmd)
}

// ReviewCmd returns the review command
func ReviewCmd() *cobra.Command {
	return reviewCmd
}
