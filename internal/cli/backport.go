package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/kosha/internal/wire"
)

var backportCmd = &cobra.Command{
	Use:   "backport [source] [data-root]",
	Short: "Carry resolved review edits back into the data tree",
	Long: `Walk the review records of the source (a part file or a folder of part
files) and write each resolved dhatu edit into its canonical YAML file.

Records are matched by surrogate key when present, otherwise by form, artha
and shloka text. A record matching several shlokas is reported and left
untouched. Only the dhatu value of the matched position changes; re-running
a backport modifies nothing.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		checkIDs, _ := cmd.Flags().GetBool("check-ids")

		dataRoot := wire.Config().DataRoot
		if len(args) == 2 {
			dataRoot = args[1]
		}

		report, err := wire.BackportService(checkIDs).Backport(context.Background(), args[0], dataRoot, checkIDs)
		if err != nil {
			return err
		}

		for _, note := range report.Notes {
			fmt.Println(note)
		}
		for _, id := range report.UnknownIDs {
			marker := color.New(color.FgYellow).Sprint("!")
			fmt.Printf("%s id %s is not in the dhatu index\n", marker, id)
		}

		fmt.Printf("✓ Backport finished: %d processed\n", report.Processed)
		fmt.Printf("  matched:  %d (%d updated, %d already in place)\n",
			report.Matched, report.Updated, report.Matched-report.Updated)
		fmt.Printf("  skipped:  %d unresolved, %d unedited, %d nanartha\n",
			report.SkippedUnresolved, report.SkippedPristine, report.SkippedNanartha)
		if report.NotFound > 0 || report.Ambiguous > 0 {
			marker := color.New(color.FgRed).Sprint("✗")
			fmt.Printf("%s %d not found, %d ambiguous\n", marker, report.NotFound, report.Ambiguous)
		}
		fmt.Printf("  files modified: %d\n", report.FilesModified)
		return nil
	},
}

func init() {
	backportCmd.Flags().Bool("check-ids", false, "Validate new ids against the dhatu index")
}

// BackportCmd returns the backport command
func BackportCmd() *cobra.Command {
	return backportCmd
}
