package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/kosha/internal/wire"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [source-file] [split-folder]",
	Short: "Check that split parts recombine into their source",
	Long: `Recombine the part files and compare them against the source file:
entry counts, missing and extra keys, and a deep comparison of every record.
The review bookkeeping fields added by split are ignored.

A data mismatch is reported but is not a process failure; the command exits
non-zero only when a file cannot be read.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := wire.VerifyService().Verify(args[0], args[1])
		if err != nil {
			return err
		}

		diff := report.Diff
		if diff.OK() {
			ok := color.New(color.FgGreen).Sprint("PASS")
			fmt.Printf("%s %d entries across %d parts match %s\n",
				ok, diff.SplitCount, report.Parts, report.SourceFile)
			return nil
		}

		fail := color.New(color.FgRed).Sprint("FAIL")
		fmt.Printf("%s source has %d entries, parts have %d\n", fail, diff.SourceCount, diff.SplitCount)
		for _, key := range diff.Missing {
			fmt.Printf("  missing:    %s\n", key)
		}
		for _, key := range diff.Extra {
			fmt.Printf("  extra:      %s\n", key)
		}
		for _, key := range diff.Mismatched {
			fmt.Printf("  mismatched: %s\n", key)
		}
		return nil
	},
}

// VerifyCmd returns the verify command
func VerifyCmd() *cobra.Command {
	return verifyCmd
}
