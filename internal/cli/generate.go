package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/kosha/internal/wire"
)

var generateCmd = &cobra.Command{
	Use:   "generate [export-file]",
	Short: "Distribute export entries into the generated YAML tree",
	Long: `Read the parsed dictionary export and append every entry to
<generated>/<khanda>/<varga>.yaml according to its text number. Entries with
an unusable text number or blank fields go to the invalid/ quarantine.

The generated tree is append-only: re-running appends the same blocks again.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = wire.Config().GeneratedRoot
		}

		report, err := wire.GenerateService(out).Generate(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("✓ Generated %d of %d entries under %s\n", report.Appended, report.Total, out)
		if n := report.Quarantined(); n > 0 {
			marker := color.New(color.FgYellow).Sprint("!")
			fmt.Printf("%s %d quarantined (%d bad text number, %d bad fields)\n",
				marker, n, report.BadCoordinate, report.BadFields)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().String("out", "", "Generated tree root (default from config)")
}

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	return generateCmd
}
