package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/kosha/internal/wire"
)

var parseCmd = &cobra.Command{
	Use:   "parse [dict-folder]",
	Short: "Parse a StarDict dictionary folder into the JSON export",
	Long: `Parse a StarDict dictionary (.ifo, .idx, .dict or .dict.dz, optional .syn)
and write the entries as a JSON export sorted by text number. The export is
the input of the generate stage.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		report, err := wire.ParseService().Parse(args[0], output)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Parsed %s (version %s)\n", report.DictionaryName, report.Version)
		fmt.Printf("  %d entries written to %s\n", report.Entries, report.OutputPath)
		return nil
	},
}

func init() {
	parseCmd.Flags().StringP("output", "o", "parsed_dict.generated.json", "Export file to write")
}

// ParseCmd returns the parse command
func ParseCmd() *cobra.Command {
	return parseCmd
}
