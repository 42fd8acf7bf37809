package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/kosha/internal/wire"
)

var dhatuCmd = &cobra.Command{
	Use:   "dhatu",
	Short: "Maintain the dhatu form index",
	Long:  "Import DhatuForms grids into the index and look up the codes for a form",
}

var dhatuImportCmd = &cobra.Command{
	Use:   "import [forms-file]",
	Short: "Index the first present-tense form of every dhatu",
	Long: `Read a DhatuForms JSON document (dhatu code to tense grids) and index the
first form of each semicolon-separated plat/alat value. Comma-separated
alternate spellings each get their own row. Importing is idempotent.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := wire.DhatuService().Import(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("✓ Imported %d dhatu codes (%d form pairs)\n", report.Codes, report.Pairs)
		fmt.Printf("  index now holds %d rows\n", report.IndexSize)
		return nil
	},
}

var dhatuLookupCmd = &cobra.Command{
	Use:   "lookup [form]",
	Short: "Print the dhatu codes recorded for a form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codes, err := wire.DhatuService().Lookup(context.Background(), args[0])
		if err != nil {
			return err
		}

		if len(codes) == 0 {
			fmt.Printf("No codes recorded for %s\n", args[0])
			return nil
		}
		fmt.Printf("%s: %s\n", args[0], strings.Join(codes, ", "))
		return nil
	},
}

func init() {
	dhatuCmd.AddCommand(dhatuImportCmd)
	dhatuCmd.AddCommand(dhatuLookupCmd)
}

// DhatuCmd returns the dhatu command
func DhatuCmd() *cobra.Command {
	return dhatuCmd
}
