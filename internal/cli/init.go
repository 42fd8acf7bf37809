package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/kosha/internal/config"
	"github.com/example/kosha/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Initialize a kosha workspace",
		Long:  `Write .kosha/config.json with the default layout and create the dhatu index database.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			configPath := filepath.Join(dir, ".kosha", "config.json")
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("workspace already initialized: %s exists", configPath)
			}

			cfg := config.Default(dir)
			if err := config.SaveConfig(dir, cfg); err != nil {
				return err
			}
			fmt.Printf("✓ Config written to %s\n", configPath)

			database, err := db.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer database.Close()
			fmt.Printf("✓ Dhatu index database at %s\n", cfg.DBPath)

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  kosha parse <stardict-folder>")
			fmt.Println("  kosha generate parsed_dict.generated.json")

			return nil
		},
	}
}
