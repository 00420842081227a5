package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <snapshot.json>",
	Short: "Import lessons and progress from a snapshot",
	Long: `Merge an exported snapshot into the database.

Lessons already present (same ID or same filename) and progress records
with known IDs are skipped, so importing the same snapshot twice adds
nothing. The import is atomic: on any error the database is unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.Import(cmd.Context(), data)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}

		fmt.Printf("Importadas %d lecciones y %d registros de progreso\n",
			stats.Lessons, stats.Progress)
		if stats.Total() == 0 {
			fmt.Println("Todo estaba ya en la base de datos.")
		}
		return nil
	},
}
