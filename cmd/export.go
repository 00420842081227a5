package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export lessons and progress as JSON",
	Long:  "Write a portable snapshot of the whole database to stdout or a file. Re-import it with 'repaso import'.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		out, err := st.Export(cmd.Context())
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		if path, _ := cmd.Flags().GetString("output"); path != "" {
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exportado a %s\n", path)
			return nil
		}

		fmt.Println(string(out))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Write the snapshot to a file instead of stdout")
}
