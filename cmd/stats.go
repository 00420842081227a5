package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmorante/repaso/internal/lesson"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		all, err := st.Progress().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if len(all) == 0 {
			fmt.Println("Todavía no hay repasos registrados.")
			return nil
		}

		// Newest last in storage order; show the most recent runs.
		if limit > 0 && len(all) > limit {
			all = all[len(all)-limit:]
		}

		fmt.Printf("%-19s  %-28s  %-8s  %-9s  %s\n",
			"Fecha", "Lección", "Puntos", "Aciertos", "Dificultad")
		fmt.Println(strings.Repeat("─", 78))
		for _, rec := range all {
			name, _ := rec.Data["lesson"].(string)
			difficulty, _ := rec.Data["difficulty"].(string)
			points := intField(rec.Data, "points")
			correct := intField(rec.Data, "correct")
			total := intField(rec.Data, "total")

			line := fmt.Sprintf("%-19s  %-28s  %-8d  %d/%-7d  %s",
				rec.CreatedAt.Local().Format("2006-01-02 15:04"),
				truncateName(lesson.DisplayName(name), 28),
				points, correct, total, difficulty)
			if forced, _ := rec.Data["forced"].(bool); forced {
				line += "  (tiempo agotado)"
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 20, "Number of recent runs to show")
}

// intField reads a numeric JSON field that may round-trip as float64.
func intField(data map[string]any, key string) int {
	switch v := data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func truncateName(s string, w int) string {
	runes := []rune(s)
	if len(runes) <= w {
		return s
	}
	return string(runes[:w-3]) + "..."
}
