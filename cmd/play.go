package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmorante/repaso/internal/app"
	"github.com/dmorante/repaso/internal/lesson"
	quizscreen "github.com/dmorante/repaso/internal/screens/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play [lesson.json]",
	Short: "Play one lesson directly",
	Long: `Run one quiz straight from a lesson JSON file, or with --random a
lesson picked at random from the database.

When playing from a file nothing is stored: no lesson record, no
progress. Useful for trying a lesson before importing it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		random, _ := cmd.Flags().GetBool("random")
		if random {
			return playRandom(cmd)
		}
		if len(args) != 1 {
			return fmt.Errorf("need a lesson file argument or --random")
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read lesson file: %w", err)
		}
		lsn, err := lesson.Decode(data)
		if err != nil {
			return fmt.Errorf("parse lesson file: %w", err)
		}

		name := filepath.Base(args[0])
		return app.RunLesson(quizscreen.New(lsn, name, nil, newSynthesizer()))
	},
}

func playRandom(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	records, err := st.Lessons().All(cmd.Context())
	if err != nil {
		return fmt.Errorf("list lessons: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no lessons in the database; add one with 'repaso lessons add'")
	}

	rec := records[rand.IntN(len(records))]
	raw, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("encode lesson %q: %w", rec.Filename, err)
	}
	lsn, err := lesson.Decode(raw)
	if err != nil {
		return fmt.Errorf("parse lesson %q: %w", rec.Filename, err)
	}
	return app.RunLesson(quizscreen.New(lsn, rec.Filename, st, newSynthesizer()))
}

func init() {
	playCmd.Flags().Bool("random", false, "Pick a random lesson from the database")
}
