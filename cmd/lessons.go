package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmorante/repaso/internal/lesson"
	"github.com/dmorante/repaso/internal/store"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "Manage the saved lesson library",
}

var lessonsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		all, err := st.Lessons().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("list lessons: %w", err)
		}
		if len(all) == 0 {
			fmt.Println("No hay lecciones guardadas.")
			return nil
		}

		fmt.Printf("%-15s  %-30s  %-10s  %s\n", "ID", "Lección", "Preguntas", "Origen")
		fmt.Println(strings.Repeat("─", 70))
		for _, rec := range all {
			count := 0
			if qs, ok := rec.Data["questions"].([]any); ok {
				count = len(qs)
			}
			fmt.Printf("%-15d  %-30s  %-10d  %s\n",
				rec.ID, lesson.DisplayName(rec.Filename), count, rec.Source)
		}
		return nil
	},
}

var lessonsAddCmd = &cobra.Command{
	Use:   "add <file...>",
	Short: "Save lesson files into the library",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			lsn, err := lesson.Decode(data)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			raw, err := lesson.Raw(lsn)
			if err != nil {
				return fmt.Errorf("encode %s: %w", path, err)
			}

			rec, err := st.Lessons().Save(cmd.Context(), &store.LessonRecord{
				Filename: filepath.Base(path),
				Data:     raw,
				Source:   "file",
			})
			if err != nil {
				return fmt.Errorf("save %s: %w", path, err)
			}
			fmt.Printf("Guardada %q (id %d, %d preguntas)\n",
				lesson.DisplayName(rec.Filename), rec.ID, len(lsn.Questions))
		}
		return nil
	},
}

var lessonsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a lesson by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid lesson ID %q", args[0])
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		rec, err := st.Lessons().Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("look up lesson: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("no lesson with ID %d", id)
		}
		if err := st.Lessons().Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete lesson: %w", err)
		}
		fmt.Printf("Borrada %q\n", lesson.DisplayName(rec.Filename))
		return nil
	},
}

var lessonsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every saved lesson",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to clear without --yes")
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		n, err := st.Lessons().Clear(cmd.Context())
		if err != nil {
			return fmt.Errorf("clear lessons: %w", err)
		}
		fmt.Printf("Borradas %d lecciones\n", n)
		return nil
	},
}

func init() {
	lessonsClearCmd.Flags().Bool("yes", false, "Confirm deletion")

	lessonsCmd.AddCommand(lessonsListCmd)
	lessonsCmd.AddCommand(lessonsAddCmd)
	lessonsCmd.AddCommand(lessonsDeleteCmd)
	lessonsCmd.AddCommand(lessonsClearCmd)
}
