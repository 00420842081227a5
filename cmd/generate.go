package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmorante/repaso/internal/lesson"
	"github.com/dmorante/repaso/internal/llm"
	"github.com/dmorante/repaso/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate <context.txt>",
	Short: "Generate a quiz lesson from a text with an LLM",
	Long: `Read a study text and generate a multiple-choice lesson from it.

The provider is taken from REPASO_LLM_PROVIDER, or discovered from the
standard GEMINI_API_KEY / OPENAI_API_KEY / ANTHROPIC_API_KEY variables.
With --prompt-only the prompt is printed instead, ready to paste into
any chat assistant.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntP("questions", "n", 5, "Number of questions to generate")
	generateCmd.Flags().String("length", "mediana", "Explanation length: corta, mediana or larga")
	generateCmd.Flags().StringP("output", "o", "", "Write the lesson JSON to a file instead of saving it")
	generateCmd.Flags().Bool("prompt-only", false, "Print the generation prompt and exit")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read context file: %w", err)
	}
	contextText := strings.TrimSpace(string(text))
	if contextText == "" {
		return fmt.Errorf("context file %s is empty", args[0])
	}

	numQuestions, _ := cmd.Flags().GetInt("questions")
	length, err := explanationLength(cmd)
	if err != nil {
		return err
	}

	if promptOnly, _ := cmd.Flags().GetBool("prompt-only"); promptOnly {
		fmt.Println(lesson.BuildQuizPrompt(contextText, numQuestions, length))
		return nil
	}

	provider, err := newLLMProvider(cmd.Context())
	if err != nil {
		return err
	}

	service := lesson.NewService(provider, lesson.DefaultConfig())
	fmt.Fprintln(cmd.ErrOrStderr(), "Generando lección...")
	lsn, err := service.Generate(cmd.Context(), lesson.GenerateInput{
		Context:      contextText,
		NumQuestions: numQuestions,
		Length:       length,
	})
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0])) + ".json"

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		out, err := json.MarshalIndent(lsn, "", "  ")
		if err != nil {
			return fmt.Errorf("encode lesson: %w", err)
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("Lección escrita en %s (%d preguntas)\n", path, len(lsn.Questions))
		return nil
	}

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	raw, err := lesson.Raw(lsn)
	if err != nil {
		return fmt.Errorf("encode lesson: %w", err)
	}
	rec, err := st.Lessons().Save(cmd.Context(), &store.LessonRecord{
		Filename: name,
		Data:     raw,
		Source:   "generated",
	})
	if err != nil {
		return fmt.Errorf("save lesson: %w", err)
	}
	fmt.Printf("Guardada %q (id %d, %d preguntas)\n",
		lesson.DisplayName(rec.Filename), rec.ID, len(lsn.Questions))
	return nil
}

func explanationLength(cmd *cobra.Command) (lesson.ExplanationLength, error) {
	v, _ := cmd.Flags().GetString("length")
	switch v {
	case "corta":
		return lesson.ExplanationShort, nil
	case "mediana":
		return lesson.ExplanationMedium, nil
	case "larga":
		return lesson.ExplanationLong, nil
	}
	return "", fmt.Errorf("invalid --length %q (want corta, mediana or larga)", v)
}

// newLLMProvider builds a provider from REPASO_* variables, falling
// back to discovery by standard API key names.
func newLLMProvider(ctx context.Context) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: %w", err)
		}
		cfg = discovered
	}
	return llm.NewProvider(ctx, cfg)
}
