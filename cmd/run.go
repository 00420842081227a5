package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmorante/repaso/internal/app"
	"github.com/dmorante/repaso/internal/speech"
)

// runApp opens the store, probes for an audio player, and launches the
// TUI. Read-aloud is optional: without a player the app runs silent.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(st, newSynthesizer())
}

// newSynthesizer builds the TTS backend, nil when unavailable.
func newSynthesizer() speech.Synthesizer {
	synth, err := speech.NewGoogleSynthesizer(audioCacheDir())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Lectura en voz alta no disponible:", err)
		return nil
	}
	return synth
}

// audioCacheDir resolves the TTS audio cache under XDG cache.
func audioCacheDir() string {
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "repaso-audio")
		}
		cacheHome = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheHome, "repaso", "audio")
}
