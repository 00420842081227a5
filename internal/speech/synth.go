package speech

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Synthesizer turns a text chunk into audible speech, blocking until
// playback finishes or the context is cancelled.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
}

const (
	ttsEndpoint       = "https://translate.google.com/translate_tts"
	ttsRequestTimeout = 10 * time.Second
	ttsLang           = "es"
)

// Players probed in order. All of them exit when the file ends.
var playerCommands = [][]string{
	{"mpv", "--really-quiet", "--no-video"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
	{"mpg123", "-q"},
	{"afplay"},
}

// GoogleSynthesizer fetches MP3 audio from the Google Translate TTS
// endpoint (free, no API key) and plays it through whichever command
// line player is installed. Fetched chunks are cached on disk keyed by
// content hash, so re-reading a lesson context costs no network calls.
type GoogleSynthesizer struct {
	cacheDir string
	endpoint string
	client   *http.Client
	player   []string
}

// NewGoogleSynthesizer creates a synthesizer caching under cacheDir.
// It fails when no supported audio player is on PATH.
func NewGoogleSynthesizer(cacheDir string) (*GoogleSynthesizer, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio cache dir: %w", err)
	}

	player, err := findPlayer()
	if err != nil {
		return nil, err
	}

	return &GoogleSynthesizer{
		cacheDir: cacheDir,
		endpoint: ttsEndpoint,
		client:   &http.Client{Timeout: ttsRequestTimeout},
		player:   player,
	}, nil
}

func findPlayer() ([]string, error) {
	for _, cmd := range playerCommands {
		if _, err := exec.LookPath(cmd[0]); err == nil {
			return cmd, nil
		}
	}
	return nil, fmt.Errorf("no audio player found (tried mpv, ffplay, mpg123, afplay)")
}

// Speak fetches the chunk's audio (or reuses the cached file) and
// blocks while the player runs.
func (s *GoogleSynthesizer) Speak(ctx context.Context, text string) error {
	path, err := s.fetch(ctx, text)
	if err != nil {
		return err
	}

	args := append(append([]string{}, s.player[1:]...), path)
	cmd := exec.CommandContext(ctx, s.player[0], args...)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("play audio: %w", err)
	}
	return nil
}

// fetch downloads the chunk's MP3 unless it is already cached, and
// returns the file path.
func (s *GoogleSynthesizer) fetch(ctx context.Context, text string) (string, error) {
	name := fmt.Sprintf("%x.mp3", sha256.Sum256([]byte(ttsLang+":"+text)))
	path := filepath.Join(s.cacheDir, name)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", ttsLang)
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build TTS request: %w", err)
	}
	// The endpoint rejects requests without a browser user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch TTS audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("TTS endpoint returned status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(s.cacheDir, "tts-*.mp3")
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write audio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close audio file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("cache audio file: %w", err)
	}

	return path, nil
}
