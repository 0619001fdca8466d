// Package tts plays word pronunciations. Audio is fetched from the
// Google Translate TTS endpoint (free, no API key needed), cached as
// MP3 files under the user's cache directory, and played through an
// external command-line player.
package tts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const requestTimeout = 10 * time.Second

// ErrNoPlayer is returned when no supported audio player is installed.
var ErrNoPlayer = errors.New("tts: no audio player found (tried afplay, mpg123, ffplay, mpv)")

// Speaker pronounces English words.
type Speaker interface {
	// Speak plays the pronunciation of text. Only one playback runs at
	// a time; a new call cancels the previous one.
	Speak(text string) error
}

// playerCandidates are tried in order. Each entry plays a single MP3
// file path appended as the final argument.
var playerCandidates = [][]string{
	{"afplay"},
	{"mpg123", "-q"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
	{"mpv", "--no-video", "--really-quiet"},
}

// Service fetches, caches, and plays pronunciations.
type Service struct {
	cacheDir string
	client   *http.Client
	player   []string

	mu     sync.Mutex
	cancel context.CancelFunc
}

// New creates a Service caching audio under cacheDir. It fails if no
// supported player is installed.
func New(cacheDir string) (*Service, error) {
	player, err := findPlayer()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("tts: create cache dir: %w", err)
	}
	return &Service{
		cacheDir: cacheDir,
		client:   &http.Client{Timeout: requestTimeout},
		player:   player,
	}, nil
}

// DefaultCacheDir returns the audio cache location, honoring
// XDG_CACHE_HOME.
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("tts: resolve cache dir: %w", err)
	}
	return filepath.Join(base, "lexio", "audio"), nil
}

func findPlayer() ([]string, error) {
	for _, candidate := range playerCandidates {
		if _, err := exec.LookPath(candidate[0]); err == nil {
			return candidate, nil
		}
	}
	return nil, ErrNoPlayer
}

// Speak fetches (or reuses a cached copy of) the pronunciation for
// text and plays it. Any playback still running is cancelled first.
func (s *Service) Speak(text string) error {
	path, err := s.audioFile(text)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	args := append(s.player[1:], path)
	cmd := exec.CommandContext(ctx, s.player[0], args...)
	if err := cmd.Start(); err != nil {
		cancel()
		return fmt.Errorf("tts: start player: %w", err)
	}
	go func() {
		_ = cmd.Wait()
		cancel()
	}()
	return nil
}

// audioFile returns the path of the cached MP3 for text, fetching it
// if missing.
func (s *Service) audioFile(text string) (string, error) {
	sanitized := strings.ToLower(strings.TrimSpace(text))
	sanitized = strings.ReplaceAll(sanitized, " ", "_")
	path := filepath.Join(s.cacheDir, fmt.Sprintf("word_%s.mp3", sanitized))

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := s.fetch(text, path); err != nil {
		return "", err
	}
	return path, nil
}

// fetch downloads the pronunciation from the Google Translate TTS
// endpoint into outputPath.
func (s *Service) fetch(text, outputPath string) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", "en")
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	fullURL := "https://translate.google.com/translate_tts?" + params.Encode()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("tts: create request: %w", err)
	}
	// Google rejects requests without a browser user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("tts: fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tts: unexpected status code %d", resp.StatusCode)
	}

	// Write to a temp file first so a failed download never leaves a
	// truncated MP3 in the cache.
	tmp, err := os.CreateTemp(s.cacheDir, "word_*.tmp")
	if err != nil {
		return fmt.Errorf("tts: create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("tts: write audio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("tts: close audio file: %w", err)
	}
	return os.Rename(tmp.Name(), outputPath)
}

// Noop is a Speaker that does nothing, used when no player is
// available so the rest of the app keeps working without sound.
type Noop struct{}

func (Noop) Speak(string) error { return nil }
