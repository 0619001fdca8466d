package tts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAudioFileUsesCache(t *testing.T) {
	dir := t.TempDir()
	s := &Service{cacheDir: dir}

	// Pre-seed the cache so no network fetch happens.
	cached := filepath.Join(dir, "word_ice_cream.mp3")
	if err := os.WriteFile(cached, []byte("mp3"), 0o644); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	path, err := s.audioFile(" Ice Cream ")
	if err != nil {
		t.Fatalf("audioFile: %v", err)
	}
	if path != cached {
		t.Errorf("path = %q, want %q", path, cached)
	}
}

func TestNoopSpeaker(t *testing.T) {
	var sp Speaker = Noop{}
	if err := sp.Speak("apple"); err != nil {
		t.Errorf("Speak: %v", err)
	}
}
