package tts

import (
	"context"
	"testing"

	"github.com/bytecast/bytecast/internal/config"
)

// TestNewProvider verifies provider selection and rejection of unknown
// names.
func TestNewProvider(t *testing.T) {
	p, err := NewProvider(config.TTS{Provider: "deepgram"})
	if err != nil {
		t.Fatalf("deepgram: %v", err)
	}
	if p.Name() != "deepgram" {
		t.Errorf("Name = %q", p.Name())
	}

	p, err = NewProvider(config.TTS{Provider: "elevenlabs"})
	if err != nil {
		t.Fatalf("elevenlabs: %v", err)
	}
	if p.Name() != "elevenlabs" {
		t.Errorf("Name = %q", p.Name())
	}

	if _, err := NewProvider(config.TTS{Provider: "espeak"}); err == nil {
		t.Error("unknown provider accepted")
	}
}

// TestSynthesize_MissingKey verifies both providers fail fast without an
// API key instead of making a doomed network call.
func TestSynthesize_MissingKey(t *testing.T) {
	for _, name := range []string{"deepgram", "elevenlabs"} {
		p, err := NewProvider(config.TTS{Provider: name})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if _, err := p.Synthesize(context.Background(), "hello"); err == nil {
			t.Errorf("%s synthesized without an API key", name)
		}
	}
}
