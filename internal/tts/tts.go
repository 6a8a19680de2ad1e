// Package tts converts the narration script to speech through hosted
// voice APIs.
package tts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytecast/bytecast/internal/config"
)

// Provider synthesizes speech from text and returns encoded audio bytes.
type Provider interface {
	Name() string
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// NewProvider selects the configured provider implementation.
func NewProvider(cfg config.TTS) (Provider, error) {
	switch cfg.Provider {
	case "deepgram":
		return newDeepgram(cfg), nil
	case "elevenlabs":
		return newElevenLabs(cfg), nil
	default:
		return nil, fmt.Errorf("unknown tts provider %q", cfg.Provider)
	}
}

// Generate synthesizes text and writes the audio to path.
func Generate(ctx context.Context, p Provider, text, path string) error {
	audio, err := p.Synthesize(ctx, text)
	if err != nil {
		return fmt.Errorf("%s synthesis: %w", p.Name(), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
