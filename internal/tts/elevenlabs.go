package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytecast/bytecast/internal/config"
)

const elevenLabsEndpoint = "https://api.elevenlabs.io/v1/text-to-speech"

type elevenLabs struct {
	apiKey string
	voice  string
	client *http.Client
}

func newElevenLabs(cfg config.TTS) *elevenLabs {
	voice := cfg.Voice
	if voice == "" {
		voice = "21m00Tcm4TlvDq8ikWAM" // Rachel
	}
	return &elevenLabs{
		apiKey: cfg.APIKey,
		voice:  voice,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (e *elevenLabs) Name() string { return "elevenlabs" }

type elevenLabsRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

func (e *elevenLabs) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if e.apiKey == "" {
		return nil, fmt.Errorf("TTS_API_KEY not set")
	}

	payload, err := json.Marshal(elevenLabsRequest{
		Text:    text,
		ModelID: "eleven_monolingual_v1",
	})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s", elevenLabsEndpoint, e.voice)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", e.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("elevenlabs returned %s: %s", resp.Status, body)
	}
	return io.ReadAll(resp.Body)
}
