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

const deepgramEndpoint = "https://api.deepgram.com/v1/speak"

type deepgram struct {
	apiKey string
	voice  string
	client *http.Client
}

func newDeepgram(cfg config.TTS) *deepgram {
	voice := cfg.Voice
	if voice == "" {
		voice = "aura-asteria-en"
	}
	return &deepgram{
		apiKey: cfg.APIKey,
		voice:  voice,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (d *deepgram) Name() string { return "deepgram" }

func (d *deepgram) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if d.apiKey == "" {
		return nil, fmt.Errorf("TTS_API_KEY not set")
	}

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s?model=%s&encoding=mp3", deepgramEndpoint, d.voice)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+d.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("deepgram returned %s: %s", resp.Status, body)
	}
	return io.ReadAll(resp.Body)
}
