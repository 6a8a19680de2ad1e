package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytecast/bytecast/internal/config"
	"github.com/bytecast/bytecast/internal/news"
)

const requestTimeout = 30 * time.Second

// Client condenses article descriptions through a hosted inference API.
// When no API key is configured, or a request fails, the description is
// truncated locally instead so summarization never blocks the pipeline.
type Client struct {
	cfg    config.Summarize
	log    *slog.Logger
	client *http.Client
}

func NewClient(cfg config.Summarize, log *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		log:    log,
		client: &http.Client{Timeout: requestTimeout},
	}
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type inferenceResponse []struct {
	SummaryText string `json:"summary_text"`
}

// Condense rewrites each item's description as a short summary. The input
// slice is not modified.
func (c *Client) Condense(ctx context.Context, items []news.Item) []news.Item {
	out := make([]news.Item, len(items))
	copy(out, items)

	for i := range out {
		if out[i].Description == "" {
			continue
		}
		summary, err := c.summarize(ctx, out[i].Description)
		if err != nil {
			c.log.Warn("summarization failed, truncating", "title", out[i].Title, "error", err)
			summary = truncate(out[i].Description, 120)
		}
		out[i].Description = summary
	}
	return out
}

func (c *Client) summarize(ctx context.Context, text string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", fmt.Errorf("no inference API key configured")
	}

	payload, err := json.Marshal(inferenceRequest{
		Inputs: text,
		Parameters: inferenceParameters{
			MaxLength: 60,
			MinLength: 15,
		},
	})
	if err != nil {
		return "", err
	}

	endpoint := strings.TrimRight(c.cfg.Endpoint, "/") + "/" + c.cfg.Model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("inference API returned %s", resp.Status)
	}

	var body inferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding inference response: %w", err)
	}
	if len(body) == 0 || body[0].SummaryText == "" {
		return "", fmt.Errorf("empty summary from inference API")
	}
	return strings.TrimSpace(body[0].SummaryText), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	if i := strings.LastIndex(cut, " "); i > max/2 {
		cut = cut[:i]
	}
	return cut + "..."
}
