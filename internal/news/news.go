// Package news fetches the day's AI headlines from RSS feeds and NewsAPI,
// deduplicates them, and persists the selection for the rest of the pipeline.
package news

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Item is one article headed for narration. The rendering core only reads
// the Title; the rest is carried for the manifest and the script.
type Item struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Source      string    `json:"source"`
	Link        string    `json:"link"`
	Published   time.Time `json:"published"`
}

// Day is the persisted selection for one pipeline run.
type Day struct {
	Date        time.Time `json:"date"`
	NumArticles int       `json:"num_articles"`
	Articles    []Item    `json:"articles"`
}

// Save writes today's articles as JSON.
func Save(items []Item, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	day := Day{
		Date:        time.Now(),
		NumArticles: len(items),
		Articles:    items,
	}

	data, err := json.MarshalIndent(day, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding articles: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Load reads a previously saved selection.
func Load(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var day Day
	if err := json.Unmarshal(data, &day); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return day.Articles, nil
}

// Titles extracts the display labels in article order.
func Titles(items []Item) []string {
	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = it.Title
	}
	return titles
}
