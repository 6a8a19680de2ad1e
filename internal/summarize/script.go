// Package summarize turns the day's articles into a short narration script
// sized for text-to-speech, optionally condensing each story through a
// hosted summarization model.
package summarize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytecast/bytecast/internal/news"
)

const (
	scriptIntro = "Welcome to AI Tech Bytes, your daily dose of artificial intelligence news."
	scriptOutro = "That's all for today. Subscribe for tomorrow's AI news!"
)

// BuildScript assembles the narration under maxChars. Each remaining story
// gets an even share of the remaining budget with a 10% safety margin;
// stories that cannot fit their share are dropped. The outro is appended
// only if it still fits.
func BuildScript(items []news.Item, maxChars int) string {
	var b strings.Builder
	b.WriteString(scriptIntro)

	remaining := maxChars - b.Len()
	for i, it := range items {
		left := len(items) - i
		budget := remaining / left
		budget = budget * 9 / 10
		if budget <= 0 {
			break
		}

		story := fmt.Sprintf(" Story %d: %s.", i+1, strings.TrimSuffix(it.Title, "."))
		if it.Description != "" {
			full := story + " " + strings.TrimSuffix(it.Description, ".") + "."
			if len(full) <= budget {
				story = full
			}
		}
		if len(story) > budget {
			continue
		}
		b.WriteString(story)
		remaining -= len(story)
	}

	if remaining >= len(scriptOutro)+1 {
		b.WriteString(" ")
		b.WriteString(scriptOutro)
	}
	return b.String()
}

// SaveScript writes the narration text for inspection and reuse.
func SaveScript(script, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
