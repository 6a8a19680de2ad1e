package news

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/bytecast/bytecast/internal/config"
)

const (
	maxPerFeed      = 5
	descriptionClip = 200
	fetchTimeout    = 15 * time.Second
)

// Fetcher pulls candidate articles from the configured sources.
type Fetcher struct {
	cfg    config.News
	log    *slog.Logger
	client *http.Client
	parser *gofeed.Parser
}

func NewFetcher(cfg config.News, log *slog.Logger) *Fetcher {
	client := &http.Client{Timeout: fetchTimeout}
	parser := gofeed.NewParser()
	parser.Client = client
	return &Fetcher{
		cfg:    cfg,
		log:    log,
		client: client,
		parser: parser,
	}
}

// Fetch gathers articles from all sources, deduplicates by title, sorts
// newest first, and truncates to the configured maximum. Source failures
// are logged and skipped; if nothing at all comes back the built-in
// sample articles are returned so the pipeline always has material.
func (f *Fetcher) Fetch(ctx context.Context) []Item {
	var items []Item

	for _, feed := range f.cfg.Feeds {
		got, err := f.fetchFeed(ctx, feed)
		if err != nil {
			f.log.Warn("feed fetch failed", "url", feed, "error", err)
			continue
		}
		items = append(items, got...)
	}

	if f.cfg.NewsAPIKey != "" {
		got, err := f.fetchNewsAPI(ctx)
		if err != nil {
			f.log.Warn("newsapi fetch failed", "error", err)
		} else {
			items = append(items, got...)
		}
	}

	items = Dedupe(items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Published.After(items[j].Published)
	})

	if len(items) == 0 {
		f.log.Warn("no articles fetched, using sample articles")
		items = SampleArticles()
	}
	if len(items) > f.cfg.MaxArticles {
		items = items[:f.cfg.MaxArticles]
	}
	return items
}

func (f *Fetcher) fetchFeed(ctx context.Context, feedURL string) ([]Item, error) {
	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	var items []Item
	for _, entry := range feed.Items {
		if len(items) >= maxPerFeed {
			break
		}
		if !matchesTerms(entry.Title, f.cfg.SearchTerms) {
			continue
		}
		published := time.Now()
		if entry.PublishedParsed != nil {
			published = *entry.PublishedParsed
		}
		items = append(items, Item{
			Title:       strings.TrimSpace(entry.Title),
			Description: clip(stripHTML(entry.Description), descriptionClip),
			Source:      feed.Title,
			Link:        entry.Link,
			Published:   published,
		})
	}
	return items, nil
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		PublishedAt time.Time `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

func (f *Fetcher) fetchNewsAPI(ctx context.Context) ([]Item, error) {
	query := strings.Join(f.cfg.SearchTerms, " OR ")
	endpoint := fmt.Sprintf("%s?q=%s&sortBy=publishedAt&language=en&pageSize=%d&apiKey=%s",
		f.cfg.NewsAPIURL, url.QueryEscape(query), f.cfg.MaxArticles, f.cfg.NewsAPIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi returned %s", resp.Status)
	}

	var body newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding newsapi response: %w", err)
	}
	if body.Status != "ok" {
		return nil, fmt.Errorf("newsapi status %q", body.Status)
	}

	items := make([]Item, 0, len(body.Articles))
	for _, a := range body.Articles {
		if a.Title == "" || a.Title == "[Removed]" {
			continue
		}
		items = append(items, Item{
			Title:       strings.TrimSpace(a.Title),
			Description: clip(a.Description, descriptionClip),
			Source:      a.Source.Name,
			Link:        a.URL,
			Published:   a.PublishedAt,
		})
	}
	return items, nil
}

// Dedupe drops articles whose normalized title was already seen,
// keeping the first occurrence.
func Dedupe(items []Item) []Item {
	seen := make(map[string]bool, len(items))
	out := items[:0:0]
	for _, it := range items {
		key := strings.ToLower(strings.TrimSpace(it.Title))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}

func matchesTerms(title string, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	lower := strings.ToLower(title)
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func clip(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// stripHTML removes tags from feed descriptions, which frequently arrive
// as HTML fragments.
func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
