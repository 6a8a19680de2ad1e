package news

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDedupe verifies case-insensitive title deduplication keeps the first
// occurrence and drops empty titles.
func TestDedupe(t *testing.T) {
	items := []Item{
		{Title: "GPT model released", Source: "first"},
		{Title: "gpt model released", Source: "second"},
		{Title: "  GPT Model Released  ", Source: "third"},
		{Title: "Another story"},
		{Title: ""},
	}

	got := Dedupe(items)
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2: %+v", len(got), got)
	}
	if got[0].Source != "first" {
		t.Errorf("kept %q, want the first occurrence", got[0].Source)
	}
	if got[1].Title != "Another story" {
		t.Errorf("second item = %q", got[1].Title)
	}
}

func TestDedupe_CaseSensitiveTitlesDiffer(t *testing.T) {
	items := []Item{
		{Title: "AI beats benchmark"},
		{Title: "AI beats benchmark again"},
	}
	if got := Dedupe(items); len(got) != 2 {
		t.Errorf("distinct titles collapsed: %d items", len(got))
	}
}

// TestMatchesTerms verifies the search-term filter is case-insensitive and
// that an empty term list matches everything.
func TestMatchesTerms(t *testing.T) {
	terms := []string{"AI", "machine learning"}

	cases := []struct {
		title string
		want  bool
	}{
		{"New AI chip announced", true},
		{"new ai chip announced", true},
		{"Advances in Machine Learning", true},
		{"Quarterly earnings report", false},
	}
	for _, tc := range cases {
		if got := matchesTerms(tc.title, terms); got != tc.want {
			t.Errorf("matchesTerms(%q) = %v, want %v", tc.title, got, tc.want)
		}
	}

	if !matchesTerms("anything at all", nil) {
		t.Error("empty term list should match everything")
	}
}

// TestClip verifies description truncation with ellipsis.
func TestClip(t *testing.T) {
	if got := clip("short", 200); got != "short" {
		t.Errorf("clip(short) = %q", got)
	}

	long := strings.Repeat("a", 300)
	got := clip(long, 200)
	if len(got) != 200 {
		t.Errorf("clipped length = %d, want 200", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("clipped string missing ellipsis: %q", got[190:])
	}
}

// TestStripHTML verifies tag removal from feed descriptions.
func TestStripHTML(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"<p>hello <b>world</b></p>", "hello world"},
		{"before <a href=\"x\">link</a> after", "before link after"},
		{"<div></div>", ""},
	}
	for _, tc := range cases {
		if got := stripHTML(tc.in); got != tc.want {
			t.Errorf("stripHTML(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// TestSaveLoad_RoundTrip verifies article persistence through the JSON store.
func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "today_news.json")

	items := []Item{
		{
			Title:       "Round trip story",
			Description: "A story that survives serialization.",
			Source:      "Test Feed",
			Link:        "https://example.com/story",
			Published:   time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
		},
		{Title: "Second story", Source: "Test Feed"},
	}

	if err := Save(items, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}
	if got[0].Title != items[0].Title || got[0].Link != items[0].Link {
		t.Errorf("first item = %+v, want %+v", got[0], items[0])
	}
	if !got[0].Published.Equal(items[0].Published) {
		t.Errorf("Published = %v, want %v", got[0].Published, items[0].Published)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestSampleArticles verifies the fallback set is usable: non-empty titles,
// newest first.
func TestSampleArticles(t *testing.T) {
	items := SampleArticles()
	if len(items) == 0 {
		t.Fatal("no sample articles")
	}
	for i, it := range items {
		if it.Title == "" {
			t.Errorf("sample %d has empty title", i)
		}
		if i > 0 && items[i-1].Published.Before(it.Published) {
			t.Errorf("samples not newest-first at index %d", i)
		}
	}
}

func TestTitles(t *testing.T) {
	items := []Item{{Title: "a"}, {Title: "b"}}
	got := Titles(items)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Titles = %v", got)
	}
}
