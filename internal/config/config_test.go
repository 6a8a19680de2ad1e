package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefault verifies the shipped defaults pass validation and carry the
// two standard platforms.
func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}

	if len(cfg.Platforms) != 2 {
		t.Fatalf("got %d platforms, want 2", len(cfg.Platforms))
	}
	shorts := cfg.Platforms[0]
	if shorts.Name != "youtube_shorts" || shorts.Width != 1080 || shorts.Height != 1920 || shorts.FPS != 30 {
		t.Errorf("shorts platform = %+v, want 1080x1920@30", shorts)
	}
	wide := cfg.Platforms[1]
	if wide.Name != "youtube" || wide.Width != 1920 || wide.Height != 1080 {
		t.Errorf("youtube platform = %+v, want 1920x1080", wide)
	}

	if cfg.News.MaxArticles != 5 {
		t.Errorf("MaxArticles = %d, want 5", cfg.News.MaxArticles)
	}
	if cfg.Summarize.MaxScriptChars != 900 {
		t.Errorf("MaxScriptChars = %d, want 900", cfg.Summarize.MaxScriptChars)
	}
	if cfg.Render.FallbackSeconds != 30 {
		t.Errorf("FallbackSeconds = %g, want 30", cfg.Render.FallbackSeconds)
	}
}

// TestLoad_MissingFile verifies that a nonexistent config path falls back
// to defaults instead of failing.
func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if cfg.Project != "AI Tech Bytes" {
		t.Errorf("Project = %q, want default", cfg.Project)
	}
}

// TestLoad_TOMLOverrides verifies file values override defaults while
// unspecified fields keep theirs.
func TestLoad_TOMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bytecast.toml")
	body := `
project = "Test Cast"

[[platforms]]
name = "square"
width = 720
height = 720
fps = 24

[render]
intro_seconds = 1.5
particle_count = 10

[render.intro]
gradient = "horizontal"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Project != "Test Cast" {
		t.Errorf("Project = %q, want %q", cfg.Project, "Test Cast")
	}
	if len(cfg.Platforms) != 1 || cfg.Platforms[0].Name != "square" || cfg.Platforms[0].FPS != 24 {
		t.Errorf("Platforms = %+v, want single 720x720@24 square", cfg.Platforms)
	}
	if cfg.Render.IntroSeconds != 1.5 {
		t.Errorf("IntroSeconds = %g, want 1.5", cfg.Render.IntroSeconds)
	}
	if cfg.Render.ParticleCount != 10 {
		t.Errorf("ParticleCount = %d, want 10", cfg.Render.ParticleCount)
	}
	if cfg.Render.Intro.Gradient != "horizontal" {
		t.Errorf("Intro.Gradient = %q, want horizontal", cfg.Render.Intro.Gradient)
	}
	// Unspecified fields keep their defaults.
	if cfg.Render.OutroSeconds != 3.0 {
		t.Errorf("OutroSeconds = %g, want default 3.0", cfg.Render.OutroSeconds)
	}
	if cfg.Summarize.MaxScriptChars != 900 {
		t.Errorf("MaxScriptChars = %d, want default 900", cfg.Summarize.MaxScriptChars)
	}
}

// TestLoad_SecretsFromEnvironment verifies API keys come from the
// environment and never from the file.
func TestLoad_SecretsFromEnvironment(t *testing.T) {
	t.Setenv("NEWS_API_KEY", "news-secret")
	t.Setenv("HF_API_KEY", "hf-secret")
	t.Setenv("TTS_API_KEY", "tts-secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.News.NewsAPIKey != "news-secret" {
		t.Errorf("NewsAPIKey = %q", cfg.News.NewsAPIKey)
	}
	if cfg.Summarize.APIKey != "hf-secret" {
		t.Errorf("Summarize.APIKey = %q", cfg.Summarize.APIKey)
	}
	if cfg.TTS.APIKey != "tts-secret" {
		t.Errorf("TTS.APIKey = %q", cfg.TTS.APIKey)
	}
}

// TestValidate_Rejections verifies each validation rule fires.
func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty project", func(c *Config) { c.Project = "" }},
		{"no platforms", func(c *Config) { c.Platforms = nil }},
		{"zero width", func(c *Config) { c.Platforms[0].Width = 0 }},
		{"zero fps", func(c *Config) { c.Platforms[0].FPS = 0 }},
		{"zero articles", func(c *Config) { c.News.MaxArticles = 0 }},
		{"zero script chars", func(c *Config) { c.Summarize.MaxScriptChars = 0 }},
		{"negative intro", func(c *Config) { c.Render.IntroSeconds = -1 }},
		{"negative particles", func(c *Config) { c.Render.ParticleCount = -1 }},
		{"zero fallback", func(c *Config) { c.Render.FallbackSeconds = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

// TestPaths verifies the derived artifact locations.
func TestPaths(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "d"
	cfg.OutputDir = "o"

	if got := cfg.NewsPath(); got != filepath.Join("d", "today_news.json") {
		t.Errorf("NewsPath = %q", got)
	}
	if got := cfg.ScriptPath(); got != filepath.Join("d", "video_script.txt") {
		t.Errorf("ScriptPath = %q", got)
	}
	if got := cfg.AudioPath(); got != filepath.Join("d", "narration.mp3") {
		t.Errorf("AudioPath = %q", got)
	}
	if got := cfg.VideoPath("youtube"); got != filepath.Join("o", "bytecast_youtube.mp4") {
		t.Errorf("VideoPath = %q", got)
	}
	if got := cfg.ManifestPath("2026-08-28"); got != filepath.Join("d", "asset_manifest_2026-08-28.json") {
		t.Errorf("ManifestPath = %q", got)
	}
}
