package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Platform describes one delivery target for rendered video.
type Platform struct {
	Name   string `toml:"name"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	FPS    int    `toml:"fps"`
}

// News contains configuration for the article fetch stage.
type News struct {
	Feeds       []string `toml:"feeds"`
	SearchTerms []string `toml:"search_terms"`
	MaxArticles int      `toml:"max_articles"`
	NewsAPIURL  string   `toml:"newsapi_url"`
	// NewsAPIKey comes from the NEWS_API_KEY environment variable,
	// never from the config file.
	NewsAPIKey string `toml:"-"`
}

// Summarize contains configuration for script generation.
type Summarize struct {
	MaxScriptChars int    `toml:"max_script_chars"`
	Endpoint       string `toml:"endpoint"`
	Model          string `toml:"model"`
	// APIKey comes from the HF_API_KEY environment variable.
	APIKey string `toml:"-"`
}

// TTS contains configuration for speech synthesis.
type TTS struct {
	Provider string `toml:"provider"`
	Voice    string `toml:"voice"`
	// APIKey comes from the TTS_API_KEY environment variable.
	APIKey string `toml:"-"`
}

// SceneStyle selects the visual variants used for one scene kind.
type SceneStyle struct {
	Gradient   string `toml:"gradient"`
	Shapes     string `toml:"shapes"`
	TextEffect string `toml:"text_effect"`
}

// Render contains configuration for the animated video renderer.
type Render struct {
	IntroSeconds    float64    `toml:"intro_seconds"`
	OutroSeconds    float64    `toml:"outro_seconds"`
	ParticleCount   int        `toml:"particle_count"`
	ParticleSeed    int64      `toml:"particle_seed"`
	FontPath        string     `toml:"font_path"`
	TitleText       string     `toml:"title_text"`
	OutroText       string     `toml:"outro_text"`
	FallbackSeconds float64    `toml:"fallback_seconds"`
	Intro           SceneStyle `toml:"intro"`
	Content         SceneStyle `toml:"content"`
	Outro           SceneStyle `toml:"outro"`
}

// Config is the root configuration for a pipeline run.
type Config struct {
	Project   string     `toml:"project"`
	DataDir   string     `toml:"data_dir"`
	OutputDir string     `toml:"output_dir"`
	Platforms []Platform `toml:"platforms"`
	News      News       `toml:"news"`
	Summarize Summarize  `toml:"summarize"`
	TTS       TTS        `toml:"tts"`
	Render    Render     `toml:"render"`
}

// Load reads configuration from path, falling back to defaults when the file
// does not exist. Secrets are always taken from the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// Defaults only.
		default:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg.News.NewsAPIKey = os.Getenv("NEWS_API_KEY")
	cfg.Summarize.APIKey = os.Getenv("HF_API_KEY")
	cfg.TTS.APIKey = os.Getenv("TTS_API_KEY")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Project == "" {
		return errors.New("project name must not be empty")
	}
	if len(c.Platforms) == 0 {
		return errors.New("at least one platform must be configured")
	}
	for _, p := range c.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("platform %q: invalid resolution %dx%d", p.Name, p.Width, p.Height)
		}
		if p.FPS <= 0 {
			return fmt.Errorf("platform %q: invalid frame rate %d", p.Name, p.FPS)
		}
	}
	if c.News.MaxArticles <= 0 {
		return errors.New("news.max_articles must be positive")
	}
	if c.Summarize.MaxScriptChars <= 0 {
		return errors.New("summarize.max_script_chars must be positive")
	}
	if c.Render.IntroSeconds < 0 || c.Render.OutroSeconds < 0 {
		return errors.New("render intro/outro durations must not be negative")
	}
	if c.Render.ParticleCount < 0 {
		return errors.New("render.particle_count must not be negative")
	}
	if c.Render.FallbackSeconds <= 0 {
		return errors.New("render.fallback_seconds must be positive")
	}
	return nil
}

// NewsPath returns the location of today's article file.
func (c *Config) NewsPath() string { return filepath.Join(c.DataDir, "today_news.json") }

// ScriptPath returns the location of the generated narration script.
func (c *Config) ScriptPath() string { return filepath.Join(c.DataDir, "video_script.txt") }

// AudioPath returns the location of the synthesized narration audio.
func (c *Config) AudioPath() string { return filepath.Join(c.DataDir, "narration.mp3") }

// VideoPath returns the output path for one platform's video.
func (c *Config) VideoPath(platform string) string {
	return filepath.Join(c.OutputDir, fmt.Sprintf("bytecast_%s.mp4", platform))
}

// ManifestPath returns the location of the run manifest for a date string.
func (c *Config) ManifestPath(date string) string {
	return filepath.Join(c.DataDir, fmt.Sprintf("asset_manifest_%s.json", date))
}
