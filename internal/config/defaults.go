package config

const (
	defaultProject        = "AI Tech Bytes"
	defaultDataDir        = "data"
	defaultOutputDir      = "output"
	defaultMaxArticles    = 5
	defaultNewsAPIURL     = "https://newsapi.org/v2/everything"
	defaultMaxScriptChars = 900
	defaultHFEndpoint     = "https://api-inference.huggingface.co/models"
	defaultHFModel        = "sshleifer/distilbart-cnn-6-6"
	defaultTTSProvider    = "deepgram"
	defaultIntroSeconds   = 3.0
	defaultOutroSeconds   = 3.0
	defaultParticleCount  = 50
	defaultParticleSeed   = 1
	defaultFallbackSecs   = 30.0
	defaultTitleText      = "AI TECH BYTES"
	defaultOutroText      = "Like and subscribe for daily AI news!"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Project:   defaultProject,
		DataDir:   defaultDataDir,
		OutputDir: defaultOutputDir,
		Platforms: []Platform{
			{Name: "youtube_shorts", Width: 1080, Height: 1920, FPS: 30},
			{Name: "youtube", Width: 1920, Height: 1080, FPS: 30},
		},
		News: News{
			Feeds: []string{
				"https://news.ycombinator.com/rss",
				"https://www.reddit.com/r/MachineLearning/.rss",
				"https://www.reddit.com/r/artificial/.rss",
			},
			SearchTerms: []string{"AI", "machine learning", "artificial intelligence"},
			MaxArticles: defaultMaxArticles,
			NewsAPIURL:  defaultNewsAPIURL,
		},
		Summarize: Summarize{
			MaxScriptChars: defaultMaxScriptChars,
			Endpoint:       defaultHFEndpoint,
			Model:          defaultHFModel,
		},
		TTS: TTS{
			Provider: defaultTTSProvider,
		},
		Render: Render{
			IntroSeconds:    defaultIntroSeconds,
			OutroSeconds:    defaultOutroSeconds,
			ParticleCount:   defaultParticleCount,
			ParticleSeed:    defaultParticleSeed,
			TitleText:       defaultTitleText,
			OutroText:       defaultOutroText,
			FallbackSeconds: defaultFallbackSecs,
			Intro:           SceneStyle{Gradient: "radial", Shapes: "hexagons", TextEffect: "zoom"},
			Content:         SceneStyle{Gradient: "diagonal", Shapes: "rings", TextEffect: "slide"},
			Outro:           SceneStyle{Gradient: "vertical", Shapes: "web", TextEffect: "fade"},
		},
	}
}
