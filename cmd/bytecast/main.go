package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/bytecast/bytecast/internal/audio"
	"github.com/bytecast/bytecast/internal/cli"
	"github.com/bytecast/bytecast/internal/config"
	"github.com/bytecast/bytecast/internal/manifest"
	"github.com/bytecast/bytecast/internal/news"
	"github.com/bytecast/bytecast/internal/summarize"
	"github.com/bytecast/bytecast/internal/tts"
	"github.com/bytecast/bytecast/internal/ui"
	"github.com/bytecast/bytecast/internal/video"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

const totalStages = 5

var CLI struct {
	Config    string `help:"Path to TOML config file" default:"bytecast.toml"`
	SkipNews  bool   `help:"Reuse today's saved articles instead of fetching"`
	SkipAudio bool   `help:"Reuse existing narration audio instead of synthesizing"`
	SkipVideo bool   `help:"Stop after audio generation; render no video"`
	NoUI      bool   `help:"Disable the interactive progress display"`
	Verbose   bool   `help:"Enable debug logging"`
	Version   bool   `help:"Show version information"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("bytecast"),
		kong.Description("Fetch the day's AI news and spin it into narrated, audio-reactive shorts."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)
	_ = kctx

	if CLI.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Secrets live in the environment; a local .env is optional.
	_ = godotenv.Load()

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		cli.PrintError(fmt.Sprintf("loading config: %v", err))
		os.Exit(1)
	}

	level := slog.LevelInfo
	if CLI.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := pipeline{cfg: cfg, log: log}

	if CLI.NoUI {
		cli.PrintBanner()
		if err := p.run(ctx, nil); err != nil {
			cli.PrintError(err.Error())
			os.Exit(1)
		}
		cli.PrintSuccess("Pipeline complete")
		return
	}

	model := ui.NewModel()
	prog := tea.NewProgram(model)

	var runErr error
	go func() {
		runErr = p.run(ctx, prog.Send)
		if runErr != nil {
			prog.Quit()
			return
		}
		prog.Send(ui.PipelineComplete{})
	}()

	if _, err := prog.Run(); err != nil {
		cli.PrintError(fmt.Sprintf("running UI: %v", err))
		os.Exit(1)
	}
	if runErr != nil {
		cli.PrintError(runErr.Error())
		os.Exit(1)
	}
}

// pipeline runs the five stages in order: fetch, script, speech, render,
// manifest. A nil send means the interactive UI is disabled and plain
// console output is used instead.
type pipeline struct {
	cfg *config.Config
	log *slog.Logger
}

func (p *pipeline) run(ctx context.Context, send func(tea.Msg)) error {
	man := manifest.New(p.cfg.Project)

	articles, err := p.fetchStage(ctx, send, man)
	if err != nil {
		return err
	}

	script, err := p.scriptStage(ctx, send, man, articles)
	if err != nil {
		return err
	}

	audioPath, err := p.speechStage(ctx, send, man, script)
	if err != nil {
		return err
	}

	if err := p.renderStage(ctx, send, man, articles, audioPath); err != nil {
		return err
	}

	return p.manifestStage(send, man)
}

func (p *pipeline) stageStart(send func(tea.Msg), number int, name string) {
	p.log.Info("stage starting", "number", number, "name", name)
	if send != nil {
		send(ui.StageStarted{Name: name, Number: number, Total: totalStages})
	} else {
		cli.PrintStep(number, name)
	}
}

func (p *pipeline) stageDone(send func(tea.Msg), man *manifest.Manifest, name, detail string, skipped bool) {
	status := manifest.StatusDone
	if skipped {
		status = manifest.StatusSkipped
	}
	man.AddStep(name, status, detail)

	if send != nil {
		send(ui.StageDone{Name: name, Skipped: skipped, Detail: detail})
		return
	}
	if skipped {
		cli.PrintSkipped(fmt.Sprintf("%s: %s", name, detail))
	} else if detail != "" {
		cli.PrintSuccess(fmt.Sprintf("%s: %s", name, detail))
	} else {
		cli.PrintSuccess(name)
	}
}

func (p *pipeline) fetchStage(ctx context.Context, send func(tea.Msg), man *manifest.Manifest) ([]news.Item, error) {
	const name = "Fetch news"
	p.stageStart(send, 1, name)

	if CLI.SkipNews {
		articles, err := news.Load(p.cfg.NewsPath())
		if err == nil && len(articles) > 0 {
			p.stageDone(send, man, name, fmt.Sprintf("%d articles from %s", len(articles), p.cfg.NewsPath()), true)
			return articles, nil
		}
		p.log.Warn("no saved articles to reuse, fetching", "error", err)
	}

	fetcher := news.NewFetcher(p.cfg.News, p.log)
	articles := fetcher.Fetch(ctx)
	if err := news.Save(articles, p.cfg.NewsPath()); err != nil {
		return nil, fmt.Errorf("saving articles: %w", err)
	}
	if err := man.AddAsset(p.cfg.NewsPath(), "news"); err != nil {
		p.log.Warn("recording news asset", "error", err)
	}

	p.stageDone(send, man, name, fmt.Sprintf("%d articles", len(articles)), false)
	return articles, nil
}

func (p *pipeline) scriptStage(ctx context.Context, send func(tea.Msg), man *manifest.Manifest, articles []news.Item) (string, error) {
	const name = "Write script"
	p.stageStart(send, 2, name)

	condensed := summarize.NewClient(p.cfg.Summarize, p.log).Condense(ctx, articles)
	script := summarize.BuildScript(condensed, p.cfg.Summarize.MaxScriptChars)
	if err := summarize.SaveScript(script, p.cfg.ScriptPath()); err != nil {
		return "", fmt.Errorf("saving script: %w", err)
	}
	if err := man.AddAsset(p.cfg.ScriptPath(), "script"); err != nil {
		p.log.Warn("recording script asset", "error", err)
	}

	p.stageDone(send, man, name, fmt.Sprintf("%d chars", len(script)), false)
	return script, nil
}

func (p *pipeline) speechStage(ctx context.Context, send func(tea.Msg), man *manifest.Manifest, script string) (string, error) {
	const name = "Synthesize speech"
	p.stageStart(send, 3, name)

	audioPath := p.cfg.AudioPath()

	if CLI.SkipAudio {
		if _, err := os.Stat(audioPath); err == nil {
			p.stageDone(send, man, name, "reusing "+audioPath, true)
			return audioPath, nil
		}
		p.log.Warn("no existing narration to reuse, synthesizing")
	}

	provider, err := tts.NewProvider(p.cfg.TTS)
	if err != nil {
		return "", err
	}
	if err := tts.Generate(ctx, provider, script, audioPath); err != nil {
		// Narration failure degrades to a silent video rather than
		// aborting the run.
		p.log.Warn("speech synthesis failed, video will be silent", "error", err)
		p.stageDone(send, man, name, "failed, continuing without narration", true)
		return "", nil
	}
	if err := man.AddAsset(audioPath, "audio"); err != nil {
		p.log.Warn("recording audio asset", "error", err)
	}

	p.stageDone(send, man, name, audioPath, false)
	return audioPath, nil
}

func (p *pipeline) renderStage(ctx context.Context, send func(tea.Msg), man *manifest.Manifest, articles []news.Item, audioPath string) error {
	const name = "Render video"
	p.stageStart(send, 4, name)

	if CLI.SkipVideo {
		p.stageDone(send, man, name, "skipped by flag", true)
		return nil
	}

	var sig *audio.Signal
	if audioPath != "" {
		var err error
		sig, err = audio.Load(audioPath)
		if err != nil {
			p.log.Warn("decoding narration failed, using fallback duration", "error", err)
			sig = nil
		}
	}

	assembler := video.NewAssembler(p.cfg, p.log)
	labels := news.Titles(articles)

	for _, platform := range p.cfg.Platforms {
		if err := ctx.Err(); err != nil {
			return err
		}

		outputPath := p.cfg.VideoPath(platform.Name)
		started := time.Now()

		var frames int
		progress := func(frame, total int) {
			frames = total
			if send != nil && frame%3 == 0 {
				send(ui.RenderProgress{
					Platform:    platform.Name,
					Frame:       frame,
					TotalFrames: total,
					Elapsed:     time.Since(started),
				})
			}
		}

		if err := assembler.Render(ctx, platform, sig, audioPath, labels, outputPath, progress); err != nil {
			return fmt.Errorf("rendering %s: %w", platform.Name, err)
		}
		if err := man.AddAsset(outputPath, "video"); err != nil {
			p.log.Warn("recording video asset", "error", err)
		}

		if send != nil {
			send(ui.RenderComplete{
				Platform:    platform.Name,
				OutputFile:  outputPath,
				TotalFrames: frames,
				Duration:    time.Since(started),
			})
		} else {
			cli.PrintSuccess(fmt.Sprintf("%s: %s", platform.Name, outputPath))
		}
	}

	p.stageDone(send, man, name, fmt.Sprintf("%d platforms", len(p.cfg.Platforms)), false)
	return nil
}

func (p *pipeline) manifestStage(send func(tea.Msg), man *manifest.Manifest) error {
	const name = "Save manifest"
	p.stageStart(send, 5, name)

	path := p.cfg.ManifestPath(time.Now().Format("2006-01-02"))
	if err := man.Save(path); err != nil {
		return fmt.Errorf("saving manifest: %w", err)
	}

	p.stageDone(send, man, name, path, false)
	return nil
}
