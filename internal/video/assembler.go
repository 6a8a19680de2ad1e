package video

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/bytecast/bytecast/internal/audio"
	"github.com/bytecast/bytecast/internal/config"
	"github.com/bytecast/bytecast/internal/render"
	"github.com/bytecast/bytecast/internal/timeline"
)

// Per-scene gradient palettes, dark tech blues after the project's original
// look.
var (
	introPalette = []color.RGBA{
		{R: 10, G: 10, B: 30}, {R: 30, G: 30, B: 60},
		{R: 20, G: 40, B: 80}, {R: 10, G: 10, B: 30},
	}
	contentPalette = []color.RGBA{
		{R: 15, G: 15, B: 40}, {R: 40, G: 20, B: 80},
		{R: 20, G: 50, B: 100}, {R: 15, G: 15, B: 40},
	}
	outroPalette = []color.RGBA{
		{R: 5, G: 5, B: 25}, {R: 25, G: 25, B: 70},
		{R: 10, G: 30, B: 60},
	}
)

// Font sizes per scene kind.
const (
	introFontSize   = 90
	contentFontSize = 70
	outroFontSize   = 50
)

// ProgressFunc receives frame-level progress during a render.
type ProgressFunc func(frame, totalFrames int)

// Assembler renders a complete video for a platform: it plans the scene
// timeline, walks every frame in order through the compositor and streams
// the result to the encoder with the narration track attached.
type Assembler struct {
	cfg *config.Config
	log *slog.Logger
}

// NewAssembler creates an assembler using the run configuration.
func NewAssembler(cfg *config.Config, log *slog.Logger) *Assembler {
	return &Assembler{cfg: cfg, log: log}
}

// Render produces one video file. sig may be nil when no narration audio is
// available; the render then uses a silent amplitude series over the
// configured fallback duration and writes a video without an audio track.
func (a *Assembler) Render(ctx context.Context, platform config.Platform, sig *audio.Signal, audioPath string, labels []string, outputPath string, progress ProgressFunc) error {
	duration := sig.Duration()
	if duration <= 0 {
		duration = a.cfg.Render.FallbackSeconds
		audioPath = ""
		a.log.Warn("no narration audio, rendering silent video",
			"fallback_seconds", duration)
	}

	plan, err := timeline.New(duration, platform.FPS, labels,
		a.cfg.Render.IntroSeconds, a.cfg.Render.OutroSeconds)
	if err != nil {
		return fmt.Errorf("planning timeline: %w", err)
	}

	env := audio.Analyze(sig, plan.TotalFrames)

	fonts := render.LoadFontSource(a.cfg.Render.FontPath)
	comp := render.NewCompositor(platform.Width, platform.Height, fonts)
	field := render.NewParticleField(platform.Width, platform.Height,
		a.cfg.Render.ParticleCount, a.cfg.Render.ParticleSeed)

	enc := NewEncoder(EncoderConfig{
		OutputPath: outputPath,
		Width:      platform.Width,
		Height:     platform.Height,
		FPS:        platform.FPS,
		AudioPath:  audioPath,
	})
	if err := enc.Start(ctx); err != nil {
		return err
	}

	a.log.Info("rendering video",
		"platform", platform.Name,
		"resolution", fmt.Sprintf("%dx%d", platform.Width, platform.Height),
		"fps", platform.FPS,
		"frames", plan.TotalFrames,
		"segments", len(plan.Segments))

	for f := 0; f < plan.TotalFrames; f++ {
		if err := ctx.Err(); err != nil {
			enc.Close()
			return err
		}

		seg, prog := plan.Locate(f)
		amp := env.Amplitude[f]

		field.Update(amp)
		frame := comp.Render(render.LayerContext{
			Progress:  prog,
			Amplitude: amp,
			Bands:     env.Bands[f],
			Text:      a.textFor(seg),
			Style:     a.styleFor(seg.Kind),
		}, field)

		if err := enc.WriteFrame(frame); err != nil {
			enc.Close()
			return fmt.Errorf("encoding frame %d: %w", f, err)
		}

		if progress != nil {
			progress(f+1, plan.TotalFrames)
		}
	}

	if err := enc.Close(); err != nil {
		return err
	}

	a.log.Info("video complete", "output", outputPath, "frames", enc.FramesWritten())
	return nil
}

// textFor resolves the label shown during a segment.
func (a *Assembler) textFor(seg timeline.Segment) string {
	switch seg.Kind {
	case timeline.Intro:
		return a.cfg.Render.TitleText
	case timeline.Outro:
		return a.cfg.Render.OutroText
	default:
		return seg.Label
	}
}

// styleFor builds the render style for a scene kind from configuration.
func (a *Assembler) styleFor(kind timeline.Kind) render.SceneStyle {
	var sel config.SceneStyle
	var palette []color.RGBA
	var fontSize float64

	switch kind {
	case timeline.Intro:
		sel = a.cfg.Render.Intro
		palette = introPalette
		fontSize = introFontSize
	case timeline.Outro:
		sel = a.cfg.Render.Outro
		palette = outroPalette
		fontSize = outroFontSize
	default:
		sel = a.cfg.Render.Content
		palette = contentPalette
		fontSize = contentFontSize
	}

	return render.SceneStyle{
		GradientColors: palette,
		GradientDir:    render.ParseDirection(sel.Gradient),
		Shapes:         render.ParseShapeFamily(sel.Shapes),
		TextEffect:     render.ParseTextEffect(sel.TextEffect),
		FontSize:       fontSize,
	}
}
