package render

import (
	"math"

	"github.com/fogleman/gg"
)

// TextEffect selects the entrance/emphasis animation for a text label.
type TextEffect int

const (
	Slide TextEffect = iota
	Zoom
	Wave
	Fade
	Pulse
)

// ParseTextEffect maps a config string onto a TextEffect, defaulting to
// slide for unknown values.
func ParseTextEffect(s string) TextEffect {
	switch s {
	case "zoom":
		return Zoom
	case "wave":
		return Wave
	case "fade":
		return Fade
	case "pulse":
		return Pulse
	default:
		return Slide
	}
}

// Wave effect tuning: vertical amplitude in pixels and per-character phase
// step in radians.
const (
	waveDepth     = 10.0
	wavePhaseStep = 0.5
)

// DrawText renders an animated text label onto the context. The output is a
// pure function of (text, progress, amplitude, effect, size): identical
// inputs produce pixel-identical layers, which re-renders and tests rely on.
func DrawText(dc *gg.Context, fonts *FontSource, text string, size float64, progress, amplitude float64, effect TextEffect) {
	if text == "" {
		return
	}

	width := float64(dc.Width())
	height := float64(dc.Height())

	switch effect {
	case Zoom:
		scaled := size * (0.1 + 0.9*progress)
		dc.SetFontFace(fonts.Face(scaled))
		drawGlowCentered(dc, text, width/2, height/2)

	case Wave:
		dc.SetFontFace(fonts.Face(size))
		drawWave(dc, text, width, height, progress)

	case Fade:
		dc.SetFontFace(fonts.Face(size))
		alpha := int(255 * progress)
		dc.SetRGBA255(255, 255, 255, alpha)
		dc.DrawStringAnchored(text, width/2, height/2, 0.5, 0.5)

	case Pulse:
		scaled := size * (0.7 + 0.6*amplitude)
		dc.SetFontFace(fonts.Face(scaled))
		drawGlowCentered(dc, text, width/2, height/2)

	default: // Slide
		dc.SetFontFace(fonts.Face(size))
		textWidth, textHeight := dc.MeasureString(text)
		x := -textWidth + (width+textWidth)*progress
		y := (height + textHeight/2) / 2
		drawGlow(dc, text, x, y)
	}
}

// drawGlow draws the blue four-offset glow behind white text at a baseline
// position.
func drawGlow(dc *gg.Context, text string, x, y float64) {
	for _, off := range [][2]float64{{2, 2}, {-2, -2}, {2, -2}, {-2, 2}} {
		dc.SetRGBA255(0, 100, 255, 100)
		dc.DrawString(text, x+off[0], y+off[1])
	}
	dc.SetRGBA255(255, 255, 255, 255)
	dc.DrawString(text, x, y)
}

// drawGlowCentered is drawGlow anchored at the canvas center.
func drawGlowCentered(dc *gg.Context, text string, cx, cy float64) {
	for _, off := range [][2]float64{{2, 2}, {-2, -2}, {2, -2}, {-2, 2}} {
		dc.SetRGBA255(0, 100, 255, 100)
		dc.DrawStringAnchored(text, cx+off[0], cy+off[1], 0.5, 0.5)
	}
	dc.SetRGBA255(255, 255, 255, 255)
	dc.DrawStringAnchored(text, cx, cy, 0.5, 0.5)
}

// drawWave draws the text character by character with a sinusoidal vertical
// offset indexed by character position.
func drawWave(dc *gg.Context, text string, width, height, progress float64) {
	textWidth, textHeight := dc.MeasureString(text)
	x := (width - textWidth) / 2
	y := (height + textHeight/2) / 2

	dc.SetRGBA255(255, 255, 255, 255)
	for i, ch := range text {
		s := string(ch)
		charY := y + waveDepth*math.Sin(progress*2*math.Pi+float64(i)*wavePhaseStep)
		dc.DrawString(s, x, charY)
		charWidth, _ := dc.MeasureString(s)
		x += charWidth
	}
}
