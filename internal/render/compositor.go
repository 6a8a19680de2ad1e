package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
)

// SceneStyle bundles the per-scene visual variant selection.
type SceneStyle struct {
	GradientColors []color.RGBA
	GradientDir    Direction
	Shapes         ShapeFamily
	TextEffect     TextEffect
	FontSize       float64
}

// LayerContext is the per-frame input to the compositor: where we are in the
// current segment, how loud the audio is, and what to show.
type LayerContext struct {
	Progress  float64
	Amplitude float64
	Bands     [3]float64
	Text      string
	Style     SceneStyle
}

// Compositor stacks the procedural layers into one finished frame:
// gradient background, then particles, then shapes, then text, each
// alpha-composited over the previous. Frame and layer buffers are reused
// across frames so memory stays flat regardless of video length.
type Compositor struct {
	width, height int
	fonts         *FontSource

	frame *image.RGBA
	layer *image.RGBA
	dc    *gg.Context

	tinted []color.RGBA
}

// NewCompositor creates a compositor for frames of the given size.
func NewCompositor(width, height int, fonts *FontSource) *Compositor {
	layer := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Compositor{
		width:  width,
		height: height,
		fonts:  fonts,
		frame:  image.NewRGBA(image.Rect(0, 0, width, height)),
		layer:  layer,
		dc:     gg.NewContextForRGBA(layer),
	}
}

// Render produces the frame for one instant. The returned image is owned by
// the compositor and only valid until the next Render call; callers must
// hand it off (encode it) before rendering the next frame.
func (c *Compositor) Render(ctx LayerContext, field *ParticleField) *image.RGBA {
	// Background layer, tinted by the current spectral balance.
	stops := c.tintStops(ctx.Style.GradientColors, ctx.Bands)
	DrawGradient(c.frame, stops, ctx.Style.GradientDir, ctx.Progress)

	bounds := c.frame.Bounds()

	if field != nil {
		c.clearLayer()
		field.Draw(c.dc)
		draw.Draw(c.frame, bounds, c.layer, image.Point{}, draw.Over)
	}

	c.clearLayer()
	DrawShapes(c.dc, c.width, c.height, ctx.Progress, ctx.Amplitude, ctx.Style.Shapes)
	draw.Draw(c.frame, bounds, c.layer, image.Point{}, draw.Over)

	if ctx.Text != "" {
		c.clearLayer()
		DrawText(c.dc, c.fonts, ctx.Text, ctx.Style.FontSize, ctx.Progress, ctx.Amplitude, ctx.Style.TextEffect)
		draw.Draw(c.frame, bounds, c.layer, image.Point{}, draw.Over)
	}

	return c.frame
}

// Size returns the output frame dimensions.
func (c *Compositor) Size() (int, int) { return c.width, c.height }

// tintStops brightens gradient stops according to band energy: low lifts
// red, mid lifts green, high lifts blue.
func (c *Compositor) tintStops(stops []color.RGBA, bands [3]float64) []color.RGBA {
	if cap(c.tinted) < len(stops) {
		c.tinted = make([]color.RGBA, len(stops))
	}
	c.tinted = c.tinted[:len(stops)]

	for i, s := range stops {
		c.tinted[i] = color.RGBA{
			R: lift(s.R, bands[0]),
			G: lift(s.G, bands[1]),
			B: lift(s.B, bands[2]),
			A: 255,
		}
	}
	return c.tinted
}

// lift raises a channel toward 255 by up to 25% of the remaining headroom.
func lift(v uint8, energy float64) uint8 {
	headroom := float64(255 - v)
	return v + uint8(headroom*0.25*energy)
}

// clearLayer resets the scratch layer to fully transparent.
func (c *Compositor) clearLayer() {
	pix := c.layer.Pix
	for i := range pix {
		pix[i] = 0
	}
}
