package render

import (
	"bytes"
	"image/color"
	"testing"
)

func testStyle() SceneStyle {
	return SceneStyle{
		GradientColors: []color.RGBA{
			{R: 10, G: 10, B: 40, A: 255},
			{R: 30, G: 60, B: 120, A: 255},
		},
		GradientDir: Diagonal,
		Shapes:      Rings,
		TextEffect:  Fade,
		FontSize:    24,
	}
}

// TestCompositor_RenderDimensions verifies the output frame matches the
// configured size and is fully opaque.
func TestCompositor_RenderDimensions(t *testing.T) {
	comp := NewCompositor(160, 90, LoadFontSource(""))
	frame := comp.Render(LayerContext{
		Progress:  0.5,
		Amplitude: 0.5,
		Text:      "hello",
		Style:     testStyle(),
	}, nil)

	b := frame.Bounds()
	if b.Dx() != 160 || b.Dy() != 90 {
		t.Fatalf("frame size = %dx%d, want 160x90", b.Dx(), b.Dy())
	}
	for i := 3; i < len(frame.Pix); i += 4 {
		if frame.Pix[i] != 255 {
			t.Fatalf("pixel byte %d: alpha = %d, want opaque frame", i, frame.Pix[i])
		}
	}
}

// TestCompositor_BufferReuse verifies the documented ownership contract: the
// compositor returns the same backing frame on every Render call.
func TestCompositor_BufferReuse(t *testing.T) {
	comp := NewCompositor(64, 64, LoadFontSource(""))

	a := comp.Render(LayerContext{Progress: 0.1, Style: testStyle()}, nil)
	b := comp.Render(LayerContext{Progress: 0.9, Style: testStyle()}, nil)

	if &a.Pix[0] != &b.Pix[0] {
		t.Error("Render allocated a new frame; buffers should be reused")
	}
}

// TestCompositor_Deterministic verifies identical layer contexts produce
// pixel-identical frames, with and without a particle field.
func TestCompositor_Deterministic(t *testing.T) {
	render := func() []byte {
		comp := NewCompositor(120, 80, LoadFontSource(""))
		field := NewParticleField(120, 80, 20, 4)
		field.Update(0.5)
		frame := comp.Render(LayerContext{
			Progress:  0.3,
			Amplitude: 0.7,
			Bands:     [3]float64{0.2, 0.5, 0.8},
			Text:      "story",
			Style:     testStyle(),
		}, field)
		out := make([]byte, len(frame.Pix))
		copy(out, frame.Pix)
		return out
	}

	if !bytes.Equal(render(), render()) {
		t.Error("identical contexts produced different frames")
	}
}

// TestCompositor_LayersChangeOutput verifies each layer contributes pixels:
// adding particles or text changes the frame over background-plus-shapes.
func TestCompositor_LayersChangeOutput(t *testing.T) {
	base := func(text string, field *ParticleField) []byte {
		comp := NewCompositor(120, 80, LoadFontSource(""))
		frame := comp.Render(LayerContext{
			Progress:  0.4,
			Amplitude: 0.6,
			Text:      text,
			Style:     testStyle(),
		}, field)
		out := make([]byte, len(frame.Pix))
		copy(out, frame.Pix)
		return out
	}

	plain := base("", nil)

	withText := base("BYTECAST", nil)
	if bytes.Equal(plain, withText) {
		t.Error("text layer contributed no pixels")
	}

	withParticles := base("", NewParticleField(120, 80, 30, 11))
	if bytes.Equal(plain, withParticles) {
		t.Error("particle layer contributed no pixels")
	}
}

// TestTintStops verifies the spectral tint: band energy lifts the matching
// channel by 25% of its headroom and never overflows.
func TestTintStops(t *testing.T) {
	comp := NewCompositor(8, 8, LoadFontSource(""))
	stops := []color.RGBA{{R: 100, G: 200, B: 255, A: 255}}

	tinted := comp.tintStops(stops, [3]float64{1, 1, 1})
	// R: 100 + (155 * 0.25) = 138, G: 200 + (55 * 0.25) = 213, B stays 255.
	if tinted[0].R != 138 {
		t.Errorf("R = %d, want 138", tinted[0].R)
	}
	if tinted[0].G != 213 {
		t.Errorf("G = %d, want 213", tinted[0].G)
	}
	if tinted[0].B != 255 {
		t.Errorf("B = %d, want 255 (no headroom)", tinted[0].B)
	}

	untouched := comp.tintStops(stops, [3]float64{})
	if untouched[0] != (color.RGBA{R: 100, G: 200, B: 255, A: 255}) {
		t.Errorf("zero bands altered stop: %v", untouched[0])
	}
}
