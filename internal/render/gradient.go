package render

import (
	"image"
	"image/color"
	"math"
)

// Direction selects the axis along which a gradient is interpolated.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
	Diagonal
	Radial
)

// ParseDirection maps a config string onto a Direction, defaulting to
// vertical for unknown values.
func ParseDirection(s string) Direction {
	switch s {
	case "horizontal":
		return Horizontal
	case "diagonal":
		return Diagonal
	case "radial":
		return Radial
	default:
		return Vertical
	}
}

// Gradient scroll distance in pixels over a full segment of progress.
const gradientScroll = 100

// DrawGradient fills dst with a multi-stop gradient animated by progress.
// The interpolation offset scrolls with progress and wraps modulo the
// dimension relevant to the direction, so the background visibly moves from
// frame to frame.
func DrawGradient(dst *image.RGBA, colors []color.RGBA, dir Direction, progress float64) {
	if len(colors) == 0 {
		return
	}
	if len(colors) == 1 {
		fillUniform(dst, colors[0])
		return
	}

	b := dst.Bounds()
	width, height := b.Dx(), b.Dy()
	shift := int(progress * gradientScroll)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var ratio float64
			switch dir {
			case Vertical:
				ratio = float64((y+shift)%height) / float64(height)
			case Horizontal:
				ratio = float64((x+shift)%width) / float64(width)
			case Diagonal:
				ratio = float64((x+y+shift)%(width+height)) / float64(width+height)
			case Radial:
				dx := float64(x) - float64(width)/2
				dy := float64(y) - float64(height)/2
				half := float64(width) / 2
				ratio = math.Mod(math.Sqrt(dx*dx+dy*dy)+float64(shift), half) / half
			}

			r, g, bl := interpolateStops(colors, ratio)
			offset := y*dst.Stride + x*4
			dst.Pix[offset] = r
			dst.Pix[offset+1] = g
			dst.Pix[offset+2] = bl
			dst.Pix[offset+3] = 255
		}
	}
}

// interpolateStops linearly interpolates between adjacent color stops for a
// position ratio in [0, 1).
func interpolateStops(colors []color.RGBA, ratio float64) (uint8, uint8, uint8) {
	if ratio < 0 {
		ratio = 0
	}
	pos := ratio * float64(len(colors)-1)
	idx := int(pos)
	if idx >= len(colors)-1 {
		c := colors[len(colors)-1]
		return c.R, c.G, c.B
	}

	frac := pos - float64(idx)
	c1, c2 := colors[idx], colors[idx+1]
	r := uint8(float64(c1.R) + (float64(c2.R)-float64(c1.R))*frac)
	g := uint8(float64(c1.G) + (float64(c2.G)-float64(c1.G))*frac)
	b := uint8(float64(c1.B) + (float64(c2.B)-float64(c1.B))*frac)
	return r, g, b
}

func fillUniform(dst *image.RGBA, c color.RGBA) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		offset := (y - b.Min.Y) * dst.Stride
		for x := 0; x < b.Dx(); x++ {
			o := offset + x*4
			dst.Pix[o] = c.R
			dst.Pix[o+1] = c.G
			dst.Pix[o+2] = c.B
			dst.Pix[o+3] = 255
		}
	}
}
