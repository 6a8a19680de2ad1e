package render

import (
	"math"

	"github.com/fogleman/gg"
)

// ShapeFamily selects the geometric animation rendered mid-frame.
type ShapeFamily int

const (
	Hexagons ShapeFamily = iota
	Rings
	Web
)

// ParseShapeFamily maps a config string onto a ShapeFamily, defaulting to
// hexagons for unknown values.
func ParseShapeFamily(s string) ShapeFamily {
	switch s {
	case "rings":
		return Rings
	case "web":
		return Web
	default:
		return Hexagons
	}
}

// DrawShapes renders one geometric shape family centered on the canvas.
// Rotation and phase follow progress; size and pulse depth follow amplitude.
func DrawShapes(dc *gg.Context, width, height int, progress, amplitude float64, family ShapeFamily) {
	cx := float64(width) / 2
	cy := float64(height) / 2

	switch family {
	case Rings:
		drawRings(dc, cx, cy, progress, amplitude)
	case Web:
		drawWeb(dc, cx, cy, progress, amplitude)
	default:
		drawHexagons(dc, cx, cy, progress, amplitude)
	}
}

// drawHexagons draws three nested rotating hexagon outlines.
func drawHexagons(dc *gg.Context, cx, cy, progress, amplitude float64) {
	grow := 1 + 0.3*amplitude
	dc.SetLineWidth(3)

	for i := 0; i < 3; i++ {
		radius := (100 + float64(i)*60) * grow
		angleOffset := progress*360 + float64(i)*20

		dc.NewSubPath()
		for j := 0; j < 6; j++ {
			angle := gg.Radians(angleOffset + float64(j)*60)
			x := cx + radius*math.Cos(angle)
			y := cy + radius*math.Sin(angle)
			if j == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		dc.SetRGBA255(0, 150+i*30, 255, 255)
		dc.Stroke()
	}
}

// drawRings draws five pulsing concentric circles; pulse depth scales with
// amplitude so the rings breathe with the narration.
func drawRings(dc *gg.Context, cx, cy, progress, amplitude float64) {
	pulseDepth := 10 + 30*amplitude
	dc.SetLineWidth(2)

	for i := 0; i < 5; i++ {
		base := 50 + float64(i)*40
		pulse := pulseDepth * math.Sin(progress*2*math.Pi-float64(i)*0.3)
		radius := base + pulse
		if radius < 1 {
			radius = 1
		}

		alpha := 255 - i*40
		dc.SetRGBA255(100, 200, 255, alpha)
		dc.DrawCircle(cx, cy, radius)
		dc.Stroke()
	}
}

// drawWeb places points on an amplitude-scaled circle and connects every
// pair with a line.
func drawWeb(dc *gg.Context, cx, cy, progress, amplitude float64) {
	const numPoints = 8
	radius := 150 * (1 + 0.4*amplitude)

	points := make([][2]float64, numPoints)
	for i := range points {
		angle := gg.Radians(float64(i)*360/numPoints + progress*180)
		points[i] = [2]float64{
			cx + radius*math.Cos(angle),
			cy + radius*math.Sin(angle),
		}
	}

	dc.SetLineWidth(1)
	dc.SetRGBA255(0, 150, 255, 255)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			dc.DrawLine(points[i][0], points[i][1], points[j][0], points[j][1])
			dc.Stroke()
		}
	}
}
