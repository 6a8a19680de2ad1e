package render

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/fogleman/gg"
)

// Audio-reactive speed boost: particle velocity is scaled by
// (1 + particleBoost*amplitude) each update.
const particleBoost = 1.5

// Particle is one point in the animated field.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  color.RGBA
}

// ParticleField is a fixed set of drifting particles. Unlike the other layer
// renderers it is stateful: positions persist across frames within one render
// pass. A field is exclusively owned by that pass and must not be shared.
type ParticleField struct {
	width, height float64
	particles     []Particle
}

// NewParticleField creates a field of count particles with seeded random
// positions, velocities, sizes and colors, so a render is reproducible for a
// given seed.
func NewParticleField(width, height, count int, seed int64) *ParticleField {
	rng := rand.New(rand.NewSource(seed))

	particles := make([]Particle, count)
	for i := range particles {
		particles[i] = Particle{
			X:    rng.Float64() * float64(width),
			Y:    rng.Float64() * float64(height),
			VX:   rng.Float64()*4 - 2,
			VY:   rng.Float64()*4 - 2,
			Size: 2 + rng.Float64()*6,
			Color: color.RGBA{
				R: uint8(100 + rng.Intn(156)),
				G: uint8(100 + rng.Intn(156)),
				B: 255,
				A: uint8(100 + rng.Intn(156)),
			},
		}
	}

	return &ParticleField{
		width:     float64(width),
		height:    float64(height),
		particles: particles,
	}
}

// Update advances every particle by one frame. Velocity scales with the
// current amplitude, and particles leaving the canvas re-enter on the
// opposite side at the mirrored coordinate.
func (f *ParticleField) Update(amplitude float64) {
	speed := 1 + particleBoost*amplitude
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX * speed
		p.Y += p.VY * speed

		p.X = wrap(p.X, f.width)
		p.Y = wrap(p.Y, f.height)
	}
}

// Draw renders all particles as filled circles onto the context.
func (f *ParticleField) Draw(dc *gg.Context) {
	for i := range f.particles {
		p := &f.particles[i]
		dc.SetRGBA255(int(p.Color.R), int(p.Color.G), int(p.Color.B), int(p.Color.A))
		dc.DrawCircle(p.X, p.Y, p.Size)
		dc.Fill()
	}
}

// Particles exposes the field contents for inspection.
func (f *ParticleField) Particles() []Particle { return f.particles }

// wrap maps v onto [0, limit) toroidally.
func wrap(v, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	v = math.Mod(v, limit)
	if v < 0 {
		v += limit
	}
	return v
}
