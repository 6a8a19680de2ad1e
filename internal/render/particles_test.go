package render

import (
	"math"
	"testing"
)

// TestNewParticleField_Deterministic verifies that two fields built with the
// same seed are identical, so a render can be reproduced exactly.
func TestNewParticleField_Deterministic(t *testing.T) {
	a := NewParticleField(1080, 1920, 50, 7)
	b := NewParticleField(1080, 1920, 50, 7)

	pa, pb := a.Particles(), b.Particles()
	if len(pa) != 50 || len(pb) != 50 {
		t.Fatalf("particle counts = %d/%d, want 50/50", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("particle %d differs between equally seeded fields", i)
		}
	}

	c := NewParticleField(1080, 1920, 50, 8)
	same := true
	for i, p := range c.Particles() {
		if p != pa[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical fields")
	}
}

// TestNewParticleField_InitialRanges verifies the documented spawn ranges for
// position, velocity, size, and color.
func TestNewParticleField_InitialRanges(t *testing.T) {
	field := NewParticleField(640, 480, 200, 42)

	for i, p := range field.Particles() {
		if p.X < 0 || p.X >= 640 || p.Y < 0 || p.Y >= 480 {
			t.Errorf("particle %d spawned off canvas at (%g, %g)", i, p.X, p.Y)
		}
		if p.VX < -2 || p.VX > 2 || p.VY < -2 || p.VY > 2 {
			t.Errorf("particle %d velocity (%g, %g) outside [-2, 2]", i, p.VX, p.VY)
		}
		if p.Size < 2 || p.Size > 8 {
			t.Errorf("particle %d size %g outside [2, 8]", i, p.Size)
		}
		if p.Color.B != 255 {
			t.Errorf("particle %d blue channel = %d, want 255", i, p.Color.B)
		}
		if p.Color.R < 100 || p.Color.G < 100 || p.Color.A < 100 {
			t.Errorf("particle %d color %v below spawn minimums", i, p.Color)
		}
	}
}

// TestParticleField_UpdateStaysOnCanvas verifies toroidal wrapping: after
// many high-amplitude updates every particle is still inside the canvas.
func TestParticleField_UpdateStaysOnCanvas(t *testing.T) {
	field := NewParticleField(100, 80, 64, 3)

	for step := 0; step < 500; step++ {
		field.Update(1.0)
	}

	for i, p := range field.Particles() {
		if p.X < 0 || p.X >= 100 || p.Y < 0 || p.Y >= 80 {
			t.Errorf("particle %d escaped canvas: (%g, %g)", i, p.X, p.Y)
		}
	}
}

// TestParticleField_AmplitudeBoost verifies that amplitude 1 moves a particle
// 2.5x as far as amplitude 0 in a single step.
func TestParticleField_AmplitudeBoost(t *testing.T) {
	slow := NewParticleField(10000, 10000, 1, 9)
	fast := NewParticleField(10000, 10000, 1, 9)

	start := slow.Particles()[0]
	slow.Update(0)
	fast.Update(1)

	slowDX := slow.Particles()[0].X - start.X
	fastDX := fast.Particles()[0].X - start.X

	if math.Abs(fastDX-2.5*slowDX) > 1e-9 {
		t.Errorf("amplitude boost: slow dx %g, fast dx %g, want 2.5x ratio", slowDX, fastDX)
	}
}

// TestWrap verifies the toroidal mapping including negative coordinates.
func TestWrap(t *testing.T) {
	cases := []struct {
		v, limit, want float64
	}{
		{5, 10, 5},
		{15, 10, 5},
		{-3, 10, 7},
		{10, 10, 0},
		{-10, 10, 0},
		{0, 10, 0},
		{3, 0, 0},
	}

	for _, tc := range cases {
		if got := wrap(tc.v, tc.limit); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("wrap(%g, %g) = %g, want %g", tc.v, tc.limit, got, tc.want)
		}
	}
}
