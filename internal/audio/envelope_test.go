package audio

import (
	"math"
	"testing"
)

// makeSine generates amplitude-modulated test audio: a carrier tone whose
// loudness ramps linearly from silence to full scale.
func makeRampedSine(sampleRate int, seconds float64) []float64 {
	n := int(float64(sampleRate) * seconds)
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		gain := float64(i) / float64(n)
		samples[i] = gain * math.Sin(2*math.Pi*440*t)
	}
	return samples
}

// TestExtractEnvelope_LengthAndRange verifies the two core guarantees:
// exactly one value per requested frame, every value in [0, 1].
func TestExtractEnvelope_LengthAndRange(t *testing.T) {
	samples := makeRampedSine(44100, 2.0)

	for _, frameCount := range []int{1, 30, 60, 240, 1000} {
		env := ExtractEnvelope(samples, 44100, frameCount)
		if len(env) != frameCount {
			t.Errorf("frameCount %d: got %d values", frameCount, len(env))
		}
		for i, v := range env {
			if v < 0 || v > 1 {
				t.Fatalf("frameCount %d: env[%d] = %g out of [0,1]", frameCount, i, v)
			}
		}
	}
}

// TestExtractEnvelope_RampFollowsLoudness verifies that a signal ramping from
// silence to full scale produces an envelope that starts near 0, ends near 1,
// and trends upward.
func TestExtractEnvelope_RampFollowsLoudness(t *testing.T) {
	samples := makeRampedSine(44100, 4.0)
	env := ExtractEnvelope(samples, 44100, 120)

	if env[0] > 0.1 {
		t.Errorf("envelope start = %g, want near 0 for silent start", env[0])
	}
	last := env[len(env)-1]
	if last < 0.8 {
		t.Errorf("envelope end = %g, want near 1 for full-scale end", last)
	}

	// The ramp should dominate: the second half's mean must exceed the first's.
	half := len(env) / 2
	var first, second float64
	for i, v := range env {
		if i < half {
			first += v
		} else {
			second += v
		}
	}
	if second <= first {
		t.Errorf("envelope does not trend upward: first half sum %g, second half sum %g", first, second)
	}
}

// TestExtractEnvelope_ConstantSignal verifies that a perfectly steady signal
// normalizes to all zeros instead of dividing by a near-zero span.
func TestExtractEnvelope_ConstantSignal(t *testing.T) {
	samples := make([]float64, 44100)
	for i := range samples {
		samples[i] = 0.5
	}

	env := ExtractEnvelope(samples, 44100, 60)
	// Every window has identical RMS; the min-max span collapses to zero.
	for i, v := range env {
		if v != 0 {
			t.Fatalf("constant signal: env[%d] = %g, want 0", i, v)
		}
	}
}

// TestExtractEnvelope_Degenerate verifies empty and invalid inputs produce
// zero-filled output of the right length rather than panicking.
func TestExtractEnvelope_Degenerate(t *testing.T) {
	cases := []struct {
		name       string
		samples    []float64
		sampleRate int
		frameCount int
		wantLen    int
	}{
		{"empty samples", nil, 44100, 30, 30},
		{"zero frames", makeRampedSine(8000, 0.1), 8000, 0, 0},
		{"negative frames", makeRampedSine(8000, 0.1), 8000, -5, 0},
		{"bad sample rate", makeRampedSine(8000, 0.1), 0, 30, 30},
		{"single sample", []float64{0.5}, 44100, 10, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := ExtractEnvelope(tc.samples, tc.sampleRate, tc.frameCount)
			if len(env) != tc.wantLen {
				t.Fatalf("got %d values, want %d", len(env), tc.wantLen)
			}
			for i, v := range env {
				if v < 0 || v > 1 {
					t.Errorf("env[%d] = %g out of [0,1]", i, v)
				}
			}
		})
	}
}

// TestAnalyze_NilSignal verifies the silent-fallback contract: a nil signal
// yields a full-length, all-zero envelope so rendering can proceed.
func TestAnalyze_NilSignal(t *testing.T) {
	env := Analyze(nil, 90)

	if len(env.Amplitude) != 90 || len(env.Bands) != 90 {
		t.Fatalf("lengths = %d/%d, want 90/90", len(env.Amplitude), len(env.Bands))
	}
	for i := range env.Amplitude {
		if env.Amplitude[i] != 0 {
			t.Fatalf("Amplitude[%d] = %g, want 0", i, env.Amplitude[i])
		}
		if env.Bands[i] != [3]float64{} {
			t.Fatalf("Bands[%d] = %v, want zeros", i, env.Bands[i])
		}
	}
}

// TestAnalyze_BandsInRange verifies that spectral band values share the
// per-frame grid and stay normalized.
func TestAnalyze_BandsInRange(t *testing.T) {
	sig := &Signal{Samples: makeRampedSine(22050, 1.0), SampleRate: 22050}
	env := Analyze(sig, 60)

	if len(env.Bands) != 60 {
		t.Fatalf("got %d band frames, want 60", len(env.Bands))
	}
	for i, bands := range env.Bands {
		for b, v := range bands {
			if v < 0 || v > 1 {
				t.Errorf("Bands[%d][%d] = %g out of [0,1]", i, b, v)
			}
		}
	}
}

// TestResampleLinear verifies endpoint preservation and interpolation.
func TestResampleLinear(t *testing.T) {
	src := []float64{0, 1, 0, 1}
	dst := make([]float64, 7)
	resampleLinear(src, dst)

	if dst[0] != src[0] {
		t.Errorf("dst[0] = %g, want %g", dst[0], src[0])
	}
	if dst[6] != src[3] {
		t.Errorf("dst[last] = %g, want %g", dst[6], src[3])
	}
	// Midpoint of the first source interval.
	if math.Abs(dst[1]-0.5) > 1e-12 {
		t.Errorf("dst[1] = %g, want 0.5", dst[1])
	}

	// Single-source-value broadcast.
	dst2 := make([]float64, 4)
	resampleLinear([]float64{0.7}, dst2)
	for i, v := range dst2 {
		if v != 0.7 {
			t.Errorf("broadcast dst[%d] = %g, want 0.7", i, v)
		}
	}
}

// TestNormalizeInPlace verifies min-max scaling and the constant-curve guard.
func TestNormalizeInPlace(t *testing.T) {
	values := []float64{2, 4, 6}
	normalizeInPlace(values)
	want := []float64{0, 0.5, 1}
	for i := range values {
		if math.Abs(values[i]-want[i]) > 1e-12 {
			t.Errorf("values[%d] = %g, want %g", i, values[i], want[i])
		}
	}

	flat := []float64{3, 3, 3}
	normalizeInPlace(flat)
	for i, v := range flat {
		if v != 0 {
			t.Errorf("flat[%d] = %g, want 0", i, v)
		}
	}
}
