package audio

import (
	"math"
)

// Analysis rate for the coarse energy measure, in windows per second.
// The normalized energy curve is resampled from this grid onto the
// per-video-frame grid.
const analysisRate = 50

// Epsilon guard for min-max normalization of degenerate (constant) signals.
const normalizeEpsilon = 1e-9

// Envelope holds per-video-frame audio measures driving the visuals.
// All values are normalized to [0, 1] and each slice has exactly one entry
// per video frame.
type Envelope struct {
	// Amplitude is the normalized RMS loudness per frame.
	Amplitude []float64

	// Bands holds normalized low/mid/high spectral energy per frame.
	Bands [][3]float64
}

// Analyze computes the full per-frame envelope for a clip. A nil or empty
// signal produces an all-zero envelope of the requested length; band analysis
// failures degrade to zero bands rather than failing the render.
func Analyze(sig *Signal, frameCount int) *Envelope {
	env := &Envelope{
		Amplitude: make([]float64, frameCount),
		Bands:     make([][3]float64, frameCount),
	}
	if sig == nil || len(sig.Samples) == 0 || frameCount <= 0 {
		return env
	}

	env.Amplitude = ExtractEnvelope(sig.Samples, sig.SampleRate, frameCount)

	bands, err := extractBands(sig.Samples, sig.SampleRate, frameCount)
	if err == nil {
		env.Bands = bands
	}
	return env
}

// ExtractEnvelope converts a raw waveform into a normalized per-frame
// amplitude series of exactly frameCount values in [0, 1]: windowed RMS at a
// coarse analysis rate, min-max normalized across the whole clip, then
// linearly resampled onto the per-frame grid.
func ExtractEnvelope(samples []float64, sampleRate, frameCount int) []float64 {
	if frameCount <= 0 {
		return nil
	}
	out := make([]float64, frameCount)
	if len(samples) == 0 || sampleRate <= 0 {
		return out
	}

	energies := windowedRMS(samples, sampleRate)
	normalizeInPlace(energies)
	resampleLinear(energies, out)

	for i, v := range out {
		out[i] = clamp01(v)
	}
	return out
}

// windowedRMS computes root-mean-square energy over short windows at the
// coarse analysis rate.
func windowedRMS(samples []float64, sampleRate int) []float64 {
	windowSize := sampleRate / analysisRate
	if windowSize < 1 {
		windowSize = 1
	}

	numWindows := (len(samples) + windowSize - 1) / windowSize
	energies := make([]float64, numWindows)

	for w := 0; w < numWindows; w++ {
		start := w * windowSize
		end := start + windowSize
		if end > len(samples) {
			end = len(samples)
		}

		var sumSquares float64
		for _, s := range samples[start:end] {
			sumSquares += s * s
		}
		energies[w] = math.Sqrt(sumSquares / float64(end-start))
	}
	return energies
}

// extractBands computes normalized low/mid/high spectral energies on the
// same analysis grid as the RMS envelope, resampled per frame.
func extractBands(samples []float64, sampleRate, frameCount int) ([][3]float64, error) {
	windowSize := sampleRate / analysisRate
	if windowSize < 1 {
		windowSize = 1
	}

	proc, err := NewProcessor(windowSize)
	if err != nil {
		return nil, err
	}

	numWindows := (len(samples) + windowSize - 1) / windowSize
	raw := make([][3]float64, numWindows)
	for w := 0; w < numWindows; w++ {
		start := w * windowSize
		end := start + windowSize
		if end > len(samples) {
			end = len(samples)
		}

		coeffs, err := proc.Transform(samples[start:end])
		if err != nil {
			return nil, err
		}
		raw[w] = proc.BandEnergies(coeffs, sampleRate)
	}

	// Normalize and resample each band independently.
	out := make([][3]float64, frameCount)
	curve := make([]float64, numWindows)
	resampled := make([]float64, frameCount)
	for b := 0; b < 3; b++ {
		for w := range raw {
			curve[w] = raw[w][b]
		}
		normalizeInPlace(curve)
		resampleLinear(curve, resampled)
		for i := range out {
			out[i][b] = clamp01(resampled[i])
		}
	}
	return out, nil
}

// normalizeInPlace min-max normalizes values to [0, 1]. A constant curve
// (span below epsilon) normalizes to all zeros instead of dividing by zero.
func normalizeInPlace(values []float64) {
	if len(values) == 0 {
		return
	}

	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	span := maxV - minV
	if span < normalizeEpsilon {
		for i := range values {
			values[i] = 0
		}
		return
	}
	for i := range values {
		values[i] = (values[i] - minV) / span
	}
}

// resampleLinear interpolates src onto len(dst) evenly spaced points
// covering the full source range.
func resampleLinear(src, dst []float64) {
	if len(dst) == 0 {
		return
	}
	if len(src) == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	if len(src) == 1 {
		for i := range dst {
			dst[i] = src[0]
		}
		return
	}

	scale := float64(len(src)-1) / float64(max(len(dst)-1, 1))
	for i := range dst {
		pos := float64(i) * scale
		idx := int(pos)
		if idx >= len(src)-1 {
			dst[i] = src[len(src)-1]
			continue
		}
		frac := pos - float64(idx)
		dst[i] = src[idx] + (src[idx+1]-src[idx])*frac
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
