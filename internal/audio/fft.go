package audio

import (
	"fmt"
	"math"

	"github.com/argusdusty/gofft"
)

// Band frequency boundaries in Hz. Everything above highCutHz is ignored;
// speech and music energy relevant to the visuals lives below it.
const (
	lowCutHz  = 250.0
	midCutHz  = 2000.0
	highCutHz = 8000.0
)

// Processor performs windowed FFT analysis on sample chunks.
type Processor struct {
	size int
}

// NewProcessor creates an FFT processor for chunks of the given size.
// Size is rounded up to the next power of two as required by the transform.
func NewProcessor(size int) (*Processor, error) {
	n := 1
	for n < size {
		n <<= 1
	}
	if err := gofft.Prepare(n); err != nil {
		return nil, fmt.Errorf("preparing FFT of size %d: %w", n, err)
	}
	return &Processor{size: n}, nil
}

// Size returns the transform length.
func (p *Processor) Size() int { return p.size }

// Transform applies a Hanning window and computes the FFT of one chunk.
// Chunks shorter than the transform length are zero-padded.
func (p *Processor) Transform(chunk []float64) ([]complex128, error) {
	padded := make([]float64, p.size)
	copy(padded, chunk)
	applyHanning(padded)

	coeffs := gofft.Float64ToComplex128Array(padded)
	if err := gofft.FFT(coeffs); err != nil {
		return nil, fmt.Errorf("computing FFT: %w", err)
	}
	return coeffs, nil
}

// BandEnergies averages coefficient magnitudes into low/mid/high bands.
func (p *Processor) BandEnergies(coeffs []complex128, sampleRate int) [3]float64 {
	var energies [3]float64
	var counts [3]int

	binWidth := float64(sampleRate) / float64(p.size)
	half := len(coeffs) / 2

	for i := 1; i < half; i++ {
		freq := float64(i) * binWidth
		if freq > highCutHz {
			break
		}

		band := 2
		switch {
		case freq < lowCutHz:
			band = 0
		case freq < midCutHz:
			band = 1
		}

		c := coeffs[i]
		energies[band] += math.Sqrt(real(c)*real(c) + imag(c)*imag(c))
		counts[band]++
	}

	for b := range energies {
		if counts[b] > 0 {
			energies[b] /= float64(counts[b])
		}
	}
	return energies
}

// applyHanning applies a Hanning window in place.
func applyHanning(data []float64) {
	n := len(data)
	if n < 2 {
		return
	}
	for i := range data {
		data[i] *= 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
}
