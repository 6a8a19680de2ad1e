package audio

import (
	"fmt"
	"io"
)

// Signal holds a fully decoded mono waveform.
// It is immutable once loaded; downstream stages only read it.
type Signal struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the clip length in seconds.
func (s *Signal) Duration() float64 {
	if s == nil || s.SampleRate <= 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.SampleRate)
}

// readChunkSize is the decode granularity when loading a full signal.
const readChunkSize = 8192

// Load decodes an entire audio file into memory as mono float64 samples.
func Load(filename string) (*Signal, error) {
	dec, err := OpenDecoder(filename)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var samples []float64
	if n := dec.NumSamples(); n > 0 {
		samples = make([]float64, 0, n)
	}

	for {
		chunk, err := dec.ReadChunk(readChunkSize)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", filename, err)
		}
		samples = append(samples, chunk...)
	}

	return &Signal{Samples: samples, SampleRate: dec.SampleRate()}, nil
}
