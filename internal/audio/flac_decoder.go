package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/mewkiz/flac"
)

// FLACDecoder implements Decoder for FLAC files.
type FLACDecoder struct {
	stream      *flac.Stream
	file        *os.File
	sampleRate  int
	numSamples  int64
	numChannels int
	position    int64

	// Leftover samples from the last parsed FLAC frame.
	pending []float64
}

// NewFLACDecoder creates a new FLAC decoder.
func NewFLACDecoder(filename string) (*FLACDecoder, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	stream, err := flac.New(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating FLAC decoder: %w", err)
	}

	info := stream.Info
	return &FLACDecoder{
		stream:      stream,
		file:        f,
		sampleRate:  int(info.SampleRate),
		numSamples:  int64(info.NSamples),
		numChannels: int(info.NChannels),
	}, nil
}

// ReadChunk reads up to numSamples mono samples.
func (d *FLACDecoder) ReadChunk(numSamples int) ([]float64, error) {
	samples := make([]float64, 0, numSamples)

	// Drain leftovers first.
	if len(d.pending) > 0 {
		take := len(d.pending)
		if take > numSamples {
			take = numSamples
		}
		samples = append(samples, d.pending[:take]...)
		d.pending = d.pending[take:]
	}

	for len(samples) < numSamples {
		frame, err := d.stream.ParseNext()
		if err != nil {
			if err == io.EOF {
				if len(samples) == 0 {
					return nil, io.EOF
				}
				break
			}
			return nil, fmt.Errorf("parsing FLAC frame: %w", err)
		}

		maxVal := float64(int64(1) << (frame.BitsPerSample - 1))
		frameLen := len(frame.Subframes[0].Samples)

		for i := 0; i < frameLen; i++ {
			var sum int64
			for _, sub := range frame.Subframes {
				sum += int64(sub.Samples[i])
			}
			s := float64(sum) / float64(len(frame.Subframes)) / maxVal

			if len(samples) < numSamples {
				samples = append(samples, s)
			} else {
				d.pending = append(d.pending, s)
			}
		}
	}

	d.position += int64(len(samples))
	return samples, nil
}

// SampleRate returns the sample rate.
func (d *FLACDecoder) SampleRate() int { return d.sampleRate }

// NumSamples returns the total mono sample count.
func (d *FLACDecoder) NumSamples() int64 { return d.numSamples }

// NumChannels returns the source channel count.
func (d *FLACDecoder) NumChannels() int { return d.numChannels }

// Close closes the decoder and releases resources.
func (d *FLACDecoder) Close() error {
	if d.stream != nil {
		d.stream.Close()
	}
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}
