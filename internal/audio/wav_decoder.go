package audio

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAVDecoder implements Decoder for WAV files.
type WAVDecoder struct {
	decoder    *wav.Decoder
	file       *os.File
	sampleRate int
	bitDepth   int
	numChans   int
	numSamples int64
}

// NewWAVDecoder creates a new WAV decoder.
func NewWAVDecoder(filename string) (*WAVDecoder, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		f.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", filename)
	}

	if err := decoder.FwdToPCM(); err != nil {
		f.Close()
		return nil, fmt.Errorf("seeking to PCM data: %w", err)
	}

	bytesPerSample := int64(decoder.BitDepth / 8)
	numChans := int64(decoder.NumChans)
	totalSamples := int64(decoder.PCMLen()) / (bytesPerSample * numChans)

	return &WAVDecoder{
		decoder:    decoder,
		file:       f,
		sampleRate: int(decoder.SampleRate),
		bitDepth:   int(decoder.BitDepth),
		numChans:   int(decoder.NumChans),
		numSamples: totalSamples,
	}, nil
}

// ReadChunk reads up to numSamples mono samples.
func (d *WAVDecoder) ReadChunk(numSamples int) ([]float64, error) {
	intBuf := &goaudio.IntBuffer{
		Data: make([]int, numSamples*d.numChans),
		Format: &goaudio.Format{
			NumChannels: d.numChans,
			SampleRate:  d.sampleRate,
		},
	}

	n, err := d.decoder.PCMBuffer(intBuf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading PCM buffer: %w", err)
	}
	if n == 0 {
		return nil, io.EOF
	}

	maxVal := float64(goaudio.IntMaxSignedValue(d.bitDepth))

	if d.numChans == 1 {
		samples := make([]float64, n)
		for i := 0; i < n; i++ {
			samples[i] = float64(intBuf.Data[i]) / maxVal
		}
		return samples, nil
	}

	// Interleaved multi-channel: downmix by averaging.
	frames := n / d.numChans
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for ch := 0; ch < d.numChans; ch++ {
			sum += float64(intBuf.Data[i*d.numChans+ch]) / maxVal
		}
		samples[i] = sum / float64(d.numChans)
	}
	return samples, nil
}

// SampleRate returns the sample rate.
func (d *WAVDecoder) SampleRate() int { return d.sampleRate }

// NumSamples returns the total mono sample count.
func (d *WAVDecoder) NumSamples() int64 { return d.numSamples }

// NumChannels returns the source channel count.
func (d *WAVDecoder) NumChannels() int { return d.numChans }

// Close closes the underlying file.
func (d *WAVDecoder) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}
