package audio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Decoder is the interface implemented by all audio format decoders.
// Decoders always deliver mono float64 samples in [-1, 1]; multi-channel
// input is downmixed by averaging.
type Decoder interface {
	// ReadChunk reads up to numSamples mono samples.
	// Returns io.EOF when the stream is exhausted.
	ReadChunk(numSamples int) ([]float64, error)

	// SampleRate returns the audio sample rate in Hz.
	SampleRate() int

	// NumSamples returns the total number of mono samples,
	// or 0 when the length is unknown up front.
	NumSamples() int64

	// NumChannels returns the source channel count before downmix.
	NumChannels() int

	// Close releases the underlying file.
	Close() error
}

// OpenDecoder selects a decoder by file extension.
func OpenDecoder(filename string) (Decoder, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		return NewWAVDecoder(filename)
	case ".mp3":
		return NewMP3Decoder(filename)
	case ".flac":
		return NewFLACDecoder(filename)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", filename)
	}
}
