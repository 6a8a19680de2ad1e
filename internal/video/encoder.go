// Package video drives frame generation and hands the result to an external
// ffmpeg process for encoding and muxing.
package video

import (
	"context"
	"fmt"
	"image"
	"io"
	"os/exec"
)

// EncoderConfig describes one encode target.
type EncoderConfig struct {
	OutputPath string
	Width      int
	Height     int
	FPS        int
	// AudioPath is muxed in as the audio track when non-empty.
	AudioPath string
}

// Encoder streams raw RGB24 frames to an ffmpeg child process over a pipe.
// Frames must be written in strict presentation order; a failed encode
// produces no usable output and is reported from Close.
type Encoder struct {
	cfg    EncoderConfig
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	rowBuf []byte
	frames int
}

// NewEncoder creates an encoder for the given target.
func NewEncoder(cfg EncoderConfig) *Encoder {
	return &Encoder{
		cfg:    cfg,
		rowBuf: make([]byte, cfg.Width*3),
	}
}

// buildArgs constructs the ffmpeg invocation: rawvideo frames on stdin,
// the narration file as the second input, H.264 + AAC out.
func (e *Encoder) buildArgs() []string {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgb24",
		"-video_size", fmt.Sprintf("%dx%d", e.cfg.Width, e.cfg.Height),
		"-framerate", fmt.Sprintf("%d", e.cfg.FPS),
		"-i", "pipe:0",
	}
	if e.cfg.AudioPath != "" {
		args = append(args, "-i", e.cfg.AudioPath)
	}
	args = append(args,
		"-c:v", "libx264",
		"-preset", "medium",
		"-crf", "23",
	)
	if e.cfg.AudioPath != "" {
		args = append(args,
			"-c:a", "aac",
			"-b:a", "192k",
			"-shortest",
		)
	}
	args = append(args,
		"-pix_fmt", "yuv420p",
		e.cfg.OutputPath,
	)
	return args
}

// Start launches the ffmpeg process.
func (e *Encoder) Start(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", e.buildArgs()...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("creating ffmpeg pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting ffmpeg: %w", err)
	}

	e.cmd = cmd
	e.stdin = stdin
	return nil
}

// WriteFrame streams one frame as raw RGB24, dropping the alpha channel.
// Writing row by row from the pixel buffer avoids the per-pixel color
// conversion of image.At.
func (e *Encoder) WriteFrame(img *image.RGBA) error {
	if e.stdin == nil {
		return fmt.Errorf("encoder not started")
	}

	bounds := img.Bounds()
	if bounds.Dx() != e.cfg.Width || bounds.Dy() != e.cfg.Height {
		return fmt.Errorf("frame size %dx%d does not match encoder %dx%d",
			bounds.Dx(), bounds.Dy(), e.cfg.Width, e.cfg.Height)
	}

	for y := 0; y < e.cfg.Height; y++ {
		rowStart := y * img.Stride
		bufIdx := 0
		for x := 0; x < e.cfg.Width; x++ {
			pixelIdx := rowStart + x*4
			e.rowBuf[bufIdx] = img.Pix[pixelIdx]
			e.rowBuf[bufIdx+1] = img.Pix[pixelIdx+1]
			e.rowBuf[bufIdx+2] = img.Pix[pixelIdx+2]
			bufIdx += 3
		}
		if _, err := e.stdin.Write(e.rowBuf); err != nil {
			return fmt.Errorf("writing frame %d: %w", e.frames, err)
		}
	}

	e.frames++
	return nil
}

// FramesWritten returns the number of frames streamed so far.
func (e *Encoder) FramesWritten() int { return e.frames }

// Close finishes the stream and waits for ffmpeg. An encode that failed at
// any point surfaces here; there is no partial-success.
func (e *Encoder) Close() error {
	if e.stdin == nil {
		return nil
	}
	if err := e.stdin.Close(); err != nil {
		return fmt.Errorf("closing ffmpeg pipe: %w", err)
	}
	e.stdin = nil

	if err := e.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	return nil
}
