// Package timeline partitions a video's duration into intro, per-story
// content, and outro segments, and maps global frame indices onto
// per-segment animation progress.
package timeline

import (
	"fmt"
	"math"
)

// Kind identifies the phase of the video a segment belongs to.
type Kind int

const (
	Intro Kind = iota
	Content
	Outro
)

func (k Kind) String() string {
	switch k {
	case Intro:
		return "intro"
	case Content:
		return "content"
	case Outro:
		return "outro"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Segment is a contiguous run of frames assigned to one phase.
// Label carries the story title for Content segments and is empty otherwise.
type Segment struct {
	Kind       Kind
	StartFrame int
	FrameCount int
	Label      string
}

// Plan holds the complete frame partition for one render.
type Plan struct {
	Segments    []Segment
	TotalFrames int
	FrameRate   int
}

// When configured intro+outro exceed the clip length, both are scaled down
// to this fraction of the total duration so content time stays non-negative.
const shortClipFraction = 0.4

// New partitions ceil(totalDuration*frameRate) frames into an intro segment,
// one segment per label, and an outro segment. The returned segments cover
// [0, TotalFrames) exactly, in order, with no gaps or overlaps; rounding
// leftovers are absorbed by the outro.
func New(totalDuration float64, frameRate int, labels []string, introDuration, outroDuration float64) (*Plan, error) {
	if totalDuration <= 0 {
		return nil, fmt.Errorf("total duration must be positive, got %g", totalDuration)
	}
	if frameRate <= 0 {
		return nil, fmt.Errorf("frame rate must be positive, got %d", frameRate)
	}
	if introDuration < 0 || outroDuration < 0 {
		return nil, fmt.Errorf("intro/outro durations must not be negative")
	}

	totalFrames := int(math.Ceil(totalDuration * float64(frameRate)))

	// Very short clips: shrink intro and outro to a fixed fraction each
	// so the content phase never goes negative.
	if introDuration+outroDuration > totalDuration {
		introDuration = totalDuration * shortClipFraction
		outroDuration = totalDuration * shortClipFraction
	}

	introFrames := int(introDuration * float64(frameRate))
	outroFrames := int(outroDuration * float64(frameRate))
	if introFrames+outroFrames > totalFrames {
		outroFrames = totalFrames - introFrames
	}

	contentFrames := totalFrames - introFrames - outroFrames

	segments := make([]Segment, 0, len(labels)+2)
	cursor := 0

	segments = append(segments, Segment{Kind: Intro, StartFrame: cursor, FrameCount: introFrames})
	cursor += introFrames

	if len(labels) > 0 && contentFrames > 0 {
		perItem := contentFrames / len(labels)
		for _, label := range labels {
			segments = append(segments, Segment{
				Kind:       Content,
				StartFrame: cursor,
				FrameCount: perItem,
				Label:      label,
			})
			cursor += perItem
		}
	}

	// Outro takes everything remaining, including rounding leftovers from
	// the even content split.
	segments = append(segments, Segment{
		Kind:       Outro,
		StartFrame: cursor,
		FrameCount: totalFrames - cursor,
	})

	return &Plan{Segments: segments, TotalFrames: totalFrames, FrameRate: frameRate}, nil
}

// Locate returns the segment containing the global frame index and the
// animation progress within it. Progress for frame i of an n-frame segment
// is i/(n-1), or 0 for single-frame segments.
func (p *Plan) Locate(frame int) (Segment, float64) {
	if len(p.Segments) == 0 {
		return Segment{}, 0
	}
	if frame < 0 {
		frame = 0
	}
	if frame >= p.TotalFrames {
		frame = p.TotalFrames - 1
	}

	for _, seg := range p.Segments {
		if frame < seg.StartFrame+seg.FrameCount {
			return seg, Progress(frame-seg.StartFrame, seg.FrameCount)
		}
	}
	// Trailing zero-length segments: hold the last one.
	last := p.Segments[len(p.Segments)-1]
	return last, 1
}

// Progress maps frame index i within an n-frame segment onto [0, 1].
func Progress(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
