package ports

import (
	"context"

	"go.trai.ch/reel/internal/core/domain"
)

// ImageSize is the pixel dimensions of a produced frame.
type ImageSize struct {
	Width  uint32
	Height uint32
}

// ImageProvider is the pull interface a native image leaf exposes to the
// rendering collaborator. ComputeImage fills dst with RGBA8 pixels for the
// frame at the given timeline time; dst must hold Width*Height*4 bytes.
type ImageProvider interface {
	Size() ImageSize
	ComputeImage(ctx context.Context, at domain.TimeValue, dst []byte) error
}

// AudioProvider is the pull interface a native audio leaf exposes to the
// playback collaborator: a fixed sample rate and channel count, and a
// compute-into-destination operation returning the number of interleaved
// frames written.
type AudioProvider interface {
	SampleRate() int
	Channels() int
	ComputeAudio(ctx context.Context, from domain.TimeValue, dst []float32) (int, error)
}
