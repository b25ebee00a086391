package components

import (
	"context"
	"math"

	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports"
)

const (
	sineSampleRate = 48000
	sineChannels   = 2
)

// SineToneProcessor produces a fixed-frequency stereo test tone.
type SineToneProcessor struct{}

var _ ports.Processor = (*SineToneProcessor)(nil)

// FixedParameterTypes declares frequency in Hz, amplitude in [0,1], and
// the natural duration in seconds.
func (p *SineToneProcessor) FixedParameterTypes() []domain.ParameterSpec {
	return []domain.ParameterSpec{
		{Name: "frequency", Type: domain.TypeReal},
		{Name: "amplitude", Type: domain.TypeReal},
		{Name: "duration", Type: domain.TypeReal},
	}
}

// UpdateVariableParameters declares no variable slots.
func (p *SineToneProcessor) UpdateVariableParameters(_ context.Context, _ []domain.ParameterValue, current []domain.ParameterSpec) ([]domain.ParameterSpec, error) {
	return current, nil
}

// NaturalLength is the duration parameter.
func (p *SineToneProcessor) NaturalLength(_ context.Context, fixed []domain.ParameterValue) (domain.TimeValue, error) {
	if err := domain.ValidateParameters(p.FixedParameterTypes(), fixed); err != nil {
		return domain.TimeValue{}, err
	}
	return domain.TimeFromFloat64(fixed[2].Real)
}

// Expand produces one audio leaf.
func (p *SineToneProcessor) Expand(_ context.Context, req ports.ExpandRequest) (ports.Expansion, error) {
	if err := domain.ValidateParameters(p.FixedParameterTypes(), req.Fixed); err != nil {
		return ports.Expansion{}, err
	}

	provider := &sineTone{
		frequency: req.Fixed[0].Real,
		amplitude: req.Fixed[1].Real,
	}
	return ports.Expansion{
		Leaves: []ports.NativeExecutable{{
			ProcessorRef: SineToneRef,
			Parameters:   req.Fixed,
			Audio:        provider,
		}},
	}, nil
}

type sineTone struct {
	frequency float64
	amplitude float64
}

var _ ports.AudioProvider = (*sineTone)(nil)

func (s *sineTone) SampleRate() int {
	return sineSampleRate
}

func (s *sineTone) Channels() int {
	return sineChannels
}

// ComputeAudio fills dst with interleaved stereo frames starting at the
// given timeline time, returning the number of whole frames written.
func (s *sineTone) ComputeAudio(ctx context.Context, from domain.TimeValue, dst []float32) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	frames := len(dst) / sineChannels
	base := from.Float64()
	for i := range frames {
		at := base + float64(i)/sineSampleRate
		sample := float32(s.amplitude * math.Sin(2*math.Pi*s.frequency*at))
		for ch := range sineChannels {
			dst[i*sineChannels+ch] = sample
		}
	}
	return frames, nil
}
