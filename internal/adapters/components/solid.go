package components

import (
	"context"

	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/zerr"
)

// SolidColorProcessor renders a single flat RGBA frame for the whole
// duration of its instance. It is the simplest terminal image component
// and doubles as the reference implementation for parameter handling.
type SolidColorProcessor struct{}

var _ ports.Processor = (*SolidColorProcessor)(nil)

// FixedParameterTypes declares width/height in pixels, the color channels
// in [0,1], and the natural duration in seconds.
func (p *SolidColorProcessor) FixedParameterTypes() []domain.ParameterSpec {
	return []domain.ParameterSpec{
		{Name: "width", Type: domain.TypeInteger},
		{Name: "height", Type: domain.TypeInteger},
		{Name: "red", Type: domain.TypeReal},
		{Name: "green", Type: domain.TypeReal},
		{Name: "blue", Type: domain.TypeReal},
		{Name: "duration", Type: domain.TypeReal},
	}
}

// UpdateVariableParameters keeps the declared opacity slot regardless of
// the fixed parameters.
func (p *SolidColorProcessor) UpdateVariableParameters(_ context.Context, _ []domain.ParameterValue, current []domain.ParameterSpec) ([]domain.ParameterSpec, error) {
	return current, nil
}

// NaturalLength is the duration parameter.
func (p *SolidColorProcessor) NaturalLength(_ context.Context, fixed []domain.ParameterValue) (domain.TimeValue, error) {
	if err := domain.ValidateParameters(p.FixedParameterTypes(), fixed); err != nil {
		return domain.TimeValue{}, err
	}
	return domain.TimeFromFloat64(fixed[5].Real)
}

// Expand produces one image leaf. The opacity variable parameter is
// sampled at the instance start so an eased fade still yields a defined
// base value.
func (p *SolidColorProcessor) Expand(_ context.Context, req ports.ExpandRequest) (ports.Expansion, error) {
	if err := domain.ValidateParameters(p.FixedParameterTypes(), req.Fixed); err != nil {
		return ports.Expansion{}, err
	}

	params := make([]domain.ParameterValue, 0, len(req.Fixed)+len(req.Variable))
	params = append(params, req.Fixed...)
	for _, v := range req.Variable {
		value, err := v.EvaluateSegment(req.Start, req.ResolveEasing)
		if err != nil {
			return ports.Expansion{}, zerr.With(err, "parameter", v.Name)
		}
		params = append(params, value)
	}

	provider := &solidImage{
		width:  uint32(req.Fixed[0].Int),
		height: uint32(req.Fixed[1].Int),
		red:    channelByte(req.Fixed[2].Real),
		green:  channelByte(req.Fixed[3].Real),
		blue:   channelByte(req.Fixed[4].Real),
	}

	return ports.Expansion{
		Leaves: []ports.NativeExecutable{{
			ProcessorRef: SolidColorRef,
			Parameters:   params,
			Image:        provider,
		}},
	}, nil
}

func channelByte(v float64) byte {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return byte(v*255 + 0.5)
	}
}

type solidImage struct {
	width  uint32
	height uint32
	red    byte
	green  byte
	blue   byte
}

var _ ports.ImageProvider = (*solidImage)(nil)

func (s *solidImage) Size() ports.ImageSize {
	return ports.ImageSize{Width: s.width, Height: s.height}
}

// ComputeImage fills dst with the flat color, independent of the frame
// time.
func (s *solidImage) ComputeImage(ctx context.Context, _ domain.TimeValue, dst []byte) error {
	need := int(s.width) * int(s.height) * 4
	if len(dst) < need {
		return zerr.With(zerr.With(zerr.New("destination buffer too small"), "need", need), "got", len(dst))
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for i := 0; i < need; i += 4 {
		dst[i] = s.red
		dst[i+1] = s.green
		dst[i+2] = s.blue
		dst[i+3] = 255
	}
	return nil
}
