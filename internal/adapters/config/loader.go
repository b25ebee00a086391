// Package config provides the composition file loader for reel.
package config

import (
	"fmt"
	"os"

	"go.trai.ch/reel/internal/adapters/components"
	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the only composition file format version in use.
const supportedVersion = "1"

// Loader implements ports.CompositionLoader using a YAML file. Loading a
// composition registers one sequence processor per composition in the
// processor registry and returns a single root instance whose left pin is
// locked at timeline zero.
type Loader struct {
	logger   ports.Logger
	catalog  ports.ClassCatalog
	registry ports.ProcessorRegistry
}

var _ ports.CompositionLoader = (*Loader)(nil)

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger, catalog ports.ClassCatalog, registry ports.ProcessorRegistry) *Loader {
	return &Loader{logger: logger, catalog: catalog, registry: registry}
}

// Load reads a composition file and builds its instance tree root.
func (l *Loader) Load(path string) (*domain.Composition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCompositionReadFailed, err.Error()), "path", path)
	}

	var file CompositionFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCompositionParseFailed, err.Error()), "path", path)
	}

	if file.Version != "" && file.Version != supportedVersion {
		return nil, zerr.With(domain.ErrInvalidComposition, "version", file.Version)
	}
	if file.Composition == "" {
		return nil, zerr.Wrap(domain.ErrInvalidComposition, "composition name is required")
	}
	if len(file.Clips) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidComposition, "composition has no clips"), "composition", file.Composition)
	}

	steps := make([]components.SequenceStep, 0, len(file.Clips))
	for i, clip := range file.Clips {
		step, err := l.buildStep(clip)
		if err != nil {
			return nil, zerr.With(err, "clip", clipLabel(clip, i))
		}
		steps = append(steps, step)
	}

	ref := "sequence." + file.Composition
	if err := l.registry.Register(ref, components.NewSequenceProcessor(steps)); err != nil {
		return nil, err
	}

	rootClass := domain.NewComponentClass(file.Composition, ref, nil, nil, domain.Capabilities{Image: true, Audio: true})
	root, err := rootClass.Instantiate(nil)
	if err != nil {
		return nil, err
	}

	start, err := domain.NewMarkerTime(domain.TimeZero)
	if err != nil {
		return nil, err
	}
	root.LeftPin().SetLockedTime(start)

	l.logger.Info(fmt.Sprintf("loaded composition %q with %d clips", file.Composition, len(file.Clips)))
	return &domain.Composition{Name: file.Composition, Roots: []*domain.ComponentInstance{root}}, nil
}

func (l *Loader) buildStep(clip *ClipDTO) (components.SequenceStep, error) {
	if clip.Class == "" {
		return components.SequenceStep{}, zerr.Wrap(domain.ErrInvalidComposition, "clip class is required")
	}
	if clip.Duration <= 0 {
		return components.SequenceStep{}, zerr.With(zerr.Wrap(domain.ErrInvalidComposition, "clip duration must be positive"), "duration", clip.Duration)
	}

	class, err := l.catalog.ClassByName(clip.Class)
	if err != nil {
		return components.SequenceStep{}, err
	}

	fixed, err := bindParams(class.FixedParameterSpecs(), clip.Params)
	if err != nil {
		return components.SequenceStep{}, err
	}

	duration, err := domain.TimeFromFloat64(clip.Duration)
	if err != nil {
		return components.SequenceStep{}, err
	}

	return components.SequenceStep{Class: class, Fixed: fixed, Duration: duration}, nil
}

// bindParams matches the file's name-keyed params onto the class's
// declared slots. Every slot must be given and no extra names may appear.
func bindParams(specs []domain.ParameterSpec, params map[string]any) ([]domain.ParameterValue, error) {
	values := make([]domain.ParameterValue, 0, len(specs))
	for _, spec := range specs {
		raw, ok := params[spec.Name]
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidComposition, "missing parameter"), "parameter", spec.Name)
		}
		value, err := coerceParam(spec, raw)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	for name := range params {
		if !hasSpec(specs, name) {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidComposition, "unknown parameter"), "parameter", name)
		}
	}
	return values, nil
}

func hasSpec(specs []domain.ParameterSpec, name string) bool {
	for _, spec := range specs {
		if spec.Name == name {
			return true
		}
	}
	return false
}

func coerceParam(spec domain.ParameterSpec, raw any) (domain.ParameterValue, error) {
	switch spec.Type {
	case domain.TypeInteger:
		if v, ok := raw.(int); ok {
			return domain.IntegerValue(int64(v)), nil
		}
		if v, ok := raw.(int64); ok {
			return domain.IntegerValue(v), nil
		}
	case domain.TypeReal:
		switch v := raw.(type) {
		case float64:
			return domain.RealValue(v), nil
		case int:
			return domain.RealValue(float64(v)), nil
		}
	case domain.TypeBoolean:
		if v, ok := raw.(bool); ok {
			return domain.BooleanValue(v), nil
		}
	case domain.TypeString:
		if v, ok := raw.(string); ok {
			return domain.StringValue(v), nil
		}
	}
	return domain.ParameterValue{}, zerr.With(zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidComposition, "parameter has wrong type"),
		"parameter", spec.Name),
		"declared_type", string(spec.Type)),
		"given", fmt.Sprintf("%v", raw),
	)
}

func clipLabel(clip *ClipDTO, index int) string {
	if clip.Name != "" {
		return clip.Name
	}
	return fmt.Sprintf("#%d", index)
}
