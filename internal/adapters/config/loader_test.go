package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reel/internal/adapters/components"
	"go.trai.ch/reel/internal/adapters/config"
	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const validComposition = `
version: "1"
composition: demo
clips:
  - name: intro
    class: solid-color
    duration: 2.5
    params:
      width: 1920
      height: 1080
      red: 1.0
      green: 0.5
      blue: 0.0
      duration: 2.5
  - name: beep
    class: sine-tone
    duration: 1
    params:
      frequency: 440
      amplitude: 0.3
      duration: 1
`

func writeComposition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "composition.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newLoader(t *testing.T, ctrl *gomock.Controller) (*config.Loader, *components.Registry) {
	t.Helper()
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	registry := components.NewRegistry()
	return config.NewLoader(log, components.NewCatalog(), registry), registry
}

func TestLoad_ValidComposition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	loader, registry := newLoader(t, ctrl)

	comp, err := loader.Load(writeComposition(t, validComposition))
	require.NoError(t, err)

	assert.Equal(t, "demo", comp.Name)
	require.Len(t, comp.Roots, 1)

	root := comp.Roots[0]
	assert.Equal(t, "sequence.demo", root.Class().ProcessorRef())

	locked, ok := root.LeftPin().LockedTime()
	require.True(t, ok)
	assert.True(t, locked.Value().IsZero())

	// The composition's sequence processor is resolvable afterwards.
	_, err = registry.Lookup("sequence.demo")
	require.NoError(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	loader, _ := newLoader(t, ctrl)

	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, domain.ErrCompositionReadFailed)
}

func TestLoad_MalformedYAML(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	loader, _ := newLoader(t, ctrl)

	_, err := loader.Load(writeComposition(t, "clips: [unterminated"))
	require.ErrorIs(t, err, domain.ErrCompositionParseFailed)
}

func TestLoad_UnknownClass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	loader, _ := newLoader(t, ctrl)

	_, err := loader.Load(writeComposition(t, `
composition: demo
clips:
  - class: gradient
    duration: 1
    params: {}
`))
	require.ErrorIs(t, err, domain.ErrUnknownClass)
}

func TestLoad_MissingParameter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	loader, _ := newLoader(t, ctrl)

	_, err := loader.Load(writeComposition(t, `
composition: demo
clips:
  - class: sine-tone
    duration: 1
    params:
      frequency: 440
`))
	require.ErrorIs(t, err, domain.ErrInvalidComposition)
}

func TestLoad_WrongParameterType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	loader, _ := newLoader(t, ctrl)

	_, err := loader.Load(writeComposition(t, `
composition: demo
clips:
  - class: sine-tone
    duration: 1
    params:
      frequency: loud
      amplitude: 0.3
      duration: 1
`))
	require.ErrorIs(t, err, domain.ErrInvalidComposition)
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	loader, _ := newLoader(t, ctrl)

	_, err := loader.Load(writeComposition(t, `
version: "2"
composition: demo
clips:
  - class: sine-tone
    duration: 1
    params: {frequency: 440, amplitude: 0.3, duration: 1}
`))
	require.ErrorIs(t, err, domain.ErrInvalidComposition)
}

func TestLoad_NonPositiveDuration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	loader, _ := newLoader(t, ctrl)

	_, err := loader.Load(writeComposition(t, `
composition: demo
clips:
  - class: sine-tone
    duration: 0
    params: {frequency: 440, amplitude: 0.3, duration: 1}
`))
	require.ErrorIs(t, err, domain.ErrInvalidComposition)
}
