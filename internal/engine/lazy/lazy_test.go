package lazy_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/reel/internal/engine/lazy"
)

func TestInit_ResultBecomesVisible(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		release := make(chan struct{})
		l := lazy.Start(context.Background(), func(_ context.Context) (int, error) {
			<-release
			return 42, nil
		})

		_, ok := l.Get()
		assert.False(t, ok)

		close(release)
		<-l.Done()

		v, ok := l.Get()
		assert.True(t, ok)
		assert.Equal(t, 42, v)
	})
}

func TestInit_CloseCancelsComputation(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := lazy.Start(context.Background(), func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		})

		l.Close()
		l.Close() // idempotent
		<-l.Done()

		_, ok := l.Get()
		assert.False(t, ok)
	})
}

func TestInit_ErrorLeavesSlotEmpty(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := lazy.Start(context.Background(), func(_ context.Context) (string, error) {
			return "", errors.New("boom")
		})
		<-l.Done()

		_, ok := l.Get()
		assert.False(t, ok)
	})
}

func TestInit_ResultSurvivesClose(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := lazy.Start(context.Background(), func(_ context.Context) (int, error) {
			return 7, nil
		})
		<-l.Done()
		l.Close()

		v, ok := l.Get()
		assert.True(t, ok)
		assert.Equal(t, 7, v)
	})
}

func TestHeartbeat(t *testing.T) {
	ctrl, monitor := lazy.NewHeartbeat()
	other := monitor // monitors share the controller's state

	assert.True(t, monitor.IsLive())
	assert.True(t, other.IsLive())

	ctrl.Stop()
	ctrl.Stop()

	assert.False(t, monitor.IsLive())
	assert.False(t, other.IsLive())
}
