package optimistic_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"RecipeHub-Backend/pkg/optimistic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerAdoptsServerResult(t *testing.T) {
	ctrl := optimistic.NewToggleController(false, 3, func(ctx context.Context) (optimistic.ToggleResult, error) {
		return optimistic.ToggleResult{Liked: true, Count: 10}, nil
	})

	err := ctrl.Trigger(context.Background())
	require.NoError(t, err)

	liked, count := ctrl.Snapshot()
	assert.True(t, liked)
	// server count wins over the locally predicted 4
	assert.Equal(t, int64(10), count)
}

func TestTriggerRevertsOnFailure(t *testing.T) {
	ctrl := optimistic.NewToggleController(true, 5, func(ctx context.Context) (optimistic.ToggleResult, error) {
		return optimistic.ToggleResult{}, errors.New("network down")
	})

	err := ctrl.Trigger(context.Background())
	assert.EqualError(t, err, "network down")

	liked, count := ctrl.Snapshot()
	assert.True(t, liked)
	assert.Equal(t, int64(5), count)
	assert.False(t, ctrl.Pending())
}

func TestDoubleToggleReturnsToOriginalState(t *testing.T) {
	liked := false
	var count int64 = 7
	server := func(ctx context.Context) (optimistic.ToggleResult, error) {
		liked = !liked
		if liked {
			count++
		} else {
			count--
		}
		return optimistic.ToggleResult{Liked: liked, Count: count}, nil
	}

	ctrl := optimistic.NewToggleController(false, 7, server)

	require.NoError(t, ctrl.Trigger(context.Background()))
	gotLiked, gotCount := ctrl.Snapshot()
	assert.True(t, gotLiked)
	assert.Equal(t, int64(8), gotCount)

	require.NoError(t, ctrl.Trigger(context.Background()))
	gotLiked, gotCount = ctrl.Snapshot()
	assert.False(t, gotLiked)
	assert.Equal(t, int64(7), gotCount)
}

func TestTriggerIgnoredWhilePending(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	ctrl := optimistic.NewToggleController(false, 0, func(ctx context.Context) (optimistic.ToggleResult, error) {
		close(started)
		<-release
		return optimistic.ToggleResult{Liked: true, Count: 1}, nil
	})

	done := make(chan error, 1)
	go func() {
		done <- ctrl.Trigger(context.Background())
	}()

	<-started
	assert.True(t, ctrl.Pending())
	assert.ErrorIs(t, ctrl.Trigger(context.Background()), optimistic.ErrTogglePending)

	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("toggle did not settle")
	}

	liked, count := ctrl.Snapshot()
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)
	assert.False(t, ctrl.Pending())
}

func TestCountNeverNegative(t *testing.T) {
	// unliking at count zero must not display -1 while pending
	observed := make(chan int64, 1)
	var ctrl *optimistic.ToggleController
	ctrl = optimistic.NewToggleController(true, 0, func(ctx context.Context) (optimistic.ToggleResult, error) {
		_, count := ctrl.Snapshot()
		observed <- count
		// a misbehaving server reporting a negative count is clamped too
		return optimistic.ToggleResult{Liked: false, Count: -2}, nil
	})

	require.NoError(t, ctrl.Trigger(context.Background()))
	assert.Equal(t, int64(0), <-observed)

	_, count := ctrl.Snapshot()
	assert.Equal(t, int64(0), count)
}

func TestNewControllerClampsInitialCount(t *testing.T) {
	ctrl := optimistic.NewToggleController(false, -5, nil)
	_, count := ctrl.Snapshot()
	assert.Equal(t, int64(0), count)
}
