// Package optimistic keeps toggle-style controls responsive: the local state
// flips immediately, the real operation runs behind it, and the server result
// reconciles or rolls back the prediction.
package optimistic

import (
	"context"
	"errors"
	"sync"
)

// ErrTogglePending is returned when a trigger arrives while a toggle is
// still in flight; the attempt is ignored, not queued.
var ErrTogglePending = errors.New("toggle already in progress")

type (
	// ToggleResult is the server's ground truth after a toggle.
	ToggleResult struct {
		Liked bool
		Count int64
	}

	// ToggleFunc performs the underlying toggle against the backend.
	ToggleFunc func(ctx context.Context) (ToggleResult, error)

	// ToggleController drives one like control. At most one toggle is
	// outstanding per controller; the displayed count never goes negative.
	ToggleController struct {
		mu      sync.Mutex
		liked   bool
		count   int64
		pending bool
		toggle  ToggleFunc
	}
)

func NewToggleController(liked bool, count int64, toggle ToggleFunc) *ToggleController {
	return &ToggleController{
		liked:  liked,
		count:  clamp(count),
		toggle: toggle,
	}
}

// Trigger flips the local state optimistically and runs the toggle. On
// success the server's liked/count win over the prediction; on failure the
// pre-trigger state is restored and the error returned.
func (c *ToggleController) Trigger(ctx context.Context) error {
	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return ErrTogglePending
	}

	prevLiked, prevCount := c.liked, c.count
	c.liked = !c.liked
	if c.liked {
		c.count = clamp(c.count + 1)
	} else {
		c.count = clamp(c.count - 1)
	}
	c.pending = true
	c.mu.Unlock()

	result, err := c.toggle(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false

	if err != nil {
		c.liked, c.count = prevLiked, prevCount
		return err
	}

	c.liked = result.Liked
	c.count = clamp(result.Count)
	return nil
}

// Snapshot returns the currently displayed state.
func (c *ToggleController) Snapshot() (liked bool, count int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.liked, c.count
}

// Pending reports whether a toggle is in flight.
func (c *ToggleController) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

func clamp(count int64) int64 {
	if count < 0 {
		return 0
	}
	return count
}
