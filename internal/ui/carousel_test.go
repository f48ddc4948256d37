package ui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.Equal(t, 0, Wrap(5, 5))
	assert.Equal(t, 4, Wrap(-1, 5))
	assert.Equal(t, 2, Wrap(7, 5))
	assert.Equal(t, 0, Wrap(3, 0))
	assert.Equal(t, 0, Wrap(-3, 1))
}

func TestCarouselManualNavigation(t *testing.T) {
	c := NewCarousel(3)
	assert.Equal(t, 1, c.tick())
	assert.Equal(t, 2, c.tick())
	assert.Equal(t, 0, c.tick())
	assert.Equal(t, 2, c.Goto(-1))
	assert.Equal(t, 1, c.Goto(4))
}

func TestCarouselEmptyAndSingle(t *testing.T) {
	for _, n := range []int{0, 1} {
		c := NewCarousel(n)
		assert.NotPanics(t, func() {
			c.Goto(9)
			c.Goto(-9)
			c.tick()
		})
		assert.Equal(t, 0, c.Index())
	}
}

func TestCarouselResizeKeepsIndexInRange(t *testing.T) {
	c := NewCarousel(5)
	c.Goto(4)
	c.Resize(2)
	assert.Equal(t, 0, c.Index())
	c.Resize(0)
	assert.Equal(t, 0, c.Index())
}

func TestCarouselAutoAdvances(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := NewCarousel(3)
	go c.Run(ctx, 10*time.Millisecond)

	seen := map[int]bool{}
	assert.Eventually(t, func() bool {
		seen[c.Index()] = true
		return len(seen) == 3
	}, 2*time.Second, 2*time.Millisecond, "carousel should visit every slide")
}

func TestCarouselManualMoveOverridesTimer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := NewCarousel(4)
	go c.Run(ctx, 200*time.Millisecond)

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 2, c.Goto(2))
	// the first tick was due 50ms after Goto; the reset pushed it out
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 2, c.Index())
	assert.Eventually(t, func() bool { return c.Index() == 3 }, 2*time.Second, 5*time.Millisecond)
}

func TestCarouselStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	c := NewCarousel(2)
	go func() {
		c.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
