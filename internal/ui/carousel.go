// Package ui holds the small pieces of interactive state the pages render:
// slide and lightbox positions, category filters, accordions and the body
// scroll lock.
package ui

import (
	"context"
	"sync"
	"time"
)

// Wrap maps i into [0, n). Lists with no items always yield 0.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func NextIndex(i, n int) int { return Wrap(i+1, n) }

func PrevIndex(i, n int) int { return Wrap(i-1, n) }

// Carousel is an auto-advancing slide position. Manual moves restart the
// timer so the slide a visitor picked stays up for a full interval.
type Carousel struct {
	mu    sync.Mutex
	n     int
	index int
	reset chan struct{}
}

func NewCarousel(n int) *Carousel {
	if n < 0 {
		n = 0
	}
	return &Carousel{n: n, reset: make(chan struct{}, 1)}
}

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Resize changes the slide count, keeping the position in range.
func (c *Carousel) Resize(n int) {
	if n < 0 {
		n = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n = n
	c.index = Wrap(c.index, n)
}

// Goto shows slide i, wrapped into range, and restarts the timer.
func (c *Carousel) Goto(i int) int { return c.move(func(int, int) int { return i }, true) }

func (c *Carousel) tick() int { return c.move(func(i, n int) int { return i + 1 }, false) }

func (c *Carousel) move(to func(i, n int) int, manual bool) int {
	c.mu.Lock()
	c.index = Wrap(to(c.index, c.n), c.n)
	idx := c.index
	c.mu.Unlock()

	if manual {
		select {
		case c.reset <- struct{}{}:
		default:
		}
	}
	return idx
}

// Run advances the carousel every interval until ctx is done.
func (c *Carousel) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.reset:
			t.Reset(interval)
		case <-t.C:
			c.tick()
		}
	}
}
