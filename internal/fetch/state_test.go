package fetch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Nixie-Tech-LLC/clubsite/internal/content"
	"github.com/Nixie-Tech-LLC/clubsite/internal/model"
)

func exactlyOne(t *testing.T, flags ...bool) {
	t.Helper()
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	assert.Equal(t, 1, n, "exactly one view must be active")
}

func TestStatesAreMutuallyExclusive(t *testing.T) {
	cases := map[string]State[[]model.Event]{
		"idle":    {},
		"loading": Pending[[]model.Event](),
		"empty":   Succeeded([]model.Event{}),
		"ready":   Succeeded([]model.Event{{Title: "Gala"}}),
		"failed":  Failed[[]model.Event](errors.New("boom")),
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			exactlyOne(t, s.Pending(), s.Failed(), s.Empty(), s.Ready())
		})
	}
}

func TestStructPayloadIsNeverEmpty(t *testing.T) {
	s := Succeeded(model.ContactInfo{})
	assert.True(t, s.Ready())
	assert.False(t, s.Empty())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Succeeded(1).Message())

	s := Failed[int](&content.Error{Path: "/events", Status: 503, Message: "Down for maintenance"})
	assert.Equal(t, "Down for maintenance", s.Message())

	s = Failed[int](errors.New("connection refused"))
	assert.Equal(t, content.FallbackMessage, s.Message())
}

func TestOr(t *testing.T) {
	fallback := []string{"fallback"}
	assert.Equal(t, fallback, Failed[[]string](errors.New("x")).Or(fallback))
	assert.Equal(t, fallback, Succeeded([]string{}).Or(fallback))
	assert.Equal(t, []string{"live"}, Succeeded([]string{"live"}).Or(fallback))
}

func TestGroupSectionsFailIndependently(t *testing.T) {
	var (
		sports    State[[]string]
		amenities State[[]string]
	)
	g := NewGroup(context.Background())
	Go(g, "sports", &sports, func(context.Context) ([]string, error) {
		return nil, errors.New("sports down")
	})
	Go(g, "amenities", &amenities, func(context.Context) ([]string, error) {
		time.Sleep(20 * time.Millisecond)
		return []string{"Pool", "Spa"}, nil
	})
	g.Wait()

	assert.True(t, sports.Failed())
	assert.True(t, amenities.Ready())
	assert.Equal(t, []string{"Pool", "Spa"}, amenities.Data())
}

func TestGroupRunsConcurrently(t *testing.T) {
	var inflight, peak int32
	work := func(context.Context) (int, error) {
		n := atomic.AddInt32(&inflight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		atomic.AddInt32(&inflight, -1)
		return 1, nil
	}

	var a, b, c State[int]
	g := NewGroup(context.Background())
	Go(g, "a", &a, work)
	Go(g, "b", &b, work)
	Go(g, "c", &c, work)
	g.Wait()

	assert.Equal(t, int32(3), atomic.LoadInt32(&peak))
}

func TestGroupCancellationReachesFetches(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var s State[int]
	g := NewGroup(ctx)
	Go(g, "slow", &s, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	assert.True(t, s.Pending())
	cancel()
	g.Wait()

	assert.True(t, s.Failed())
	assert.True(t, errors.Is(s.Err(), context.Canceled))
}
