package ui

import "sync"

// ScrollLock counts open overlays. The page body is locked while at least
// one holder has not released.
type ScrollLock struct {
	mu      sync.Mutex
	holders int
}

// Acquire takes a hold and returns its release func. Calling release more
// than once is a no-op.
func (l *ScrollLock) Acquire() (release func()) {
	l.mu.Lock()
	l.holders++
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.holders--
			l.mu.Unlock()
		})
	}
}

func (l *ScrollLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders > 0
}
