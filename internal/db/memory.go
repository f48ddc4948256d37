package db

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Nixie-Tech-LLC/clubsite/internal/model"
)

// MemoryStore keeps enquiries in process. It backs local development when
// DATABASE_URL is unset, and tests.
type MemoryStore struct {
	mu        sync.RWMutex
	enquiries []model.Enquiry
	now       func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (m *MemoryStore) CreateEnquiry(_ context.Context, e *model.Enquiry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.CreatedAt = m.now()
	m.enquiries = append(m.enquiries, *e)
	return nil
}

func (m *MemoryStore) MarkForwarded(_ context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.enquiries {
		if m.enquiries[i].ID == id {
			m.enquiries[i].Forwarded = true
			m.enquiries[i].ForwardedAt = &at
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) ListEnquiries(_ context.Context, kind string, limit int) ([]model.Enquiry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Enquiry, 0, len(m.enquiries))
	for _, e := range m.enquiries {
		if kind == "" || e.Kind == kind {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
