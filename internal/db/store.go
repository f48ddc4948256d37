// exposes the enquiry log the form handlers write to
package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Nixie-Tech-LLC/clubsite/internal/model"
)

type Store interface {
	CreateEnquiry(ctx context.Context, e *model.Enquiry) error
	MarkForwarded(ctx context.Context, id string, at time.Time) error
	// ListEnquiries returns the newest enquiries first; an empty kind lists all.
	ListEnquiries(ctx context.Context, kind string, limit int) ([]model.Enquiry, error)
}

type pgStore struct {
	db *sqlx.DB
}

var _ Store = (*pgStore)(nil)

func NewStore(db *sqlx.DB) Store {
	return &pgStore{db: db}
}
