package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/clubsite/internal/model"
)

var ErrNotFound = errors.New("enquiry not found")

// CreateEnquiry inserts e and fills CreatedAt from the database clock.
func (s *pgStore) CreateEnquiry(ctx context.Context, e *model.Enquiry) error {
	query := `
	INSERT INTO enquiries
	(id, kind, name, email, phone, message, organisation, preferred_date, guests, forwarded, created_at)
	VALUES
	($1, $2,   $3,   $4,    $5,    $6,      $7,           $8,             $9,     false,     now())
	RETURNING created_at;`

	if err := s.db.GetContext(ctx, &e.CreatedAt, query,
		e.ID,
		e.Kind,
		e.Name,
		e.Email,
		e.Phone,
		e.Message,
		e.Organisation,
		e.PreferredDate,
		e.Guests,
	); err != nil {
		log.Error().Err(err).Str("kind", e.Kind).Msg("[enquiry] failed to insert enquiry")
		return fmt.Errorf("insert enquiry: %w", err)
	}
	return nil
}

func (s *pgStore) MarkForwarded(ctx context.Context, id string, at time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE enquiries SET forwarded = true, forwarded_at = $2 WHERE id = $1;`, id, at)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("[enquiry] failed to mark forwarded")
		return fmt.Errorf("mark forwarded: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) ListEnquiries(ctx context.Context, kind string, limit int) ([]model.Enquiry, error) {
	var all []model.Enquiry
	query := `
	SELECT
	id,
	kind,
	name,
	email,
	phone,
	message,
	organisation,
	preferred_date,
	guests,
	forwarded,
	forwarded_at,
	created_at
	FROM enquiries
	WHERE ($1 = '' OR kind = $1)
	ORDER BY created_at DESC
	LIMIT NULLIF($2, 0);
	`
	if err := s.db.SelectContext(ctx, &all, query, kind, limit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []model.Enquiry{}, nil
		}
		log.Error().Err(err).Msg("[enquiry] failed to list enquiries")
		return nil, err
	}
	return all, nil
}
