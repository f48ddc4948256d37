package model

import "time"

const (
	EnquiryGeneral     = "general"
	EnquiryPartnership = "partnership"
	EnquiryGuest       = "guest"
)

// Enquiry is a submitted contact, guest registration or partnership form.
type Enquiry struct {
	ID            string     `db:"id"             json:"id"`
	Kind          string     `db:"kind"           json:"kind"`
	Name          string     `db:"name"           json:"name"`
	Email         string     `db:"email"          json:"email"`
	Phone         string     `db:"phone"          json:"phone"`
	Message       string     `db:"message"        json:"message"`
	Organisation  *string    `db:"organisation"   json:"organisation,omitempty"`
	PreferredDate *string    `db:"preferred_date" json:"preferred_date,omitempty"`
	Guests        *int       `db:"guests"         json:"guests,omitempty"`
	Forwarded     bool       `db:"forwarded"      json:"forwarded"`
	ForwardedAt   *time.Time `db:"forwarded_at"   json:"forwarded_at,omitempty"`
	CreatedAt     time.Time  `db:"created_at"     json:"created_at"`
}
