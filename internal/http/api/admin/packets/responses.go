package packets

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type PurgeResponse struct {
	Prefix string `json:"prefix"`
	Purged int    `json:"purged"`
}

// EnquiryResponse mirrors model.Enquiry with times flattened to RFC3339.
type EnquiryResponse struct {
	ID            string  `json:"id"`
	Kind          string  `json:"kind"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Message       string  `json:"message"`
	Organisation  *string `json:"organisation,omitempty"`
	PreferredDate *string `json:"preferred_date,omitempty"`
	Guests        *int    `json:"guests,omitempty"`
	Forwarded     bool    `json:"forwarded"`
	ForwardedAt   *string `json:"forwarded_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
