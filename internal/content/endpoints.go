package content

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Nixie-Tech-LLC/clubsite/internal/model"
)

func (c *Client) ContactInfo(ctx context.Context) (model.ContactInfo, error) {
	return getJSON[model.ContactInfo](ctx, c, "/contact-info")
}

func (c *Client) FooterSports(ctx context.Context) ([]model.FooterLink, error) {
	return getJSON[[]model.FooterLink](ctx, c, "/sports/footer")
}

func (c *Client) FooterAmenities(ctx context.Context) ([]model.FooterLink, error) {
	return getJSON[[]model.FooterLink](ctx, c, "/amenities/footer")
}

func (c *Client) Sports(ctx context.Context) ([]model.Facility, error) {
	return getJSON[[]model.Facility](ctx, c, "/sports")
}

func (c *Client) Amenities(ctx context.Context) ([]model.Facility, error) {
	return getJSON[[]model.Facility](ctx, c, "/amenities")
}

// FeaturedAmenities returns at most n amenities picked by the API.
func (c *Client) FeaturedAmenities(ctx context.Context, n int) ([]model.Facility, error) {
	return getJSON[[]model.Facility](ctx, c, fmt.Sprintf("/amenities/featured/%d", n))
}

func (c *Client) HeroSlides(ctx context.Context) ([]model.HeroSlide, error) {
	return getJSON[[]model.HeroSlide](ctx, c, "/amenities-hero-slider")
}

func (c *Client) AboutUs(ctx context.Context) (model.AboutUs, error) {
	return getJSON[model.AboutUs](ctx, c, "/about-us")
}

func (c *Client) AboutSettings(ctx context.Context) (model.AboutSettings, error) {
	return getJSON[model.AboutSettings](ctx, c, "/about-us-settings")
}

func (c *Client) Affiliations(ctx context.Context) ([]model.Affiliation, error) {
	return getJSON[[]model.Affiliation](ctx, c, "/affiliations")
}

func (c *Client) AffiliationLogos(ctx context.Context) ([]model.AffiliationLogo, error) {
	return getJSON[[]model.AffiliationLogo](ctx, c, "/affiliations/logos")
}

func (c *Client) Gallery(ctx context.Context) ([]model.GalleryImage, error) {
	return getJSON[[]model.GalleryImage](ctx, c, "/gallery")
}

func (c *Client) Events(ctx context.Context) ([]model.Event, error) {
	return getJSON[[]model.Event](ctx, c, "/events")
}

func (c *Client) Testimonials(ctx context.Context) ([]model.Testimonial, error) {
	return getJSON[[]model.Testimonial](ctx, c, "/video-testimonials")
}

// Brochure downloads the affiliations PDF. It bypasses the payload cache.
func (c *Client) Brochure(ctx context.Context) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	data, contentType, err := c.do(ctx, http.MethodGet, "/affiliations/pdf", nil, "application/pdf")
	if err != nil {
		return nil, "", err
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}

// EnquiryPayload is the body accepted by both enquiry endpoints.
type EnquiryPayload struct {
	Reference     string `json:"reference"`
	Type          string `json:"type"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Message       string `json:"message,omitempty"`
	Organisation  string `json:"organisation,omitempty"`
	PreferredDate string `json:"preferred_date,omitempty"`
	Guests        int    `json:"guests,omitempty"`
	SubmittedAt   string `json:"submitted_at"`
}

// NewEnquiryPayload maps a stored enquiry onto the API body.
func NewEnquiryPayload(e model.Enquiry) EnquiryPayload {
	p := EnquiryPayload{
		Reference:   e.ID,
		Type:        e.Kind,
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Message:     e.Message,
		SubmittedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
	if e.Organisation != nil {
		p.Organisation = *e.Organisation
	}
	if e.PreferredDate != nil {
		p.PreferredDate = *e.PreferredDate
	}
	if e.Guests != nil {
		p.Guests = *e.Guests
	}
	return p
}

func (c *Client) SubmitEnquiry(ctx context.Context, p EnquiryPayload) (string, error) {
	return c.post(ctx, "/enquiries", p)
}

func (c *Client) SubmitPartnershipEnquiry(ctx context.Context, p EnquiryPayload) (string, error) {
	return c.post(ctx, "/partnership/enquiry", p)
}
