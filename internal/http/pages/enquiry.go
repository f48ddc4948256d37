package pages

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/clubsite/internal/content"
	"github.com/Nixie-Tech-LLC/clubsite/internal/model"
)

const (
	thankYouMessage = "Thank you, we'll be in touch shortly."
	invalidMessage  = "Please provide your name and a valid email address."
	missingOrgMsg   = "Please tell us which organisation you represent."
)

type enquiryForm struct {
	Type          string `form:"type"`
	Name          string `form:"name"           binding:"required"`
	Email         string `form:"email"          binding:"required,email"`
	Phone         string `form:"phone"`
	Message       string `form:"message"`
	Organisation  string `form:"organisation"`
	PreferredDate string `form:"preferred_date"`
	Guests        int    `form:"guests"         binding:"omitempty,min=0,max=50"`
	Return        string `form:"return"`
}

func (f enquiryForm) enquiry(kind string) model.Enquiry {
	e := model.Enquiry{
		ID:      uuid.NewString(),
		Kind:    kind,
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Message: strings.TrimSpace(f.Message),
	}
	if s := strings.TrimSpace(f.Organisation); s != "" {
		e.Organisation = &s
	}
	if s := strings.TrimSpace(f.PreferredDate); s != "" {
		e.PreferredDate = &s
	}
	if f.Guests > 0 {
		g := f.Guests
		e.Guests = &g
	}
	return e
}

// backURL only follows local paths.
func backURL(raw, fallback string) string {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return fallback
	}
	return raw
}

type forwardFunc func(ctx context.Context, p content.EnquiryPayload) (string, error)

func (h *Handler) submitEnquiry(c *gin.Context) {
	var form enquiryForm
	err := c.ShouldBind(&form)

	kind := model.EnquiryGeneral
	fallback := "/contact"
	if form.Type == model.EnquiryGuest {
		kind = model.EnquiryGuest
		fallback = "/guest-registration"
	}
	back := backURL(form.Return, fallback)

	if err != nil {
		log.Debug().Err(err).Msg("[enquiry] invalid form")
		h.result(c, http.StatusBadRequest, back, false, invalidMessage, "")
		return
	}
	h.accept(c, form.enquiry(kind), back, h.content.SubmitEnquiry)
}

func (h *Handler) submitPartnership(c *gin.Context) {
	var form enquiryForm
	err := c.ShouldBind(&form)
	back := backURL(form.Return, "/affiliations")

	switch {
	case err != nil:
		log.Debug().Err(err).Msg("[enquiry] invalid partnership form")
		h.result(c, http.StatusBadRequest, back, false, invalidMessage, "")
		return
	case strings.TrimSpace(form.Organisation) == "":
		h.result(c, http.StatusBadRequest, back, false, missingOrgMsg, "")
		return
	}
	h.accept(c, form.enquiry(model.EnquiryPartnership), back, h.content.SubmitPartnershipEnquiry)
}

// accept logs the enquiry, forwards it to the content API and tells staff.
// An enquiry that could not be forwarded stays logged with forwarded=false.
func (h *Handler) accept(c *gin.Context, e model.Enquiry, back string, forward forwardFunc) {
	ctx := c.Request.Context()

	stored := true
	if err := h.store.CreateEnquiry(ctx, &e); err != nil {
		stored = false
		log.Error().Err(err).Str("id", e.ID).Str("kind", e.Kind).Msg("[enquiry] failed to store enquiry")
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = h.now()
	}

	msg, err := forward(ctx, content.NewEnquiryPayload(e))
	if err != nil {
		log.Error().Err(err).Str("id", e.ID).Str("kind", e.Kind).Msg("[enquiry] failed to forward enquiry")
		h.result(c, http.StatusBadGateway, back, false, content.Message(err), e.ID)
		return
	}

	now := h.now()
	e.Forwarded = true
	e.ForwardedAt = &now
	if stored {
		if err := h.store.MarkForwarded(ctx, e.ID, now); err != nil {
			log.Warn().Err(err).Str("id", e.ID).Msg("[enquiry] failed to mark enquiry forwarded")
		}
	}

	if h.notifier != nil {
		if err := h.notifier.EnquiryReceived(e); err != nil {
			log.Warn().Err(err).Str("id", e.ID).Msg("[enquiry] failed to publish notification")
		}
	}

	log.Info().Str("id", e.ID).Str("kind", e.Kind).Msg("[enquiry] enquiry accepted")
	if msg == "" {
		msg = thankYouMessage
	}
	h.result(c, http.StatusOK, back, true, msg, e.ID)
}

func (h *Handler) result(c *gin.Context, status int, back string, ok bool, msg, ref string) {
	data := resultPage{Success: ok, Message: msg, Reference: ref, BackURL: back}
	g := h.begin(c, &data.Layout, "Enquiry")
	g.Wait()
	data.RetryURL = back
	h.render(c, status, "enquiry_result.html", data)
}
