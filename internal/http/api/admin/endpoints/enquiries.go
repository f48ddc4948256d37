package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/clubsite/internal/db"
	"github.com/Nixie-Tech-LLC/clubsite/internal/http/api"
	"github.com/Nixie-Tech-LLC/clubsite/internal/http/api/admin/packets"
	"github.com/Nixie-Tech-LLC/clubsite/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/clubsite/internal/model"
)

const (
	defaultEnquiryLimit = 50
	maxEnquiryLimit     = 500
)

// EnquiryModule mounts GET /enquiries.
func EnquiryModule(store db.Store) api.Module {
	ctl := &enquiryController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/enquiries", ctl.listEnquiries)
	})
}

type enquiryController struct {
	store db.Store
}

func (e *enquiryController) listEnquiries(ctx *gin.Context, _ *middleware.Admin) (any, *api.APIError) {
	kind := ctx.Query("kind")
	switch kind {
	case "", model.EnquiryGeneral, model.EnquiryGuest, model.EnquiryPartnership:
	default:
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown enquiry kind"}
	}

	limit := defaultEnquiryLimit
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid limit"}
		}
		limit = min(n, maxEnquiryLimit)
	}

	all, err := e.store.ListEnquiries(ctx.Request.Context(), kind, limit)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list enquiries"}
	}

	out := make([]packets.EnquiryResponse, 0, len(all))
	for _, x := range all {
		resp := packets.EnquiryResponse{
			ID:            x.ID,
			Kind:          x.Kind,
			Name:          x.Name,
			Email:         x.Email,
			Phone:         x.Phone,
			Message:       x.Message,
			Organisation:  x.Organisation,
			PreferredDate: x.PreferredDate,
			Guests:        x.Guests,
			Forwarded:     x.Forwarded,
			CreatedAt:     x.CreatedAt.Format(time.RFC3339),
		}
		if x.ForwardedAt != nil {
			s := x.ForwardedAt.Format(time.RFC3339)
			resp.ForwardedAt = &s
		}
		out = append(out, resp)
	}
	return out, nil
}
