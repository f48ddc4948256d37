package endpoints

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/clubsite/internal/content"
	"github.com/Nixie-Tech-LLC/clubsite/internal/http/api"
	"github.com/Nixie-Tech-LLC/clubsite/internal/http/api/admin/packets"
	"github.com/Nixie-Tech-LLC/clubsite/internal/http/middleware"
)

type Purger interface {
	Purge(ctx context.Context, prefix string) (int, error)
}

// CacheModule mounts POST /cache/purge.
func CacheModule(purger Purger) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/cache/purge", func(ctx *gin.Context, admin *middleware.Admin) (any, *api.APIError) {
			var request packets.PurgeRequest
			if ctx.Request.ContentLength > 0 {
				if err := ctx.ShouldBindJSON(&request); err != nil {
					return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
				}
			}

			prefix := content.PurgePrefix(request.Resource)
			n, err := purger.Purge(ctx.Request.Context(), prefix)
			if err != nil {
				log.Error().Err(err).Str("prefix", prefix).Msg("[admin] cache purge failed")
				return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not purge cache"}
			}

			log.Info().Str("by", admin.Subject).Str("prefix", prefix).Int("purged", n).Msg("[admin] cache purged")
			return packets.PurgeResponse{Prefix: prefix, Purged: n}, nil
		})
	})
}
