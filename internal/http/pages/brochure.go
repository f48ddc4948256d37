package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/clubsite/internal/content"
)

const brochureName = "affiliations-brochure.pdf"

// brochureMirrorKey sits under the /affiliations purge prefix so a content
// update for affiliations also drops the mirror.
var brochureMirrorKey = content.PurgePrefix("/affiliations/pdf") + ":mirror"

// brochure redirects to the mirrored PDF, mirroring it first when no live
// copy is known. Without storage the PDF is streamed straight through.
func (h *Handler) brochure(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if loc, ok := h.cache.Get(ctx, brochureMirrorKey); ok && len(loc) > 0 {
			c.Redirect(http.StatusFound, string(loc))
			return
		}
	}

	data, contentType, err := h.content.Brochure(ctx)
	if err != nil {
		log.Error().Err(err).Msg("[pages] failed to fetch brochure")
		h.result(c, http.StatusBadGateway, "/affiliations", false, content.Message(err), "")
		return
	}

	if h.storage == nil {
		c.Header("Content-Disposition", `inline; filename="`+brochureName+`"`)
		c.Data(http.StatusOK, contentType, data)
		return
	}

	loc, err := h.storage.Save(ctx, brochureName, data)
	if err != nil {
		log.Error().Err(err).Msg("[pages] failed to mirror brochure")
		c.Header("Content-Disposition", `inline; filename="`+brochureName+`"`)
		c.Data(http.StatusOK, contentType, data)
		return
	}
	log.Info().Str("location", loc).Msg("[pages] brochure mirrored")

	if h.cache != nil {
		if err := h.cache.Set(ctx, brochureMirrorKey, []byte(loc), h.mirrorTTL); err != nil {
			log.Warn().Err(err).Msg("[pages] failed to remember brochure mirror")
		}
	}
	c.Redirect(http.StatusFound, loc)
}
