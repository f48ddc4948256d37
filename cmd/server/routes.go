package main

import (
	"html/template"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/clubsite/internal/cache"
	"github.com/Nixie-Tech-LLC/clubsite/internal/db"
	"github.com/Nixie-Tech-LLC/clubsite/internal/http/api"
	adminapi "github.com/Nixie-Tech-LLC/clubsite/internal/http/api/admin/endpoints"
	"github.com/Nixie-Tech-LLC/clubsite/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/clubsite/internal/http/pages"
	"github.com/Nixie-Tech-LLC/clubsite/internal/web"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, site *pages.Handler, store db.Store, payloads cache.Cache, tmpl *template.Template) {
	r.SetHTMLTemplate(tmpl)

	// CORS for the admin dashboard
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	if env.SecretKey != "" {
		api.MountGroup(r, api.GroupConfig{
			Prefix: "/api/admin",
			Auth:   false,
		},
			adminapi.AuthPublicModule(env.SecretKey, env.AdminPasswordHash),
		)

		api.MountGroup(r, api.GroupConfig{
			Prefix:    "/api/admin",
			Auth:      true,
			SecretKey: env.SecretKey,
		},
			adminapi.CacheModule(payloads),
			adminapi.EnquiryModule(store),
		)
	} else {
		log.Warn().Msg("JWT_SECRET not set, admin API disabled")
	}

	// Static content
	r.StaticFS("/static", web.Static())
	if !env.UseSpaces {
		r.Static("/uploads", env.UploadsDir)
	}

	public := r.Group("/", middleware.NoCache())
	site.Register(public)
	r.NoRoute(middleware.NoCache(), site.NotFound)
}
