package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/clubsite/internal/http/api"
	"github.com/Nixie-Tech-LLC/clubsite/internal/http/api/admin/packets"
	"github.com/Nixie-Tech-LLC/clubsite/internal/http/middleware"
)

const (
	adminSubject = "admin"
	TokenTTL     = 12 * time.Hour
)

// AuthPublicModule mounts POST /login.
func AuthPublicModule(jwtSecret, passwordHash string) api.Module {
	ctl := &authController{jwtSecret: jwtSecret, passwordHash: passwordHash}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/login", ctl.login)
	})
}

type authController struct {
	jwtSecret    string
	passwordHash string
}

// POST /api/admin/login
func (a *authController) login(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if !middleware.CheckPassword(a.passwordHash, request.Password) {
		log.Warn().Str("ip", ctx.ClientIP()).Msg("[admin] failed login")
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "invalid credentials"}
	}

	token, err := middleware.GenerateJWT(adminSubject, a.jwtSecret, TokenTTL)
	if err != nil {
		log.Error().Err(err).Msg("[admin] could not sign token")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate token"}
	}

	return packets.TokenResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(TokenTTL).UTC().Format(time.RFC3339),
	}, nil
}
