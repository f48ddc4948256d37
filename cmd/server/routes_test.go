package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/clubsite/internal/cache"
	"github.com/Nixie-Tech-LLC/clubsite/internal/content"
	"github.com/Nixie-Tech-LLC/clubsite/internal/db"
	"github.com/Nixie-Tech-LLC/clubsite/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/clubsite/internal/http/pages"
	"github.com/Nixie-Tech-LLC/clubsite/internal/web"
)

// contentAPI answers every path with an empty list and counts /sports hits.
func contentAPI(t *testing.T, sportsHits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/sports":
			atomic.AddInt32(sportsHits, 1)
			_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1,"title":"Squash","slug":"squash","category":"racquet"}]}`))
		case "/contact-info", "/about-us", "/about-us-settings":
			_, _ = w.Write([]byte(`{}`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setupApp(t *testing.T, env Environment, apiURL string) (*gin.Engine, cache.Cache) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	payloads := cache.NewMemory()
	client := content.New(apiURL, content.WithCache(payloads, content.DefaultCacheTTL))
	store := db.NewMemoryStore()

	tmpl, err := web.Templates()
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r, env, pages.New(pages.Config{Content: client, Store: store, Cache: payloads}), store, payloads, tmpl)
	return r, payloads
}

func request(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPublicRoutes(t *testing.T) {
	var hits int32
	api := contentAPI(t, &hits)
	r, _ := setupApp(t, Environment{UploadsDir: t.TempDir()}, api.URL)

	w := request(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(r, http.MethodGet, "/static/css/site.css", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(r, http.MethodGet, "/sports", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Squash")
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")

	w = request(r, http.MethodGet, "/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminPurgeRefetchesContent(t *testing.T) {
	var hits int32
	api := contentAPI(t, &hits)

	hash, err := middleware.HashPassword("clubadmin")
	require.NoError(t, err)
	r, _ := setupApp(t, Environment{SecretKey: "supersecret", AdminPasswordHash: hash, UploadsDir: t.TempDir()}, api.URL)

	request(r, http.MethodGet, "/sports", "", nil)
	request(r, http.MethodGet, "/sports", "", nil)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	w := request(r, http.MethodPost, "/api/admin/cache/purge", "", map[string]string{"resource": "sports"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(r, http.MethodPost, "/api/admin/login", "", map[string]string{"password": "clubadmin"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var tok struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))

	w = request(r, http.MethodPost, "/api/admin/cache/purge", tok.Token, map[string]string{"resource": "sports"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	request(r, http.MethodGet, "/sports", "", nil)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestAdminDisabledWithoutSecret(t *testing.T) {
	var hits int32
	api := contentAPI(t, &hits)
	r, _ := setupApp(t, Environment{UploadsDir: t.TempDir()}, api.URL)

	w := request(r, http.MethodPost, "/api/admin/login", "", map[string]string{"password": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
