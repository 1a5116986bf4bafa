package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/logger"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/ratelimit"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func whoami(c *gin.Context) {
	id, role, ok := CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"id": id, "role": role, "ok": ok})
}

func newAuthRouter(auth *Auth) *gin.Engine {
	r := gin.New()
	r.GET("/strict", auth.JWTAuth(), whoami)
	r.GET("/optional", auth.OptionalJWTAuth(), whoami)
	r.GET("/admin", auth.JWTAuth(), RequireRoles("admin"), whoami)
	r.GET("/staff", auth.OptionalJWTAuth(), RequireRoles("tutor", "admin"), whoami)
	return r
}

func TestAuth(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	auth := NewAuth(issuer, "jwt")
	r := newAuthRouter(auth)

	studentToken, _, err := issuer.Issue(7, "student")
	require.NoError(t, err)
	adminToken, _, err := issuer.Issue(1, "admin")
	require.NoError(t, err)

	expired := token.NewIssuer("secret", -time.Minute)
	expiredToken, _, err := expired.Issue(7, "student")
	require.NoError(t, err)

	tests := []struct {
		name       string
		path       string
		cookie     string
		bearer     string
		wantStatus int
		wantBody   string
	}{
		{"strict without token", "/strict", "", "", http.StatusUnauthorized, "authentication required"},
		{"strict with cookie", "/strict", studentToken, "", http.StatusOK, `"id":7`},
		{"strict with bearer", "/strict", "", studentToken, http.StatusOK, `"role":"student"`},
		{"strict with garbage", "/strict", "", "garbage", http.StatusUnauthorized, "invalid session"},
		{"strict with expired", "/strict", expiredToken, "", http.StatusUnauthorized, "session expired"},
		{"optional anonymous", "/optional", "", "", http.StatusOK, `"ok":false`},
		{"optional invalid stays anonymous", "/optional", "", "garbage", http.StatusOK, `"ok":false`},
		{"optional with token", "/optional", studentToken, "", http.StatusOK, `"ok":true`},
		{"role gate rejects student", "/admin", studentToken, "", http.StatusForbidden, "insufficient role"},
		{"role gate allows admin", "/admin", adminToken, "", http.StatusOK, `"role":"admin"`},
		{"role gate without identity", "/staff", "", "", http.StatusUnauthorized, "authentication required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "jwt", Value: tt.cookie})
			}
			if tt.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tt.bearer)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(ratelimit.NewFixedWindow(2, time.Minute), "api"))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("secret detail") })
	r.NoRoute(NotFound())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "secret detail")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(logger.Nop()))
	r.GET("/id", func(c *gin.Context) {
		id, _ := logger.RequestID(c.Request.Context())
		c.String(http.StatusOK, id)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
}
