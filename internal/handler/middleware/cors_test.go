//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rental-pricing/internal/handler/middleware"
	"rental-pricing/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	base := config.CORSConfig{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantOrigin string
		wantCreds  string
	}{
		{name: "listed origin", origins: []string{"http://admin.local"}, origin: "http://admin.local", wantOrigin: "http://admin.local", wantCreds: "true"},
		{name: "unlisted origin", origins: []string{"http://admin.local"}, origin: "http://evil.local", wantOrigin: ""},
		{name: "wildcard drops credentials", origins: []string{"*"}, origin: "http://anywhere.local", wantOrigin: "*", wantCreds: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.AllowOrigins = tt.origins

			r := gin.New()
			r.Use(middleware.NewCORSMiddleware(cfg))
			r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCreds, w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}
