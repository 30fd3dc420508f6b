//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salon-reserve/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:  []string{"http://salon.example"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost},
		AllowHeaders:  []string{"Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        time.Hour,
	}))
	r.POST("/api/reservations", func(c *gin.Context) { c.Status(http.StatusCreated) })

	t.Run("preflight allows the idempotency header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/reservations", nil)
		req.Header.Set("Origin", "http://salon.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Idempotency-Key")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Idempotency-Key")
	})

	t.Run("replay header is exposed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/reservations", nil)
		req.Header.Set("Origin", "http://salon.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		exposed := w.Header().Get("Access-Control-Expose-Headers")
		assert.Contains(t, exposed, "Idempotent-Replayed")
		assert.Contains(t, exposed, "Content-Length")
	})
}

func TestWithHeaders(t *testing.T) {
	got := withHeaders([]string{"Accept", "Authorization"}, requiredAllowHeaders)
	assert.Equal(t, []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key"}, got)
}
