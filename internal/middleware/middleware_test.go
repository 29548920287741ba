package middleware

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joshua-takyi/wearorithm/internal/helpers"
	"github.com/joshua-takyi/wearorithm/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		id, _ := c.Get("request_id")
		c.String(http.StatusOK, id.(string))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get("X-Request-ID") == "" || w.Body.String() != w.Header().Get("X-Request-ID") {
		t.Errorf("generated request id not propagated: header=%q body=%q", w.Header().Get("X-Request-ID"), w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want abc-123", got)
	}
}

func TestStructuredLoggerWritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(RequestID(), StructuredLogger(logger))
	r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health?x=1", nil))

	line := buf.String()
	for _, want := range []string{`"msg":"HTTP Request"`, `"path":"/api/health?x=1"`, `"status":204`, `"request_id"`} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %s missing %s", line, want)
		}
	}
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(discardLogger()))
	r.GET("/fail", func(c *gin.Context) { _ = c.Error(errors.New("disk on fire")) })
	r.GET("/handled", func(c *gin.Context) {
		_ = c.Error(errors.New("logged only"))
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("bad input"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
	if w.Code != http.StatusInternalServerError || !strings.Contains(w.Body.String(), `"message":"disk on fire"`) {
		t.Errorf("got %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/handled", nil))
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "bad input") {
		t.Errorf("got %d %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddleware(t *testing.T) {
	tokens := helpers.NewTokenIssuer("test-secret", time.Hour)
	user := &models.User{ID: uuid.New(), Email: "jane@example.com", Username: "janedoe"}
	valid, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	forged, err := helpers.NewTokenIssuer("other-secret", time.Hour).Issue(user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	r := gin.New()
	r.Use(AuthMiddleware(tokens, discardLogger()))
	r.GET("/me", func(c *gin.Context) {
		claims := c.MustGet(UserKey).(*helpers.Claims)
		c.String(http.StatusOK, claims.UserID)
	})

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{"missing header", "", http.StatusUnauthorized, "Access token required"},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, "Access token required"},
		{"forged token", "Bearer " + forged, http.StatusForbidden, "Invalid or expired token"},
		{"garbage token", "Bearer nope", http.StatusForbidden, "Invalid or expired token"},
		{"valid token", "Bearer " + valid, http.StatusOK, user.ID.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body = %s, want it to contain %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRateLimitByIP(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitByIP(2, time.Minute))
	r.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want [200 200 429]", codes)
	}

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "198.51.100.1:4000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("other client got %d, want 200", w.Code)
	}
}

func TestMetricsMiddlewarePassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/api/outfits/:id", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/outfits/123", nil))
	if w.Code != http.StatusAccepted {
		t.Errorf("status = %d", w.Code)
	}
}
