package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(limit int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewRateLimiter(limit, window).Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doRequest(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiterBlocksOverBudget(t *testing.T) {
	router := newLimitedRouter(3, time.Hour)

	for i := 0; i < 3; i++ {
		if w := doRequest(router, "10.0.0.1"); w.Code != http.StatusOK {
			t.Fatalf("request %d should pass, got %d", i+1, w.Code)
		}
	}

	w := doRequest(router, "10.0.0.1")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("request over budget should get 429, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Çok fazla istek gönderildi") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestRateLimiterIsPerIP(t *testing.T) {
	router := newLimitedRouter(1, time.Hour)

	if w := doRequest(router, "10.0.0.1"); w.Code != http.StatusOK {
		t.Fatalf("first client should pass, got %d", w.Code)
	}
	if w := doRequest(router, "10.0.0.1"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("first client should be limited, got %d", w.Code)
	}
	if w := doRequest(router, "10.0.0.2"); w.Code != http.StatusOK {
		t.Errorf("second client has its own budget, got %d", w.Code)
	}
}
