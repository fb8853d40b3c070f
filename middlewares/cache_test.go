package middlewares_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/navya24shree/Campus-Event-Management-System/middlewares"
)

func TestResponseCache_MissThenHit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	t.Cleanup(func() { mr.Close() })
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	s := gin.New()
	s.Use(middlewares.ResponseCache(rdb, 30*time.Second))
	s.GET("/api/events", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": 1})
	})

	w1 := httptest.NewRecorder()
	s.ServeHTTP(w1, httptest.NewRequest("GET", "/api/events", nil))
	if w1.Header().Get("X-Cache") != "MISS" {
		t.Fatalf("want MISS, got %q", w1.Header().Get("X-Cache"))
	}

	w2 := httptest.NewRecorder()
	s.ServeHTTP(w2, httptest.NewRequest("GET", "/api/events", nil))
	if w2.Header().Get("X-Cache") != "HIT" {
		t.Fatalf("want HIT, got %q", w2.Header().Get("X-Cache"))
	}
	if w2.Body.String() != w1.Body.String() {
		t.Fatalf("cached body mismatch: %q vs %q", w2.Body.String(), w1.Body.String())
	}
}

func TestResponseCache_SkipsNonCatalogPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	t.Cleanup(func() { mr.Close() })
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	s := gin.New()
	s.Use(middlewares.ResponseCache(rdb, 30*time.Second))
	s.GET("/api/registrations", func(c *gin.Context) { c.JSON(200, gin.H{"ok": 1}) })

	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest("GET", "/api/registrations", nil))
	if got := w.Header().Get("X-Cache"); got != "" {
		t.Fatalf("want no X-Cache on uncached path, got %q", got)
	}
}
