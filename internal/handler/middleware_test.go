package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"payment-automation/internal/cache"
)

func cachedRouter(store cache.Cache) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	hits := 0
	r := gin.New()
	r.Use(CacheResponses(store, time.Minute))
	r.GET("/api/products", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"status": "success", "hits": hits})
	})
	r.POST("/api/products", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"status": "success"})
	})
	return r, &hits
}

func TestCacheServesSecondRead(t *testing.T) {
	r, hits := cachedRouter(cache.NewMemory())

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, *hits)
}

func TestCacheKeyIncludesQueryString(t *testing.T) {
	r, hits := cachedRouter(cache.NewMemory())

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/api/products?page=1", nil))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/api/products?page=2", nil))

	assert.Equal(t, 2, *hits, "different query strings must not share cache entries")
}

func TestCacheInvalidatedByWrite(t *testing.T) {
	r, hits := cachedRouter(cache.NewMemory())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/products", nil))
	after := httptest.NewRecorder()
	r.ServeHTTP(after, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, "MISS", after.Header().Get("X-Cache"))
	assert.Equal(t, 2, *hits)
}

func TestCacheSkipsWebhookPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hits := 0
	r := gin.New()
	r.Use(CacheResponses(cache.NewMemory(), time.Minute))
	r.GET("/api/webhooks/mercadopago", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"hits": hits})
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/webhooks/mercadopago", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/webhooks/mercadopago", nil))

	assert.Equal(t, 2, hits)
}

func TestRateLimitRejectsBursts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(3, time.Minute))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusOK, codes[2])
	assert.Equal(t, http.StatusTooManyRequests, codes[3])
	assert.Equal(t, http.StatusTooManyRequests, codes[4])
}

func TestRateLimitSweepsIdleClients(t *testing.T) {
	limiter := newRateLimiter(3, time.Minute)
	start := time.Now()

	limiter.allow("203.0.113.7", start)
	assert.Len(t, limiter.clients, 1)

	// A request from another client after two idle windows evicts the first.
	limiter.allow("203.0.113.8", start.Add(3*time.Minute))

	assert.Len(t, limiter.clients, 1)
	assert.NotContains(t, limiter.clients, "203.0.113.7")
	assert.Contains(t, limiter.clients, "203.0.113.8")
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
