package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cleanrate/config"
	otelMocks "cleanrate/infras/otel/mocks"
	"cleanrate/shared/cache"
	"cleanrate/shared/constant"
	"cleanrate/transport/http/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newLimited(t *testing.T, enable bool, maxRequests int) (http.Handler, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cache.NewRedisCache(client, otelMocks.NewOtel()))

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return app.RateLimit()(next), mr
}

func hit(h http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/ratings", nil)
	req.Header.Set(constant.RequestHeaderForwardedFor, ip)
	req.Header.Set("User-Agent", "rating-board")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestRateLimit(t *testing.T) {
	h, _ := newLimited(t, true, 2)

	first := hit(h, "10.0.0.1")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get(constant.RequestHeaderRateLimit))
	assert.Equal(t, "1", first.Header().Get(constant.RequestHeaderRateLimitRemaining))

	second := hit(h, "10.0.0.1")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get(constant.RequestHeaderRateLimitRemaining))

	third := hit(h, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, third.Code)

	other := hit(h, "10.0.0.2")
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestRateLimit_WindowExpires(t *testing.T) {
	h, mr := newLimited(t, true, 1)

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1").Code)

	mr.FastForward(61 * time.Second)

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1").Code)
}

func TestRateLimit_RedisDown(t *testing.T) {
	h, mr := newLimited(t, true, 1)
	mr.Close()

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1").Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	h, _ := newLimited(t, false, 1)

	for range 3 {
		rec := hit(h, "10.0.0.1")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
	}
}
