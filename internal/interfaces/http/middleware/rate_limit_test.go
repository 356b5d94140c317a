package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/pkg/logger"
)

// counterHook answers INCR and EXPIRE from memory so no redis server is needed
type counterHook struct {
	mu      sync.Mutex
	counts  map[string]int64
	expires map[string]time.Duration
	err     error
}

func newCounterHook() *counterHook {
	return &counterHook{
		counts:  make(map[string]int64),
		expires: make(map[string]time.Duration),
	}
}

func (h *counterHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return nil, errors.New("dial disabled in tests")
	}
}

func (h *counterHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		h.mu.Lock()
		defer h.mu.Unlock()

		if h.err != nil {
			cmd.SetErr(h.err)
			return h.err
		}

		key, _ := cmd.Args()[1].(string)
		switch c := cmd.(type) {
		case *redis.IntCmd:
			h.counts[key]++
			c.SetVal(h.counts[key])
		case *redis.BoolCmd:
			ttl, _ := cmd.Args()[2].(int64)
			h.expires[key] = time.Duration(ttl) * time.Second
			c.SetVal(true)
		}
		return nil
	}
}

func (h *counterHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func newRateLimitedRouter(limit int, hook *counterHook) *gin.Engine {
	gin.SetMode(gin.TestMode)

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	client.AddHook(hook)

	cfg := &config.Config{Security: config.SecurityConfig{RateLimitPerMinute: limit}}
	r := gin.New()
	r.Use(RateLimit(cfg, client, logger.Discard()))
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimitRejectsAfterLimit(t *testing.T) {
	hook := newCounterHook()
	r := newRateLimitedRouter(2, hook)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, time.Minute, hook.expires["rate_limit:192.0.2.1"])
}

func TestRateLimitHoldsUnderConcurrency(t *testing.T) {
	const limit = 5
	r := newRateLimitedRouter(limit, newCounterHook())

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			if w.Code == http.StatusOK {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, limit, allowed)
}

func TestRateLimitFailsOpen(t *testing.T) {
	hook := newCounterHook()
	hook.err = errors.New("connection refused")
	r := newRateLimitedRouter(1, hook)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}
