package mvc_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/mvc"
	"github.com/bjaus/mvc/apitest"
)

func TestRateLimit(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		rate        float64
		burst       int
		numReqs     int
		wantOK      int
		wantLimited int
		wantRetry   string
	}{
		"requests within rate succeed": {
			rate:    100,
			burst:   10,
			numReqs: 5,
			wantOK:  5,
		},
		"requests exceeding rate get 429": {
			rate:        1,
			burst:       1,
			numReqs:     5,
			wantOK:      1,
			wantLimited: 4,
			wantRetry:   "1",
		},
		"slow rate advertises a longer retry": {
			rate:        0.25,
			burst:       1,
			numReqs:     2,
			wantOK:      1,
			wantLimited: 1,
			wantRetry:   "4",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var scopes atomic.Int32
			c := mvc.NewContainer()
			mvc.Provide(c, func(*mvc.Scope) (crud, error) {
				scopes.Add(1)
				return crud{}, nil
			})

			r := mvc.New()
			r.Use(mvc.RateLimit(mvc.RateLimitConfig{Rate: tc.rate, Burst: tc.burst}))
			mvc.RouteTo[crud](r, "/items", c, nil)
			client := apitest.NewClient(t, r)

			okCount, limitedCount := 0, 0
			for range tc.numReqs {
				resp := client.Get(t, "/items")
				switch resp.Status {
				case http.StatusOK:
					okCount++
				case http.StatusTooManyRequests:
					limitedCount++
					assert.Equal(t, tc.wantRetry, resp.Headers.Get("Retry-After"))
				}
			}

			assert.Equal(t, tc.wantOK, okCount, "expected OK responses")
			assert.Equal(t, tc.wantLimited, limitedCount, "expected rate-limited responses")
			assert.Equal(t, int32(tc.wantOK), scopes.Load(), "limited requests never reach the controller")
		})
	}
}

func TestRateLimit_custom_key_func(t *testing.T) {
	t.Parallel()

	r := mvc.New()
	r.Use(mvc.RateLimit(mvc.RateLimitConfig{
		Rate:  1,
		Burst: 1,
		KeyFunc: func(r *http.Request) string {
			return r.URL.Query().Get("user")
		},
	}))
	mvc.RouteTo[crud](r, "/items", valueContainer(crud{}), nil)
	client := apitest.NewClient(t, r)

	assert.Equal(t, http.StatusOK, client.Get(t, "/items?user=a").Status)
	assert.Equal(t, http.StatusTooManyRequests, client.Get(t, "/items?user=a").Status)
	assert.Equal(t, http.StatusOK, client.Get(t, "/items?user=b").Status)
}

func TestRateLimit_default_keyfunc_without_port(t *testing.T) {
	t.Parallel()

	handler := mvc.RateLimit(mvc.RateLimitConfig{Rate: 100, Burst: 10})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1"
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_idle_limiters_are_pruned(t *testing.T) {
	t.Parallel()

	handler := mvc.RateLimit(mvc.RateLimitConfig{
		Rate:            0.001,
		Burst:           1,
		CleanupInterval: time.Millisecond,
		MaxIdle:         time.Millisecond,
	})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func() int {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do())
	time.Sleep(5 * time.Millisecond)

	// The exhausted limiter was dropped, so a fresh bucket admits the request.
	assert.Equal(t, http.StatusOK, do())
}

func TestRateLimit_custom_on_limit(t *testing.T) {
	t.Parallel()

	handler := mvc.RateLimit(mvc.RateLimitConfig{
		Rate:  1,
		Burst: 1,
		OnLimit: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		},
	})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	client := apitest.NewClient(t, handler)
	assert.Equal(t, http.StatusOK, client.Get(t, "/").Status)
	assert.Equal(t, http.StatusServiceUnavailable, client.Get(t, "/").Status)
}
