package http_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/drawguide"
	dghttp "github.com/fwojciec/drawguide/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements drawguide.DomainLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ drawguide.DomainLimiter = dghttp.NewDomainLimiter(1, 1)
	})

	t.Run("allows burst immediately", func(t *testing.T) {
		t.Parallel()

		limiter := dghttp.NewDomainLimiter(1, 3)

		start := time.Now()
		for range 3 {
			require.NoError(t, limiter.Wait(context.Background(), "easydrawingguides.com"))
		}

		assert.Less(t, time.Since(start), 50*time.Millisecond, "burst should not wait")
	})

	t.Run("rate limits requests to same host", func(t *testing.T) {
		t.Parallel()

		limiter := dghttp.NewDomainLimiter(10, 1) // 100ms between requests

		require.NoError(t, limiter.Wait(context.Background(), "easydrawingguides.com"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "EasyDrawingGuides.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "host match should be case-insensitive")
	})

	t.Run("different hosts have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := dghttp.NewDomainLimiter(10, 1)

		require.NoError(t, limiter.Wait(context.Background(), "easydrawingguides.com"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "other.com")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond, "different host should not wait")
	})

	t.Run("non-positive rate disables limiting", func(t *testing.T) {
		t.Parallel()

		limiter := dghttp.NewDomainLimiter(0, 1)

		start := time.Now()
		for range 10 {
			require.NoError(t, limiter.Wait(context.Background(), "easydrawingguides.com"))
		}

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := dghttp.NewDomainLimiter(1, 1)

		require.NoError(t, limiter.Wait(context.Background(), "easydrawingguides.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "easydrawingguides.com")
		assert.Error(t, err, "should fail when context times out")
	})

	t.Run("concurrent waits all complete", func(t *testing.T) {
		t.Parallel()

		limiter := dghttp.NewDomainLimiter(100, 1)

		var wg sync.WaitGroup
		var completed atomic.Int32

		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := limiter.Wait(context.Background(), "easydrawingguides.com"); err == nil {
					completed.Add(1)
				}
			}()
		}

		wg.Wait()
		assert.Equal(t, int32(5), completed.Load())
	})
}
