package middleware

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketBurstThenDenies(t *testing.T) {
	tb := NewTokenBucket(0.001, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, tb.Allow(), "request %d within burst", i)
	}
	assert.False(t, tb.Allow())
}

func TestConcurrentFirstRequestsShareOneBucket(t *testing.T) {
	cfg := RateLimiterConfig{Rate: 1, Burst: 5}
	key := fmt.Sprintf("10.0.0.1:%s", t.Name())

	const workers = 16
	buckets := make([]*TokenBucket, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			buckets[i] = getIPLimiter(key, cfg)
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, buckets[0], buckets[i])
	}
}

func TestPathLimiterReusedAcrossRequests(t *testing.T) {
	cfg := RateLimiterConfig{Rate: 1, Burst: 5}
	path := "/api/auth/login-" + t.Name()

	first := getPathLimiter(path, cfg)
	second := getPathLimiter(path, cfg)
	assert.Same(t, first, second)
}
