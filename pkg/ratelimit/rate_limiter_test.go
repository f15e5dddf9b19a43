package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, cfg *Config) *RateLimiter {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRateLimiter(client, cfg)
}

func testConfig() *Config {
	return &Config{
		Enabled:                 true,
		WindowDuration:          time.Minute,
		DefaultRequests:         100,
		PublicRequests:          50,
		BookingRequests:         20,
		BookingCriticalRequests: 3,
		HealthRequests:          200,
	}
}

func TestIsAllowedUnderLimit(t *testing.T) {
	limiter := newTestLimiter(t, testConfig())
	ctx := context.Background()

	result, err := limiter.IsAllowed(ctx, "10.0.0.1", RateLimitTypeBookingCritical)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 3, result.Limit)
	assert.Equal(t, 2, result.Remaining)
}

func TestIsAllowedBlocksOverLimit(t *testing.T) {
	limiter := newTestLimiter(t, testConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		result, err := limiter.IsAllowed(ctx, "10.0.0.1", RateLimitTypeBookingCritical)
		require.NoError(t, err)
		assert.True(t, result.Allowed, "request %d should pass", i+1)
	}

	result, err := limiter.IsAllowed(ctx, "10.0.0.1", RateLimitTypeBookingCritical)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.LessOrEqual(t, result.Remaining, 0)
}

func TestIsAllowedSeparateBucketsPerIP(t *testing.T) {
	limiter := newTestLimiter(t, testConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := limiter.IsAllowed(ctx, "10.0.0.1", RateLimitTypeBookingCritical)
		require.NoError(t, err)
	}

	// A different client is unaffected.
	result, err := limiter.IsAllowed(ctx, "10.0.0.2", RateLimitTypeBookingCritical)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestIsAllowedSeparateBucketsPerType(t *testing.T) {
	limiter := newTestLimiter(t, testConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := limiter.IsAllowed(ctx, "10.0.0.1", RateLimitTypeBookingCritical)
		require.NoError(t, err)
	}

	// The same client still has budget in the booking bucket.
	result, err := limiter.IsAllowed(ctx, "10.0.0.1", RateLimitTypeBooking)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 20, result.Limit)
}

func TestIsAllowedDisabledPassesEverything(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	limiter := newTestLimiter(t, cfg)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		result, err := limiter.IsAllowed(ctx, "10.0.0.1", RateLimitTypeBookingCritical)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, 3, result.Remaining)
	}
}

func TestIsAllowedWhitelistedIP(t *testing.T) {
	cfg := testConfig()
	cfg.WhitelistedIPs = []string{"10.0.0.9"}
	limiter := newTestLimiter(t, cfg)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		result, err := limiter.IsAllowed(ctx, "10.0.0.9", RateLimitTypeBookingCritical)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	}
}

func TestGetRateLimitTypeClassification(t *testing.T) {
	cases := []struct {
		path string
		want RateLimitType
	}{
		{"/health", RateLimitTypeHealth},
		{"/ping", RateLimitTypeHealth},
		{"/api/v1/contact", RateLimitTypePublic},
		{"/api/v1/contact/:id", RateLimitTypePublic},
		{"/api/v1/customers/:email/bookings", RateLimitTypePublic},
		{"/api/v1/bookings", RateLimitTypeBookingCritical},
		{"/api/v1/bookings/:id/payment", RateLimitTypeBookingCritical},
		{"/api/v1/bookings/:id", RateLimitTypeBooking},
		{"/api/v1/bookings/:id/status", RateLimitTypeBooking},
		{"/api/v1/availability/:date", RateLimitTypeBooking},
		{"/somewhere/else", RateLimitTypeDefault},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, getRateLimitType(tc.path), "path %s", tc.path)
	}
}
