package bookings

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocker(t *testing.T) *SlotLocker {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSlotLocker(client)
}

func TestSlotLockerClaim(t *testing.T) {
	locker := newTestLocker(t)
	ctx := context.Background()

	claimed, err := locker.Claim(ctx, "2026-03-02", "2:00 PM", "booking_one")
	require.NoError(t, err)
	assert.True(t, claimed)

	// Idempotent for the owner
	claimed, err = locker.Claim(ctx, "2026-03-02", "2:00 PM", "booking_one")
	require.NoError(t, err)
	assert.True(t, claimed)

	// Denied for anyone else
	claimed, err = locker.Claim(ctx, "2026-03-02", "2:00 PM", "booking_two")
	require.NoError(t, err)
	assert.False(t, claimed)

	// Other slots are unaffected
	claimed, err = locker.Claim(ctx, "2026-03-02", "3:00 PM", "booking_two")
	require.NoError(t, err)
	assert.True(t, claimed)

	owner, err := locker.Owner(ctx, "2026-03-02", "2:00 PM")
	require.NoError(t, err)
	assert.Equal(t, "booking_one", owner)
}

func TestSlotLockerRelease(t *testing.T) {
	locker := newTestLocker(t)
	ctx := context.Background()

	_, err := locker.Claim(ctx, "2026-03-02", "2:00 PM", "booking_one")
	require.NoError(t, err)

	// A non-owner cannot release
	released, err := locker.Release(ctx, "2026-03-02", "2:00 PM", "booking_two")
	require.NoError(t, err)
	assert.False(t, released)

	released, err = locker.Release(ctx, "2026-03-02", "2:00 PM", "booking_one")
	require.NoError(t, err)
	assert.True(t, released)

	// Slot is claimable again after release
	claimed, err := locker.Claim(ctx, "2026-03-02", "2:00 PM", "booking_two")
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestSlotLockerOwnerEmptyWhenFree(t *testing.T) {
	locker := newTestLocker(t)

	owner, err := locker.Owner(context.Background(), "2026-03-02", "9:00 AM")
	require.NoError(t, err)
	assert.Empty(t, owner)
}
