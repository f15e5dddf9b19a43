package bookings

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SlotLocker provides atomic per-(date,time) slot claims on top of the
// store's scripting support. The store's plain get/set operations are
// not atomic across the read-check-write sequence used for conflict
// detection, so two concurrent requests could otherwise both confirm
// the same slot. Each claim key records the owning booking id; a slot
// is confirmed only by the booking that wins the claim.
type SlotLocker struct {
	client *redis.Client
}

// NewSlotLocker creates a slot locker backed by the given Redis client.
func NewSlotLocker(client *redis.Client) *SlotLocker {
	return &SlotLocker{client: client}
}

// Claim script: sets the slot owner if the slot is free, succeeds
// idempotently for the current owner, fails for anyone else.
var claimScript = redis.NewScript(`
local owner = redis.call("GET", KEYS[1])
if owner == false then
    redis.call("SET", KEYS[1], ARGV[1])
    return 1
end
if owner == ARGV[1] then
    return 1
end
return 0
`)

// Release script: compare-and-delete, only the owner may release.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    redis.call("DEL", KEYS[1])
    return 1
end
return 0
`)

func slotKey(date, timeSlot string) string {
	return fmt.Sprintf("slot:%s:%s", date, timeSlot)
}

// Claim atomically claims the (date, time) slot for bookingID. It
// returns false when another booking already owns the slot. Claiming a
// slot this booking already owns succeeds.
func (l *SlotLocker) Claim(ctx context.Context, date, timeSlot, bookingID string) (bool, error) {
	res, err := claimScript.Run(ctx, l.client, []string{slotKey(date, timeSlot)}, bookingID).Int()
	if err != nil {
		return false, fmt.Errorf("slot claim %s %s: %w", date, timeSlot, err)
	}
	return res == 1, nil
}

// Release frees the slot if bookingID owns it. Releasing a slot owned
// by another booking is a no-op.
func (l *SlotLocker) Release(ctx context.Context, date, timeSlot, bookingID string) (bool, error) {
	res, err := releaseScript.Run(ctx, l.client, []string{slotKey(date, timeSlot)}, bookingID).Int()
	if err != nil {
		return false, fmt.Errorf("slot release %s %s: %w", date, timeSlot, err)
	}
	return res == 1, nil
}

// Owner returns the booking id currently holding the slot, or "" when
// the slot is free.
func (l *SlotLocker) Owner(ctx context.Context, date, timeSlot string) (string, error) {
	owner, err := l.client.Get(ctx, slotKey(date, timeSlot)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("slot owner %s %s: %w", date, timeSlot, err)
	}
	return owner, nil
}

// PreloadScripts loads the claim scripts into Redis so the first
// booking request does not pay the script-load round trip.
func (l *SlotLocker) PreloadScripts(ctx context.Context) error {
	if err := claimScript.Load(ctx, l.client).Err(); err != nil {
		return fmt.Errorf("failed to load slot claim script: %w", err)
	}
	if err := releaseScript.Load(ctx, l.client).Err(); err != nil {
		return fmt.Errorf("failed to load slot release script: %w", err)
	}
	return nil
}
