package payments

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCard() CardDetails {
	return CardDetails{
		CardNumber:     "4242424242424242",
		ExpiryDate:     "12/28",
		CVV:            "123",
		CardholderName: "A Person",
	}
}

func TestProcessAlwaysApproves(t *testing.T) {
	sim := NewSimulator(0, 1)

	receipt, err := sim.Process(context.Background(), "booking_abc", 150, testCard())
	require.NoError(t, err)

	assert.Equal(t, float64(150), receipt.Amount)
	assert.Equal(t, "USD", receipt.Currency)
	assert.Equal(t, "card", receipt.Method)
	assert.True(t, strings.HasPrefix(receipt.TransactionID, "txn_"))
	assert.WithinDuration(t, time.Now().UTC(), receipt.ProcessedAt, time.Minute)
}

func TestProcessAlwaysDeclines(t *testing.T) {
	sim := NewSimulator(0, 0)

	receipt, err := sim.Process(context.Background(), "booking_abc", 150, testCard())
	require.ErrorIs(t, err, ErrDeclined)
	assert.Nil(t, receipt)
}

func TestProcessSuccessRateClamped(t *testing.T) {
	// Out-of-range rates clamp instead of producing nonsense odds.
	always := NewSimulator(0, 5)
	_, err := always.Process(context.Background(), "booking_abc", 150, testCard())
	require.NoError(t, err)

	never := NewSimulator(0, -3)
	_, err = never.Process(context.Background(), "booking_abc", 150, testCard())
	require.ErrorIs(t, err, ErrDeclined)
}

func TestProcessHonorsContextCancellation(t *testing.T) {
	sim := NewSimulator(10*time.Second, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := sim.Process(ctx, "booking_abc", 150, testCard())
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestProcessDeterministicWithSeededRand(t *testing.T) {
	// Two simulators with the same seed resolve charges identically.
	a := NewSimulator(0, 0.5, WithRand(rand.New(rand.NewSource(42))))
	b := NewSimulator(0, 0.5, WithRand(rand.New(rand.NewSource(42))))

	for i := 0; i < 20; i++ {
		_, errA := a.Process(context.Background(), "booking_abc", 150, testCard())
		_, errB := b.Process(context.Background(), "booking_abc", 150, testCard())
		assert.Equal(t, errA == nil, errB == nil, "charge %d diverged", i)
	}
}

func TestTransactionIDsUnique(t *testing.T) {
	sim := NewSimulator(0, 1)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		receipt, err := sim.Process(context.Background(), "booking_abc", 150, testCard())
		require.NoError(t, err)
		_, dup := seen[receipt.TransactionID]
		assert.False(t, dup, "duplicate transaction id %s", receipt.TransactionID)
		seen[receipt.TransactionID] = struct{}{}
	}
}
