package payments

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Simulator implements Processor with an artificial gateway delay and
// a probabilistic outcome. The default mirrors a real gateway closely
// enough for the studio's traffic: about two seconds of latency and a
// 90% approval rate.
type Simulator struct {
	delay       time.Duration
	successRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// SimulatorOption customizes a Simulator.
type SimulatorOption func(*Simulator)

// WithRand injects a deterministic random source.
func WithRand(rng *rand.Rand) SimulatorOption {
	return func(s *Simulator) {
		s.rng = rng
	}
}

// NewSimulator creates a payment simulator. successRate is clamped to
// [0,1]; 1 forces every charge to succeed, 0 forces every charge to
// fail.
func NewSimulator(delay time.Duration, successRate float64, opts ...SimulatorOption) *Simulator {
	if successRate < 0 {
		successRate = 0
	}
	if successRate > 1 {
		successRate = 1
	}

	s := &Simulator{
		delay:       delay,
		successRate: successRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process waits out the simulated gateway latency, then resolves the
// charge. The wait honors context cancellation so an abandoned request
// does not hold the handler.
func (s *Simulator) Process(ctx context.Context, bookingID string, amount float64, card CardDetails) (*Receipt, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if !s.roll() {
		return nil, ErrDeclined
	}

	return &Receipt{
		TransactionID: newTransactionID(),
		Amount:        amount,
		Currency:      "USD",
		Method:        "card",
		ProcessedAt:   time.Now().UTC(),
	}, nil
}

func (s *Simulator) roll() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < s.successRate
}

func newTransactionID() string {
	short := strings.ReplaceAll(uuid.New().String(), "-", "")[:10]
	return fmt.Sprintf("txn_%d_%s", time.Now().Unix(), short)
}
