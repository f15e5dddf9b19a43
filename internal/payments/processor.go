// Package payments defines the payment-processing capability used by
// the booking flow. The production gateway is simulated; a real
// integration only needs to implement Processor.
package payments

import (
	"context"
	"errors"
	"time"
)

// ErrDeclined is returned when a charge does not go through. The
// caller must leave the booking untouched so the payment can be
// retried.
var ErrDeclined = errors.New("payments: charge declined")

// CardDetails are the payment-method fields collected from the
// customer. Presence is validated at the HTTP boundary, not here.
type CardDetails struct {
	CardNumber     string
	ExpiryDate     string
	CVV            string
	CardholderName string
}

// Receipt records the outcome of a successful charge.
type Receipt struct {
	TransactionID string
	Amount        float64
	Currency      string
	Method        string
	ProcessedAt   time.Time
}

// Processor charges a booking amount against the given card.
type Processor interface {
	Process(ctx context.Context, bookingID string, amount float64, card CardDetails) (*Receipt, error)
}
