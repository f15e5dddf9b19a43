package bookings

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CustomerInfo identifies the customer who placed a booking.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// PaymentInfo records a successful charge. It exists only on bookings
// whose payment status is paid.
type PaymentInfo struct {
	TransactionID string    `json:"transactionId"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Method        string    `json:"method"`
	ProcessedAt   time.Time `json:"processedAt"`
}

// Booking is one studio reservation: a service on a date at one of the
// fixed daily time slots.
type Booking struct {
	ID             string        `json:"id"`
	Service        string        `json:"service"`
	Date           string        `json:"date"`
	Time           string        `json:"time"`
	Duration       int           `json:"duration"`
	CustomerInfo   CustomerInfo  `json:"customerInfo"`
	ProjectDetails string        `json:"projectDetails"`
	TotalCost      float64       `json:"totalCost"`
	Status         Status        `json:"status"`
	PaymentStatus  PaymentStatus `json:"paymentStatus"`
	PaymentInfo    *PaymentInfo  `json:"paymentInfo,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == PaymentStatusPaid
}

// RequiresPayment reports whether the booking still needs a successful
// payment before it holds its slot.
func (b *Booking) RequiresPayment() bool {
	return b.TotalCost > 0 && b.PaymentStatus == PaymentStatusUnpaid
}

// NewBookingID generates an opaque unique booking identifier.
func NewBookingID() string {
	short := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return "booking_" + short
}
