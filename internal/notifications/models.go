package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationType identifies the kind of customer notification.
type NotificationType string

const (
	TypeBookingConfirmation NotificationType = "booking-confirmation"
	TypePaymentReceipt      NotificationType = "payment-receipt"
	TypeContactReceived     NotificationType = "contact-received"
)

// Notification is one customer-facing message published to the
// notification topic. Delivery (email rendering, sending) is the
// consumer's concern.
type Notification struct {
	ID             uuid.UUID        `json:"id"`
	Type           NotificationType `json:"type"`
	RecipientEmail string           `json:"recipientEmail"`
	BookingID      string           `json:"bookingId,omitempty"`
	ContactID      string           `json:"contactId,omitempty"`
	Date           string           `json:"date,omitempty"`
	Time           string           `json:"time,omitempty"`
	Amount         float64          `json:"amount,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// New creates a notification addressed to email.
func New(t NotificationType, email string) *Notification {
	return &Notification{
		ID:             uuid.New(),
		Type:           t,
		RecipientEmail: email,
		CreatedAt:      time.Now().UTC(),
	}
}

// ToJSON serializes the notification for the wire.
func (n *Notification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// PartitionKey routes all notifications for one recipient to the same
// partition so they are delivered in order.
func (n *Notification) PartitionKey() string {
	return n.RecipientEmail
}
