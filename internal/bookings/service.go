package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"baerstudio/internal/httperr"
	"baerstudio/internal/notifications"
	"baerstudio/internal/payments"
	"baerstudio/pkg/logger"
)

// Service interface defines the contract for booking business logic.
type Service interface {
	GetAvailability(ctx context.Context, date string) ([]AvailabilitySlot, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error)
	GetBooking(ctx context.Context, id string) (*Booking, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Booking, error)
	ProcessPayment(ctx context.Context, id string, req PaymentRequest) (*Booking, error)
	GetCustomerBookings(ctx context.Context, email string) ([]Booking, error)
}

type service struct {
	repo      Repository
	slots     *SlotLocker
	processor payments.Processor
	notifier  notifications.Publisher
	log       *logger.Logger
}

// NewService creates a booking service instance.
func NewService(repo Repository, slots *SlotLocker, processor payments.Processor, notifier notifications.Publisher, log *logger.Logger) Service {
	return &service{
		repo:      repo,
		slots:     slots,
		processor: processor,
		notifier:  notifier,
		log:       log,
	}
}

// GetAvailability derives the slot template for one date from stored
// bookings. No caching, correctness over latency.
func (s *service) GetAvailability(ctx context.Context, date string) ([]AvailabilitySlot, error) {
	existing, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return BuildAvailability(existing), nil
}

// CreateBooking validates the request against the service catalog,
// rejects slot conflicts, and persists the new booking. Free services
// confirm immediately and claim the slot; paid services start as an
// optimistic hold that only a successful payment converts.
func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	entry, ok := LookupService(req.Service)
	if !ok {
		return nil, httperr.Validation(fmt.Sprintf("Unknown service: %s", req.Service))
	}
	if entry.QuoteOnly() {
		return nil, httperr.Validation("This service requires a custom quote and cannot be booked online")
	}

	existing, err := s.repo.ListByDate(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	for _, b := range existing {
		if b.Time == req.Time && b.Status == StatusConfirmed {
			return nil, httperr.Conflict("Time slot is no longer available")
		}
	}

	now := time.Now().UTC()
	booking := &Booking{
		ID:       NewBookingID(),
		Service:  req.Service,
		Date:     req.Date,
		Time:     req.Time,
		Duration: entry.Duration,
		CustomerInfo: CustomerInfo{
			Name:    req.CustomerInfo.Name,
			Email:   req.CustomerInfo.Email,
			Phone:   req.CustomerInfo.Phone,
			Company: req.CustomerInfo.Company,
		},
		ProjectDetails: req.ProjectDetails,
		TotalCost:      entry.Cost(),
		Status:         StatusPending,
		PaymentStatus:  PaymentStatusUnpaid,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if booking.TotalCost == 0 {
		// Free consultations need no payment step, so they must take
		// the slot right now, atomically.
		claimed, err := s.slots.Claim(ctx, booking.Date, booking.Time, booking.ID)
		if err != nil {
			return nil, httperr.Internal("failed to reserve slot", err)
		}
		if !claimed {
			return nil, httperr.Conflict("Time slot is no longer available")
		}
		booking.Status = StatusConfirmed
		booking.PaymentStatus = PaymentStatusPaid
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		if booking.IsConfirmed() {
			if _, relErr := s.slots.Release(ctx, booking.Date, booking.Time, booking.ID); relErr != nil {
				s.log.WithError(relErr).Warn("failed to release slot after store error", "booking_id", booking.ID)
			}
		}
		return nil, err
	}

	s.log.LogBookingCreated(ctx, booking.ID, booking.Date, booking.Time, booking.CustomerInfo.Email)
	s.notify(ctx, bookingConfirmationNotification(booking))

	return booking, nil
}

func (s *service) GetBooking(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus merges only the provided fields into the booking. A
// transition into confirmed must win the slot claim; a transition into
// cancelled releases it.
func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && *req.Status != booking.Status {
		switch *req.Status {
		case StatusConfirmed:
			claimed, err := s.slots.Claim(ctx, booking.Date, booking.Time, booking.ID)
			if err != nil {
				return nil, httperr.Internal("failed to reserve slot", err)
			}
			if !claimed {
				return nil, httperr.Conflict("Time slot is no longer available")
			}
		case StatusCancelled:
			if _, err := s.slots.Release(ctx, booking.Date, booking.Time, booking.ID); err != nil {
				return nil, httperr.Internal("failed to release slot", err)
			}
		}
		booking.Status = *req.Status
	}
	if req.PaymentStatus != nil {
		booking.PaymentStatus = *req.PaymentStatus
	}
	booking.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, booking); err != nil {
		return nil, err
	}

	s.log.LogBookingStatusChanged(ctx, booking.ID, booking.Status.String(), booking.PaymentStatus.String())
	return booking, nil
}

// ProcessPayment charges a pending booking. The slot is claimed before
// the charge so concurrent payers for the same slot are settled by the
// claim: the first to claim may pay, everyone else gets a conflict. On
// a declined charge the claim is released and the booking is left
// untouched, so the payment is retriable.
func (s *service) ProcessPayment(ctx context.Context, id string, req PaymentRequest) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.IsCancelled() {
		return nil, httperr.Validation("Booking is cancelled")
	}
	if booking.IsPaid() {
		return nil, httperr.Validation("Booking is already paid")
	}
	if booking.TotalCost <= 0 {
		return nil, httperr.Validation("Booking does not require payment")
	}

	claimed, err := s.slots.Claim(ctx, booking.Date, booking.Time, booking.ID)
	if err != nil {
		return nil, httperr.Internal("failed to reserve slot", err)
	}
	if !claimed {
		return nil, httperr.Conflict("Time slot was taken by another booking")
	}

	receipt, err := s.processor.Process(ctx, booking.ID, booking.TotalCost, payments.CardDetails{
		CardNumber:     req.CardNumber,
		ExpiryDate:     req.ExpiryDate,
		CVV:            req.CVV,
		CardholderName: req.CardholderName,
	})
	if err != nil {
		if _, relErr := s.slots.Release(ctx, booking.Date, booking.Time, booking.ID); relErr != nil {
			s.log.WithError(relErr).Warn("failed to release slot after declined payment", "booking_id", booking.ID)
		}
		s.log.LogPaymentFailed(ctx, booking.ID, err)
		if errors.Is(err, payments.ErrDeclined) {
			return nil, httperr.PaymentFailed("Payment failed. Please try again.")
		}
		return nil, httperr.Internal("payment processing failed", err)
	}

	booking.Status = StatusConfirmed
	booking.PaymentStatus = PaymentStatusPaid
	booking.PaymentInfo = &PaymentInfo{
		TransactionID: receipt.TransactionID,
		Amount:        receipt.Amount,
		Currency:      receipt.Currency,
		Method:        receipt.Method,
		ProcessedAt:   receipt.ProcessedAt,
	}
	booking.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, booking); err != nil {
		return nil, err
	}

	s.log.LogPaymentProcessed(ctx, booking.ID, receipt.TransactionID, receipt.Amount)
	s.notify(ctx, paymentReceiptNotification(booking))

	return booking, nil
}

func (s *service) GetCustomerBookings(ctx context.Context, email string) ([]Booking, error) {
	return s.repo.ListByCustomer(ctx, email)
}

// notify publishes best-effort: a failed notification never fails the
// booking operation it follows.
func (s *service) notify(ctx context.Context, n *notifications.Notification) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, n); err != nil {
		s.log.WithError(err).Warn("failed to publish notification",
			"type", string(n.Type), "recipient", n.RecipientEmail)
	}
}

func bookingConfirmationNotification(b *Booking) *notifications.Notification {
	n := notifications.New(notifications.TypeBookingConfirmation, b.CustomerInfo.Email)
	n.BookingID = b.ID
	n.Date = b.Date
	n.Time = b.Time
	n.Amount = b.TotalCost
	return n
}

func paymentReceiptNotification(b *Booking) *notifications.Notification {
	n := notifications.New(notifications.TypePaymentReceipt, b.CustomerInfo.Email)
	n.BookingID = b.ID
	n.Date = b.Date
	n.Time = b.Time
	n.Amount = b.TotalCost
	return n
}
