package bookings

import (
	"context"
	"errors"
	"fmt"

	"baerstudio/internal/httperr"
	"baerstudio/internal/shared/store"
)

// Repository owns the stored booking records and the two secondary
// indexes: the per-date booking list and the per-customer-email id
// list. It is the sole writer of all three key families.
type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	// Save re-persists a mutated booking and rewrites its entry in the
	// per-date list so list entries stay consistent with the canonical
	// record.
	Save(ctx context.Context, booking *Booking) error
	ListByDate(ctx context.Context, date string) ([]Booking, error)
	ListByCustomer(ctx context.Context, email string) ([]Booking, error)
}

type repository struct {
	store store.Store
}

// NewRepository creates a booking repository on the given store.
func NewRepository(st store.Store) Repository {
	return &repository{store: st}
}

func bookingKey(id string) string {
	return "booking:" + id
}

func dateKey(date string) string {
	return "bookings:" + date
}

func customerKey(email string) string {
	return fmt.Sprintf("customer:%s:bookings", email)
}

func (r *repository) Create(ctx context.Context, booking *Booking) error {
	if err := r.store.SetJSON(ctx, bookingKey(booking.ID), booking); err != nil {
		return httperr.Internal("failed to store booking", err)
	}

	existing, err := r.ListByDate(ctx, booking.Date)
	if err != nil {
		return err
	}
	existing = append(existing, *booking)
	if err := r.store.SetJSON(ctx, dateKey(booking.Date), existing); err != nil {
		return httperr.Internal("failed to update date bookings", err)
	}

	var ids []string
	if err := r.store.GetJSON(ctx, customerKey(booking.CustomerInfo.Email), &ids); err != nil && !errors.Is(err, store.ErrNotFound) {
		return httperr.Internal("failed to read customer bookings", err)
	}
	ids = append(ids, booking.ID)
	if err := r.store.SetJSON(ctx, customerKey(booking.CustomerInfo.Email), ids); err != nil {
		return httperr.Internal("failed to update customer bookings", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	var booking Booking
	if err := r.store.GetJSON(ctx, bookingKey(id), &booking); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, httperr.NotFound("Booking not found")
		}
		return nil, httperr.Internal("failed to fetch booking", err)
	}
	return &booking, nil
}

func (r *repository) Save(ctx context.Context, booking *Booking) error {
	if err := r.store.SetJSON(ctx, bookingKey(booking.ID), booking); err != nil {
		return httperr.Internal("failed to store booking", err)
	}

	// The date list holds full copies, not references, so every
	// mutation must be propagated into it.
	list, err := r.ListByDate(ctx, booking.Date)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == booking.ID {
			list[i] = *booking
		}
	}
	if err := r.store.SetJSON(ctx, dateKey(booking.Date), list); err != nil {
		return httperr.Internal("failed to update date bookings", err)
	}

	return nil
}

func (r *repository) ListByDate(ctx context.Context, date string) ([]Booking, error) {
	var list []Booking
	if err := r.store.GetJSON(ctx, dateKey(date), &list); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, httperr.Internal("failed to read date bookings", err)
	}
	return list, nil
}

func (r *repository) ListByCustomer(ctx context.Context, email string) ([]Booking, error) {
	var ids []string
	if err := r.store.GetJSON(ctx, customerKey(email), &ids); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []Booking{}, nil
		}
		return nil, httperr.Internal("failed to read customer bookings", err)
	}

	bookings := make([]Booking, 0, len(ids))
	for _, id := range ids {
		var booking Booking
		if err := r.store.GetJSON(ctx, bookingKey(id), &booking); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Dangling ids are tolerated, the backing record may
				// have been removed out of band.
				continue
			}
			return nil, httperr.Internal("failed to fetch booking", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}
