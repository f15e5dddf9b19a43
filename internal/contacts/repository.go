package contacts

import (
	"context"
	"errors"

	"baerstudio/internal/httperr"
	"baerstudio/internal/shared/store"
)

// Repository persists contact submissions in the key-value store.
type Repository interface {
	Create(ctx context.Context, contact *Contact) error
	GetByID(ctx context.Context, id string) (*Contact, error)
}

type repository struct {
	store store.Store
}

func NewRepository(st store.Store) Repository {
	return &repository{store: st}
}

func contactKey(id string) string {
	return "contact:" + id
}

func (r *repository) Create(ctx context.Context, contact *Contact) error {
	if err := r.store.SetJSON(ctx, contactKey(contact.ID), contact); err != nil {
		return httperr.Internal("failed to store contact submission", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Contact, error) {
	var contact Contact
	if err := r.store.GetJSON(ctx, contactKey(id), &contact); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, httperr.NotFound("Contact submission not found")
		}
		return nil, httperr.Internal("failed to fetch contact submission", err)
	}
	return &contact, nil
}
