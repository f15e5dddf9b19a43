package contacts

import (
	"context"
	"time"

	"baerstudio/internal/notifications"
	"baerstudio/pkg/logger"
)

// Service handles contact-form business logic.
type Service interface {
	Create(ctx context.Context, req ContactRequest) (*Contact, error)
	Get(ctx context.Context, id string) (*Contact, error)
}

type service struct {
	repo     Repository
	notifier notifications.Publisher
	log      *logger.Logger
}

func NewService(repo Repository, notifier notifications.Publisher, log *logger.Logger) Service {
	return &service{repo: repo, notifier: notifier, log: log}
}

func (s *service) Create(ctx context.Context, req ContactRequest) (*Contact, error) {
	contact := &Contact{
		ID:          NewContactID(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Service:     req.Service,
		ProjectType: req.ProjectType,
		Budget:      req.Budget,
		Message:     req.Message,
		Status:      "new",
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	s.log.LogContactReceived(ctx, contact.ID, contact.Email)

	if s.notifier != nil {
		n := notifications.New(notifications.TypeContactReceived, contact.Email)
		n.ContactID = contact.ID
		if err := s.notifier.Publish(ctx, n); err != nil {
			s.log.WithError(err).Warn("failed to publish contact notification", "contact_id", contact.ID)
		}
	}

	return contact, nil
}

func (s *service) Get(ctx context.Context, id string) (*Contact, error) {
	return s.repo.GetByID(ctx, id)
}
