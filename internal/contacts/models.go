package contacts

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contact is one stored contact-form submission.
type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Service     string    `json:"service,omitempty"`
	ProjectType string    `json:"projectType,omitempty"`
	Budget      string    `json:"budget,omitempty"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"timestamp"`
}

// ContactRequest is the body of POST /contact.
type ContactRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Service     string `json:"service"`
	ProjectType string `json:"projectType"`
	Budget      string `json:"budget"`
	Message     string `json:"message" binding:"required"`
}

// ContactResponse is the body returned on a stored submission.
type ContactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ContactID string `json:"contactId"`
}

// NewContactID generates an opaque unique contact identifier.
func NewContactID() string {
	short := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return "contact_" + short
}
