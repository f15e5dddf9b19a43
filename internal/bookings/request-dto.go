package bookings

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// CustomerInfoRequest carries the required customer fields of a
// booking request. Company is optional.
type CustomerInfoRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Company string `json:"company"`
}

// CreateBookingRequest is the body of POST /bookings.
type CreateBookingRequest struct {
	Service        string              `json:"service" binding:"required"`
	Date           string              `json:"date" binding:"required,datetime=2006-01-02"`
	Time           string              `json:"time" binding:"required,slotlabel"`
	CustomerInfo   CustomerInfoRequest `json:"customerInfo" binding:"required"`
	ProjectDetails string              `json:"projectDetails"`
}

// UpdateStatusRequest is the body of PUT /bookings/:id/status. Only the
// fields present are merged into the booking.
type UpdateStatusRequest struct {
	Status        *Status        `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	PaymentStatus *PaymentStatus `json:"paymentStatus" binding:"omitempty,oneof=unpaid paid refunded"`
}

// PaymentRequest is the body of POST /bookings/:id/payment. All four
// fields are required before the simulator is invoked.
type PaymentRequest struct {
	CardNumber     string `json:"cardNumber" binding:"required"`
	ExpiryDate     string `json:"expiryDate" binding:"required"`
	CVV            string `json:"cvv" binding:"required"`
	CardholderName string `json:"cardholderName" binding:"required"`
}

// RegisterValidators installs the custom booking validators on gin's
// binding validator. Call once during router setup.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("slotlabel", validateSlotLabel)
	}
}

// validateSlotLabel accepts only the nine fixed daily slot labels.
func validateSlotLabel(fl validator.FieldLevel) bool {
	return IsSlotLabel(fl.Field().String())
}
