package bookings

import (
	"net/http"
	"time"

	"baerstudio/internal/httperr"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetAvailability handles GET /availability/:date
func (c *Controller) GetAvailability(ctx *gin.Context) {
	date := ctx.Param("date")
	if date == "" {
		httperr.Write(ctx, httperr.Validation("Date parameter is required"))
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		httperr.Write(ctx, httperr.Validation("Date must be formatted as YYYY-MM-DD"))
		return
	}

	availability, err := c.service.GetAvailability(ctx.Request.Context(), date)
	if err != nil {
		httperr.Write(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, AvailabilityResponse{
		Date:         date,
		Availability: availability,
	})
}

// CreateBooking handles POST /bookings
func (c *Controller) CreateBooking(ctx *gin.Context) {
	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		httperr.Write(ctx, httperr.Validation("Missing or invalid booking field: "+err.Error()))
		return
	}

	booking, err := c.service.CreateBooking(ctx.Request.Context(), req)
	if err != nil {
		httperr.Write(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MutationResponse{
		Success: true,
		Booking: booking,
		Message: "Booking created successfully",
	})
}

// GetBooking handles GET /bookings/:id
func (c *Controller) GetBooking(ctx *gin.Context) {
	booking, err := c.service.GetBooking(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		httperr.Write(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, BookingResponse{Booking: booking})
}

// UpdateStatus handles PUT /bookings/:id/status
func (c *Controller) UpdateStatus(ctx *gin.Context) {
	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		httperr.Write(ctx, httperr.Validation("Invalid status update: "+err.Error()))
		return
	}

	booking, err := c.service.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		httperr.Write(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MutationResponse{
		Success: true,
		Booking: booking,
		Message: "Booking updated successfully",
	})
}

// ProcessPayment handles POST /bookings/:id/payment
func (c *Controller) ProcessPayment(ctx *gin.Context) {
	var req PaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		httperr.Write(ctx, httperr.Validation("Missing or invalid payment field: "+err.Error()))
		return
	}

	booking, err := c.service.ProcessPayment(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		httperr.Write(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, PaymentResponse{
		Success:             true,
		Booking:             booking,
		PaymentConfirmation: booking.PaymentInfo,
		Message:             "Payment processed successfully",
	})
}

// GetCustomerBookings handles GET /customers/:email/bookings
func (c *Controller) GetCustomerBookings(ctx *gin.Context) {
	bookings, err := c.service.GetCustomerBookings(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		httperr.Write(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CustomerBookingsResponse{Bookings: bookings})
}
