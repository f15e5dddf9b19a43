package bookings

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures all booking-related routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/availability/:date", controller.GetAvailability)

	bookingGroup := rg.Group("/bookings")
	{
		bookingGroup.POST("", controller.CreateBooking)
		bookingGroup.GET("/:id", controller.GetBooking)
		bookingGroup.PUT("/:id/status", controller.UpdateStatus)
		bookingGroup.POST("/:id/payment", controller.ProcessPayment)
	}

	rg.GET("/customers/:email/bookings", controller.GetCustomerBookings)
}
