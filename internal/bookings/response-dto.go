package bookings

// AvailabilitySlot is the derived availability of one slot label on a
// date. It is computed per query and never stored.
type AvailabilitySlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Booked    bool   `json:"booked"`
}

// AvailabilityResponse is the body of GET /availability/:date.
type AvailabilityResponse struct {
	Date         string             `json:"date"`
	Availability []AvailabilitySlot `json:"availability"`
}

// BookingResponse is the body of GET /bookings/:id.
type BookingResponse struct {
	Booking *Booking `json:"booking"`
}

// MutationResponse is the body of booking create and status updates.
type MutationResponse struct {
	Success bool     `json:"success"`
	Booking *Booking `json:"booking"`
	Message string   `json:"message"`
}

// PaymentResponse is the body of POST /bookings/:id/payment.
type PaymentResponse struct {
	Success             bool         `json:"success"`
	Booking             *Booking     `json:"booking"`
	PaymentConfirmation *PaymentInfo `json:"paymentConfirmation"`
	Message             string       `json:"message"`
}

// CustomerBookingsResponse is the body of GET /customers/:email/bookings.
type CustomerBookingsResponse struct {
	Bookings []Booking `json:"bookings"`
}
