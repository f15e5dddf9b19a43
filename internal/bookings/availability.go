package bookings

// SlotLabels is the fixed daily slot template. Every bookable day
// offers exactly these nine hourly slots.
var SlotLabels = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

// IsSlotLabel reports whether label is one of the fixed daily slots.
func IsSlotLabel(label string) bool {
	for _, l := range SlotLabels {
		if l == label {
			return true
		}
	}
	return false
}

// BuildAvailability derives the slot availability for one date from the
// bookings stored on that date. A slot is booked only while a confirmed
// booking holds it; pending bookings do not occupy the slot, so several
// customers may be offered the same slot until one of them pays.
func BuildAvailability(existing []Booking) []AvailabilitySlot {
	slots := make([]AvailabilitySlot, 0, len(SlotLabels))
	for _, label := range SlotLabels {
		booked := false
		for _, b := range existing {
			if b.Time == label && b.Status == StatusConfirmed {
				booked = true
				break
			}
		}
		slots = append(slots, AvailabilitySlot{
			Time:      label,
			Available: !booked,
			Booked:    booked,
		})
	}
	return slots
}
