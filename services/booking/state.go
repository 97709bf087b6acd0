package booking

import "rentora/models"

// allowedTransitions represents the booking state flow as code. Cancelled
// is terminal; a confirmed booking whose end date has passed stays
// confirmed (completion is a reporting concern, not a calendar one).
var allowedTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:   {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCancelled},
}

// CanTransition reports whether a booking may move between two states.
func CanTransition(from, to models.BookingStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
