package wizard

import (
	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/alexivanou/travel-planner/internal/pricing"
)

// BuildBookings returns one unsaved booking per attraction, all sharing the
// user, country, dates and hotel of the state. Each booking is priced on its
// own, so the hotel stay is charged in full on every booking.
func BuildBookings(userID string, state State, attractions []model.Attraction, hotel *model.Hotel) []model.Booking {
	bookings := make([]model.Booking, 0, len(attractions))
	for _, a := range attractions {
		b := model.Booking{
			UserID:       userID,
			CountryID:    state.CountryID,
			AttractionID: a.ID,
			StartDate:    state.StartDate,
			EndDate:      state.EndDate,
			TotalPrice:   pricing.Total(state.StartDate, state.EndDate, a, hotel),
		}
		if hotel != nil {
			id := hotel.ID
			b.HotelID = &id
		}
		bookings = append(bookings, b)
	}
	return bookings
}
