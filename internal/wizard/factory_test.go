package wizard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexivanou/travel-planner/internal/model"
)

func TestBuildBookings(t *testing.T) {
	state := State{
		CountryID:     4,
		AttractionIDs: []int64{7, 9, 12},
		StartDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	}
	attractions := []model.Attraction{
		{ID: 7, CountryID: 4, BudgetLevel: "low"},
		{ID: 9, CountryID: 4, BudgetLevel: "High"},
		{ID: 12, CountryID: 4},
	}
	hotel := &model.Hotel{ID: 3, AttractionID: 7, PricePerNight: decimal.NewFromInt(100)}

	t.Run("with hotel", func(t *testing.T) {
		bookings := BuildBookings("42", state, attractions, hotel)
		require.Len(t, bookings, 3)

		expected := []string{"215", "250", "220"}
		for i, b := range bookings {
			assert.Equal(t, "42", b.UserID)
			assert.Equal(t, int64(4), b.CountryID)
			assert.Equal(t, attractions[i].ID, b.AttractionID)
			require.NotNil(t, b.HotelID)
			assert.Equal(t, int64(3), *b.HotelID)
			assert.Equal(t, state.StartDate, b.StartDate)
			assert.Equal(t, state.EndDate, b.EndDate)
			assert.True(t, decimal.RequireFromString(expected[i]).Equal(b.TotalPrice), "booking %d: %s", i, b.TotalPrice)
		}
	})

	t.Run("without hotel", func(t *testing.T) {
		bookings := BuildBookings("42", state, attractions, nil)
		require.Len(t, bookings, 3)
		for _, b := range bookings {
			assert.Nil(t, b.HotelID)
		}
		assert.True(t, decimal.NewFromInt(15).Equal(bookings[0].TotalPrice))
	})

	t.Run("no attractions", func(t *testing.T) {
		assert.Empty(t, BuildBookings("42", state, nil, hotel))
	})
}
