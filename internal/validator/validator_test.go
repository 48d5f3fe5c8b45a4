package validator

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/alexivanou/travel-planner/internal/failure"
	"github.com/alexivanou/travel-planner/internal/model"
)

func TestValidateStruct(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	hotelID := int64(3)

	tests := []struct {
		name    string
		data    any
		wantErr string
	}{
		{
			name: "valid country",
			data: &model.Country{Name: "France", Region: "Europe"},
		},
		{
			name:    "country without name",
			data:    &model.Country{Region: "Europe"},
			wantErr: "name is required",
		},
		{
			name:    "attraction rating out of range",
			data:    &model.Attraction{CountryID: 1, CityID: 1, Name: "Louvre", Rating: 5.5},
			wantErr: "rating must be less than or equal to 5",
		},
		{
			name: "attraction budget level case-insensitive",
			data: &model.Attraction{CountryID: 1, CityID: 1, Name: "Louvre", Rating: 4.8, BudgetLevel: "High"},
		},
		{
			name:    "attraction unknown budget level",
			data:    &model.Attraction{CountryID: 1, CityID: 1, Name: "Louvre", BudgetLevel: "luxury"},
			wantErr: "budget_level must be one of low, medium, high, other",
		},
		{
			name:    "hotel stars below range",
			data:    &model.Hotel{AttractionID: 1, CityID: 1, Name: "Ritz", Stars: 0},
			wantErr: "stars must be greater than or equal to 1",
		},
		{
			name:    "hotel negative price",
			data:    &model.Hotel{AttractionID: 1, CityID: 1, Name: "Ritz", Stars: 5, PricePerNight: decimal.NewFromInt(-1)},
			wantErr: "price_per_night must be greater than or equal to 0",
		},
		{
			name: "valid booking",
			data: &model.Booking{
				UserID: "1", CountryID: 1, AttractionID: 2, HotelID: &hotelID,
				StartDate: start, EndDate: start.AddDate(0, 0, 3), TotalPrice: decimal.NewFromInt(50),
			},
		},
		{
			name: "booking ends before it starts",
			data: &model.Booking{
				UserID: "1", CountryID: 1, AttractionID: 2,
				StartDate: start, EndDate: start.AddDate(0, 0, -1),
			},
			wantErr: "end_date must be on or after start_date",
		},
		{
			name:    "booking without dates",
			data:    &model.Booking{UserID: "1", CountryID: 1, AttractionID: 2},
			wantErr: "start_date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.data)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Equal(t, failure.KindValidation, failure.KindOf(err))
		})
	}
}
