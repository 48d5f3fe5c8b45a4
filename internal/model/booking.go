package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking represents a reservation of one attraction, optionally with a hotel
type Booking struct {
	ID           int64           `db:"id" json:"id"`
	UserID       string          `db:"user_id" json:"user_id" validate:"required,max=450"`
	CountryID    int64           `db:"country_id" json:"country_id" validate:"required,gt=0"`
	AttractionID int64           `db:"attraction_id" json:"attraction_id" validate:"required,gt=0"`
	HotelID      *int64          `db:"hotel_id" json:"hotel_id,omitempty" validate:"omitempty,gt=0"`
	StartDate    time.Time       `db:"start_date" json:"start_date" validate:"required"`
	EndDate      time.Time       `db:"end_date" json:"end_date" validate:"required,gtefield=StartDate"`
	TotalPrice   decimal.Decimal `db:"total_price" json:"total_price" validate:"gte=0"`
}

// BookingDetail is a booking joined with the names of everything it references
type BookingDetail struct {
	Booking
	CountryName    string  `db:"country_name" json:"country_name"`
	AttractionName string  `db:"attraction_name" json:"attraction_name"`
	CityName       string  `db:"city_name" json:"city_name"`
	HotelName      *string `db:"hotel_name" json:"hotel_name,omitempty"`
}

// BookingOrder selects the ordering of a user's bookings
type BookingOrder int

const (
	// OrderNewestFirst orders by booking id, most recent first
	OrderNewestFirst BookingOrder = iota
	// OrderByStartDate orders by start date, latest trip first
	OrderByStartDate
)
