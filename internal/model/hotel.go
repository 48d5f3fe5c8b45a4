package model

import "github.com/shopspring/decimal"

// Hotel represents a hotel in the database
type Hotel struct {
	ID            int64           `db:"id" json:"id"`
	AttractionID  int64           `db:"attraction_id" json:"attraction_id" validate:"required,gt=0"`
	CityID        int64           `db:"city_id" json:"city_id" validate:"required,gt=0"`
	Name          string          `db:"name" json:"name" validate:"required,max=100"`
	Stars         int             `db:"stars" json:"stars" validate:"gte=1,lte=5"`
	PricePerNight decimal.Decimal `db:"price_per_night" json:"price_per_night" validate:"gte=0"`
	Address       string          `db:"address" json:"address"`
	Contact       string          `db:"contact" json:"contact"`
}

// HotelDetail is a hotel joined with its attraction and city names
type HotelDetail struct {
	Hotel
	AttractionName string `db:"attraction_name" json:"attraction_name"`
	CityName       string `db:"city_name" json:"city_name"`
}
