package model

// City represents a city in the database
type City struct {
	ID        int64  `db:"id" json:"id"`
	CountryID int64  `db:"country_id" json:"country_id" validate:"required,gt=0"`
	Name      string `db:"name" json:"name" validate:"required,max=100"`
	IsCapital bool   `db:"is_capital" json:"is_capital"`
}

// CityDetail is a city joined with its country name
type CityDetail struct {
	City
	CountryName string `db:"country_name" json:"country_name"`
}
