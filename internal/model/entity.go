package model

// Entity names one of the catalog tables
type Entity string

const (
	EntityCountry    Entity = "country"
	EntityCity       Entity = "city"
	EntityAttraction Entity = "attraction"
	EntityHotel      Entity = "hotel"
	EntityBooking    Entity = "booking"
)

// Table returns the table backing the entity
func (e Entity) Table() string {
	switch e {
	case EntityCountry:
		return "countries"
	case EntityCity:
		return "cities"
	case EntityAttraction:
		return "attractions"
	case EntityHotel:
		return "hotels"
	case EntityBooking:
		return "bookings"
	}
	return ""
}

// Valid reports whether e is a known entity
func (e Entity) Valid() bool {
	return e.Table() != ""
}

// Foreign key columns shared by the schema and the cascade rules
const (
	ColumnCountryID    = "country_id"
	ColumnCityID       = "city_id"
	ColumnAttractionID = "attraction_id"
	ColumnHotelID      = "hotel_id"
)
