package integrity

import (
	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/alexivanou/travel-planner/internal/repository"
)

func by(entity model.Entity, column string) repository.Selector {
	return repository.Selector{Entity: entity, Column: column}
}

func through(entity model.Entity, column string, parent repository.Selector) repository.Selector {
	return repository.Selector{Entity: entity, Column: column, Through: &parent}
}

// rules lists, per root entity, the dependent rows removed before the root
// itself. Steps run in order, deepest dependents first.
var rules = map[model.Entity][]repository.Selector{
	model.EntityCountry: {
		by(model.EntityBooking, model.ColumnCountryID),
		through(model.EntityHotel, model.ColumnAttractionID, by(model.EntityAttraction, model.ColumnCountryID)),
		by(model.EntityAttraction, model.ColumnCountryID),
		by(model.EntityCity, model.ColumnCountryID),
	},
	model.EntityCity: {
		through(model.EntityBooking, model.ColumnHotelID, by(model.EntityHotel, model.ColumnCityID)),
		through(model.EntityBooking, model.ColumnAttractionID, by(model.EntityAttraction, model.ColumnCityID)),
		by(model.EntityHotel, model.ColumnCityID),
		through(model.EntityHotel, model.ColumnAttractionID, by(model.EntityAttraction, model.ColumnCityID)),
		by(model.EntityAttraction, model.ColumnCityID),
	},
	model.EntityAttraction: {
		by(model.EntityBooking, model.ColumnAttractionID),
		through(model.EntityBooking, model.ColumnHotelID, by(model.EntityHotel, model.ColumnAttractionID)),
		by(model.EntityHotel, model.ColumnAttractionID),
	},
	model.EntityHotel: {
		by(model.EntityBooking, model.ColumnHotelID),
	},
	model.EntityBooking: {},
}

// Steps returns the cascade steps for deleting a root of the given entity
func Steps(entity model.Entity) ([]repository.Selector, bool) {
	steps, ok := rules[entity]
	return steps, ok
}
