package wizard

import (
	"context"
	"fmt"

	"github.com/alexivanou/travel-planner/internal/failure"
	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/alexivanou/travel-planner/internal/repository"
)

func checkCountry(ctx context.Context, repos *repository.Container, id int64) (*model.Country, error) {
	if id <= 0 {
		return nil, failure.Validation("country is required")
	}
	country, err := repos.Country.Get(ctx, id)
	if err != nil {
		return nil, failure.Storage(fmt.Errorf("failed to get country: %w", err))
	}
	if country == nil {
		return nil, failure.NotFound(string(model.EntityCountry), id)
	}
	return country, nil
}

// checkAttractions dedupes state.AttractionIDs in place and returns the
// attractions in selection order
func checkAttractions(ctx context.Context, repos *repository.Container, state *State) ([]model.Attraction, error) {
	state.AttractionIDs = dedupe(state.AttractionIDs)
	if len(state.AttractionIDs) == 0 {
		return nil, failure.Validation("select at least one attraction")
	}

	found, err := repos.Attraction.GetMany(ctx, state.AttractionIDs)
	if err != nil {
		return nil, failure.Storage(fmt.Errorf("failed to get attractions: %w", err))
	}
	byID := make(map[int64]model.Attraction, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}

	attractions := make([]model.Attraction, 0, len(state.AttractionIDs))
	for _, id := range state.AttractionIDs {
		a, ok := byID[id]
		if !ok {
			return nil, failure.NotFound(string(model.EntityAttraction), id)
		}
		if a.CountryID != state.CountryID {
			return nil, failure.Validationf("attraction %d is not in the selected country", id)
		}
		attractions = append(attractions, a)
	}
	return attractions, nil
}

func checkDates(state State) error {
	if !state.HasDates() {
		return failure.Validation("start date and end date are required")
	}
	if state.EndDate.Before(state.StartDate) {
		return failure.Validation("end date must be on or after start date")
	}
	return nil
}

func checkHotel(ctx context.Context, repos *repository.Container, state State) (*model.Hotel, error) {
	if state.HotelID == nil {
		return nil, nil
	}
	id := *state.HotelID
	hotel, err := repos.Hotel.Get(ctx, id)
	if err != nil {
		return nil, failure.Storage(fmt.Errorf("failed to get hotel: %w", err))
	}
	if hotel == nil {
		return nil, failure.NotFound(string(model.EntityHotel), id)
	}
	for _, aid := range state.AttractionIDs {
		if hotel.AttractionID == aid {
			return &hotel.Hotel, nil
		}
	}
	return nil, failure.Validationf("hotel %d does not serve the selected attractions", id)
}
