package service

import (
	"context"
	"strings"

	"github.com/alexivanou/travel-planner/internal/failure"
	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/alexivanou/travel-planner/internal/validator"
)

// ListAttractions returns all attractions with country and city names
func (s *Service) ListAttractions(ctx context.Context) ([]model.AttractionDetail, error) {
	attractions, err := s.repos.Attraction.List(ctx)
	if err != nil {
		return nil, storage("list attractions", err)
	}
	return attractions, nil
}

// GetAttraction returns an attraction by id
func (s *Service) GetAttraction(ctx context.Context, id int64) (*model.AttractionDetail, error) {
	attraction, err := s.repos.Attraction.Get(ctx, id)
	if err != nil {
		return nil, storage("get attraction", err)
	}
	if attraction == nil {
		return nil, failure.NotFound(string(model.EntityAttraction), id)
	}
	return attraction, nil
}

// checkAttraction validates an attraction and requires its city to lie in
// its country
func (s *Service) checkAttraction(ctx context.Context, a *model.Attraction) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Type = strings.TrimSpace(a.Type)
	a.BudgetLevel = strings.TrimSpace(a.BudgetLevel)
	if err := validator.ValidateStruct(a); err != nil {
		return err
	}
	if err := requireExists(ctx, s.repos, model.EntityCountry, a.CountryID); err != nil {
		return err
	}

	city, err := s.repos.City.Get(ctx, a.CityID)
	if err != nil {
		return storage("get city", err)
	}
	if city == nil {
		return failure.Validationf("city %d does not exist", a.CityID)
	}
	if city.CountryID != a.CountryID {
		return failure.Validationf("city %d is not in country %d", a.CityID, a.CountryID)
	}
	return nil
}

// CreateAttraction validates and stores a new attraction
func (s *Service) CreateAttraction(ctx context.Context, attraction *model.Attraction) error {
	if err := s.checkAttraction(ctx, attraction); err != nil {
		return err
	}
	attraction.ID = 0
	if err := s.repos.Attraction.Create(ctx, attraction); err != nil {
		return storage("create attraction", err)
	}
	return nil
}

// UpdateAttraction replaces an attraction
func (s *Service) UpdateAttraction(ctx context.Context, attraction *model.Attraction) error {
	if err := s.checkAttraction(ctx, attraction); err != nil {
		return err
	}
	ok, err := s.repos.Attraction.Update(ctx, attraction)
	return updated(ok, err, model.EntityAttraction, attraction.ID)
}
