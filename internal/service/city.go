package service

import (
	"context"
	"strings"

	"github.com/alexivanou/travel-planner/internal/failure"
	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/alexivanou/travel-planner/internal/validator"
)

// ListCities returns all cities with their country names
func (s *Service) ListCities(ctx context.Context) ([]model.CityDetail, error) {
	cities, err := s.repos.City.List(ctx)
	if err != nil {
		return nil, storage("list cities", err)
	}
	return cities, nil
}

// GetCity returns a city by id
func (s *Service) GetCity(ctx context.Context, id int64) (*model.CityDetail, error) {
	city, err := s.repos.City.Get(ctx, id)
	if err != nil {
		return nil, storage("get city", err)
	}
	if city == nil {
		return nil, failure.NotFound(string(model.EntityCity), id)
	}
	return city, nil
}

func (s *Service) checkCity(ctx context.Context, city *model.City) error {
	city.Name = strings.TrimSpace(city.Name)
	if err := validator.ValidateStruct(city); err != nil {
		return err
	}
	return requireExists(ctx, s.repos, model.EntityCountry, city.CountryID)
}

// CreateCity validates and stores a new city
func (s *Service) CreateCity(ctx context.Context, city *model.City) error {
	if err := s.checkCity(ctx, city); err != nil {
		return err
	}
	city.ID = 0
	if err := s.repos.City.Create(ctx, city); err != nil {
		return storage("create city", err)
	}
	return nil
}

// UpdateCity replaces a city
func (s *Service) UpdateCity(ctx context.Context, city *model.City) error {
	if err := s.checkCity(ctx, city); err != nil {
		return err
	}
	ok, err := s.repos.City.Update(ctx, city)
	return updated(ok, err, model.EntityCity, city.ID)
}
