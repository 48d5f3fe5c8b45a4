package service

import (
	"context"
	"strings"

	"github.com/alexivanou/travel-planner/internal/failure"
	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/alexivanou/travel-planner/internal/validator"
)

// ListCountries returns all countries ordered by name
func (s *Service) ListCountries(ctx context.Context) ([]model.Country, error) {
	countries, err := s.repos.Country.List(ctx, model.CountryFilter{})
	if err != nil {
		return nil, storage("list countries", err)
	}
	return countries, nil
}

// GetCountry returns a country by id
func (s *Service) GetCountry(ctx context.Context, id int64) (*model.Country, error) {
	country, err := s.repos.Country.Get(ctx, id)
	if err != nil {
		return nil, storage("get country", err)
	}
	if country == nil {
		return nil, failure.NotFound(string(model.EntityCountry), id)
	}
	return country, nil
}

func normalizeCountry(c *model.Country) {
	c.Name = strings.TrimSpace(c.Name)
	c.Region = strings.TrimSpace(c.Region)
	c.Currency = strings.TrimSpace(c.Currency)
	c.Language = strings.TrimSpace(c.Language)
}

// CreateCountry validates and stores a new country
func (s *Service) CreateCountry(ctx context.Context, country *model.Country) error {
	normalizeCountry(country)
	if err := validator.ValidateStruct(country); err != nil {
		return err
	}
	country.ID = 0
	if err := s.repos.Country.Create(ctx, country); err != nil {
		return storage("create country", err)
	}
	s.invalidateFilterOptions(ctx)
	return nil
}

// UpdateCountry replaces a country
func (s *Service) UpdateCountry(ctx context.Context, country *model.Country) error {
	normalizeCountry(country)
	if err := validator.ValidateStruct(country); err != nil {
		return err
	}
	ok, err := s.repos.Country.Update(ctx, country)
	if err := updated(ok, err, model.EntityCountry, country.ID); err != nil {
		return err
	}
	s.invalidateFilterOptions(ctx)
	return nil
}
