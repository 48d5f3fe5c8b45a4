package service

import (
	"context"
	"strings"

	"github.com/alexivanou/travel-planner/internal/failure"
	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/alexivanou/travel-planner/internal/validator"
)

// ListHotels returns all hotels with attraction and city names
func (s *Service) ListHotels(ctx context.Context) ([]model.HotelDetail, error) {
	hotels, err := s.repos.Hotel.List(ctx)
	if err != nil {
		return nil, storage("list hotels", err)
	}
	return hotels, nil
}

// GetHotel returns a hotel by id
func (s *Service) GetHotel(ctx context.Context, id int64) (*model.HotelDetail, error) {
	hotel, err := s.repos.Hotel.Get(ctx, id)
	if err != nil {
		return nil, storage("get hotel", err)
	}
	if hotel == nil {
		return nil, failure.NotFound(string(model.EntityHotel), id)
	}
	return hotel, nil
}

func (s *Service) checkHotel(ctx context.Context, h *model.Hotel) error {
	h.Name = strings.TrimSpace(h.Name)
	h.Address = strings.TrimSpace(h.Address)
	h.Contact = strings.TrimSpace(h.Contact)
	if err := validator.ValidateStruct(h); err != nil {
		return err
	}
	if err := requireExists(ctx, s.repos, model.EntityAttraction, h.AttractionID); err != nil {
		return err
	}
	return requireExists(ctx, s.repos, model.EntityCity, h.CityID)
}

// CreateHotel validates and stores a new hotel
func (s *Service) CreateHotel(ctx context.Context, hotel *model.Hotel) error {
	if err := s.checkHotel(ctx, hotel); err != nil {
		return err
	}
	hotel.ID = 0
	if err := s.repos.Hotel.Create(ctx, hotel); err != nil {
		return storage("create hotel", err)
	}
	return nil
}

// UpdateHotel replaces a hotel
func (s *Service) UpdateHotel(ctx context.Context, hotel *model.Hotel) error {
	if err := s.checkHotel(ctx, hotel); err != nil {
		return err
	}
	ok, err := s.repos.Hotel.Update(ctx, hotel)
	return updated(ok, err, model.EntityHotel, hotel.ID)
}
