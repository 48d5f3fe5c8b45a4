package service

import (
	"context"
	"strings"

	"github.com/alexivanou/travel-planner/internal/failure"
	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/alexivanou/travel-planner/internal/validator"
)

// ListBookings returns every booking, newest first
func (s *Service) ListBookings(ctx context.Context) ([]model.BookingDetail, error) {
	bookings, err := s.repos.Booking.List(ctx)
	if err != nil {
		return nil, storage("list bookings", err)
	}
	return bookings, nil
}

// GetBooking returns a booking by id
func (s *Service) GetBooking(ctx context.Context, id int64) (*model.BookingDetail, error) {
	booking, err := s.repos.Booking.Get(ctx, id)
	if err != nil {
		return nil, storage("get booking", err)
	}
	if booking == nil {
		return nil, failure.NotFound(string(model.EntityBooking), id)
	}
	return booking, nil
}

func (s *Service) checkBooking(ctx context.Context, b *model.Booking) error {
	b.UserID = strings.TrimSpace(b.UserID)
	if err := validator.ValidateStruct(b); err != nil {
		return err
	}
	if err := requireExists(ctx, s.repos, model.EntityCountry, b.CountryID); err != nil {
		return err
	}
	if err := requireExists(ctx, s.repos, model.EntityAttraction, b.AttractionID); err != nil {
		return err
	}
	if b.HotelID != nil {
		return requireExists(ctx, s.repos, model.EntityHotel, *b.HotelID)
	}
	return nil
}

// CreateBooking validates and stores a booking entered directly
func (s *Service) CreateBooking(ctx context.Context, booking *model.Booking) error {
	if err := s.checkBooking(ctx, booking); err != nil {
		return err
	}
	booking.ID = 0
	if err := s.repos.Booking.Create(ctx, booking); err != nil {
		return storage("create booking", err)
	}
	return nil
}

// UpdateBooking replaces a booking
func (s *Service) UpdateBooking(ctx context.Context, booking *model.Booking) error {
	if err := s.checkBooking(ctx, booking); err != nil {
		return err
	}
	ok, err := s.repos.Booking.Update(ctx, booking)
	return updated(ok, err, model.EntityBooking, booking.ID)
}
