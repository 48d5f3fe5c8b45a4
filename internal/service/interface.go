package service

import (
	"context"

	"github.com/alexivanou/travel-planner/internal/integrity"
	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/alexivanou/travel-planner/internal/wizard"
)

// CatalogService defines the catalog management operations used by the API
type CatalogService interface {
	ListCountries(ctx context.Context) ([]model.Country, error)
	GetCountry(ctx context.Context, id int64) (*model.Country, error)
	CreateCountry(ctx context.Context, country *model.Country) error
	UpdateCountry(ctx context.Context, country *model.Country) error

	ListCities(ctx context.Context) ([]model.CityDetail, error)
	GetCity(ctx context.Context, id int64) (*model.CityDetail, error)
	CreateCity(ctx context.Context, city *model.City) error
	UpdateCity(ctx context.Context, city *model.City) error

	ListAttractions(ctx context.Context) ([]model.AttractionDetail, error)
	GetAttraction(ctx context.Context, id int64) (*model.AttractionDetail, error)
	CreateAttraction(ctx context.Context, attraction *model.Attraction) error
	UpdateAttraction(ctx context.Context, attraction *model.Attraction) error

	ListHotels(ctx context.Context) ([]model.HotelDetail, error)
	GetHotel(ctx context.Context, id int64) (*model.HotelDetail, error)
	CreateHotel(ctx context.Context, hotel *model.Hotel) error
	UpdateHotel(ctx context.Context, hotel *model.Hotel) error

	ListBookings(ctx context.Context) ([]model.BookingDetail, error)
	GetBooking(ctx context.Context, id int64) (*model.BookingDetail, error)
	CreateBooking(ctx context.Context, booking *model.Booking) error
	UpdateBooking(ctx context.Context, booking *model.Booking) error

	Delete(ctx context.Context, entity model.Entity, id int64) (*integrity.Report, error)
}

// WizardService defines the booking wizard operations used by the API
type WizardService interface {
	SelectCountry(ctx context.Context, filter model.CountryFilter) (*wizard.CountryStep, error)
	SelectAttractions(ctx context.Context, countryID int64) (*wizard.AttractionStep, error)
	SelectDates(ctx context.Context, state wizard.State) (*wizard.DateStep, error)
	SelectHotels(ctx context.Context, state wizard.State) (*wizard.HotelStep, error)
	CompleteBooking(ctx context.Context, userID string, state wizard.State) ([]model.Booking, error)
	BookingConfirmation(ctx context.Context, userID string) ([]model.BookingDetail, error)
	MyBookings(ctx context.Context, userID string) ([]model.BookingDetail, error)
}

var _ WizardService = (*wizard.Service)(nil)
var _ CatalogService = (*Service)(nil)
