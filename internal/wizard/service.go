// Package wizard implements the four step booking flow: country, attractions,
// dates and hotel, followed by booking completion.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/alexivanou/travel-planner/internal/cache"
	"github.com/alexivanou/travel-planner/internal/failure"
	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/alexivanou/travel-planner/internal/pricing"
	"github.com/alexivanou/travel-planner/internal/repository"
	"github.com/alexivanou/travel-planner/internal/validator"
)

// FilterOptionsKey is the cache key of the country filter options
const FilterOptionsKey = "wizard:filter-options"

// CountryStep is the result of the first step
type CountryStep struct {
	Countries []model.Country     `json:"countries"`
	Options   model.FilterOptions `json:"filter_options"`
	Selected  model.CountryFilter `json:"selected"`
}

// AttractionStep lists what can be picked in the chosen country
type AttractionStep struct {
	Country     model.Country            `json:"country"`
	Cities      []model.City             `json:"cities"`
	Attractions []model.AttractionDetail `json:"attractions"`
	State       State                    `json:"state"`
	Token       string                   `json:"token"`
}

// DateStep confirms the selected attractions before dates are chosen
type DateStep struct {
	Attractions []model.Attraction `json:"attractions"`
	State       State              `json:"state"`
	Token       string             `json:"token"`
}

// HotelQuote is a hotel together with the price of the whole trip if chosen
type HotelQuote struct {
	model.HotelDetail
	TripTotal decimal.Decimal `json:"trip_total"`
}

// HotelStep lists hotels serving the selected attractions
type HotelStep struct {
	Hotels []HotelQuote `json:"hotels"`
	Nights int64        `json:"nights"`
	// TotalWithoutHotel prices the trip when no hotel is chosen
	TotalWithoutHotel decimal.Decimal `json:"total_without_hotel"`
	State             State           `json:"state"`
	Token             string          `json:"token"`
}

// Service runs the wizard steps against the store
type Service struct {
	store  *repository.Store
	cache  cache.Cache
	logger *zap.Logger
}

// NewService creates a new wizard service
func NewService(store *repository.Store, c cache.Cache, logger *zap.Logger) *Service {
	return &Service{store: store, cache: c, logger: logger}
}

// SelectCountry lists countries matching filter, with the values available
// for each filter field
func (s *Service) SelectCountry(ctx context.Context, filter model.CountryFilter) (*CountryStep, error) {
	repos := s.store.Repos()

	opts, err := s.filterOptions(ctx, repos)
	if err != nil {
		return nil, err
	}

	countries, err := repos.Country.List(ctx, filter)
	if err != nil {
		return nil, failure.Storage(fmt.Errorf("failed to list countries: %w", err))
	}

	s.logger.Debug("Countries filtered",
		zap.String("region", filter.Region),
		zap.String("currency", filter.Currency),
		zap.String("language", filter.Language),
		zap.Int("count", len(countries)))

	return &CountryStep{Countries: countries, Options: *opts, Selected: filter}, nil
}

func (s *Service) filterOptions(ctx context.Context, repos *repository.Container) (*model.FilterOptions, error) {
	var opts model.FilterOptions
	err := s.cache.Get(ctx, FilterOptionsKey, &opts)
	if err == nil {
		return &opts, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("Failed to read filter options from cache", zap.Error(err))
	}

	loaded, err := repos.Country.FilterOptions(ctx)
	if err != nil {
		return nil, failure.Storage(fmt.Errorf("failed to load filter options: %w", err))
	}
	if err := s.cache.Save(ctx, FilterOptionsKey, loaded); err != nil {
		s.logger.Warn("Failed to cache filter options", zap.Error(err))
	}
	return loaded, nil
}

// SelectAttractions returns the country with its cities and attractions
func (s *Service) SelectAttractions(ctx context.Context, countryID int64) (*AttractionStep, error) {
	repos := s.store.Repos()

	country, err := checkCountry(ctx, repos, countryID)
	if err != nil {
		return nil, err
	}

	cities, err := repos.City.ListByCountry(ctx, countryID)
	if err != nil {
		return nil, failure.Storage(fmt.Errorf("failed to list cities: %w", err))
	}
	attractions, err := repos.Attraction.ListByCountry(ctx, countryID)
	if err != nil {
		return nil, failure.Storage(fmt.Errorf("failed to list attractions: %w", err))
	}

	state := State{CountryID: countryID}
	return &AttractionStep{
		Country:     *country,
		Cities:      cities,
		Attractions: attractions,
		State:       state,
		Token:       state.Encode(),
	}, nil
}

// SelectDates validates the country and attraction selection
func (s *Service) SelectDates(ctx context.Context, state State) (*DateStep, error) {
	repos := s.store.Repos()

	if _, err := checkCountry(ctx, repos, state.CountryID); err != nil {
		return nil, err
	}
	attractions, err := checkAttractions(ctx, repos, &state)
	if err != nil {
		return nil, err
	}

	return &DateStep{Attractions: attractions, State: state, Token: state.Encode()}, nil
}

// SelectHotels lists the hotels attached to any selected attraction
func (s *Service) SelectHotels(ctx context.Context, state State) (*HotelStep, error) {
	repos := s.store.Repos()

	if _, err := checkCountry(ctx, repos, state.CountryID); err != nil {
		return nil, err
	}
	attractions, err := checkAttractions(ctx, repos, &state)
	if err != nil {
		return nil, err
	}
	if err := checkDates(state); err != nil {
		return nil, err
	}

	hotels, err := repos.Hotel.ListByAttractions(ctx, state.AttractionIDs)
	if err != nil {
		return nil, failure.Storage(fmt.Errorf("failed to list hotels: %w", err))
	}

	quotes := make([]HotelQuote, 0, len(hotels))
	for _, h := range hotels {
		hotel := h.Hotel
		quotes = append(quotes, HotelQuote{HotelDetail: h, TripTotal: tripTotal(state, attractions, &hotel)})
	}

	return &HotelStep{
		Hotels:            quotes,
		Nights:            pricing.Nights(state.StartDate, state.EndDate),
		TotalWithoutHotel: tripTotal(state, attractions, nil),
		State:             state,
		Token:             state.Encode(),
	}, nil
}

// CompleteBooking validates the full state and stores one booking per
// selected attraction in a single transaction
func (s *Service) CompleteBooking(ctx context.Context, userID string, state State) ([]model.Booking, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, failure.Validation("user id is required")
	}

	var bookings []model.Booking
	err := s.store.WithTx(ctx, func(repos *repository.Container) error {
		if _, err := checkCountry(ctx, repos, state.CountryID); err != nil {
			return err
		}
		attractions, err := checkAttractions(ctx, repos, &state)
		if err != nil {
			return err
		}
		if err := checkDates(state); err != nil {
			return err
		}
		hotel, err := checkHotel(ctx, repos, state)
		if err != nil {
			return err
		}

		bookings = BuildBookings(userID, state, attractions, hotel)
		for i := range bookings {
			if err := validator.ValidateStruct(&bookings[i]); err != nil {
				return err
			}
			if err := repos.Booking.Create(ctx, &bookings[i]); err != nil {
				return failure.Storage(fmt.Errorf("failed to create booking: %w", err))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Booking completed",
		zap.String("user_id", userID),
		zap.Int64("country_id", state.CountryID),
		zap.Int("bookings", len(bookings)))
	return bookings, nil
}

// BookingConfirmation lists the user's bookings, most recently made first
func (s *Service) BookingConfirmation(ctx context.Context, userID string) ([]model.BookingDetail, error) {
	return s.userBookings(ctx, userID, model.OrderNewestFirst)
}

// MyBookings lists the user's bookings, latest trip first
func (s *Service) MyBookings(ctx context.Context, userID string) ([]model.BookingDetail, error) {
	return s.userBookings(ctx, userID, model.OrderByStartDate)
}

func (s *Service) userBookings(ctx context.Context, userID string, order model.BookingOrder) ([]model.BookingDetail, error) {
	bookings, err := s.store.Repos().Booking.ListByUser(ctx, userID, order)
	if err != nil {
		return nil, failure.Storage(fmt.Errorf("failed to list bookings: %w", err))
	}
	return bookings, nil
}

func tripTotal(state State, attractions []model.Attraction, hotel *model.Hotel) decimal.Decimal {
	total := decimal.Zero
	for _, a := range attractions {
		total = total.Add(pricing.Total(state.StartDate, state.EndDate, a, hotel))
	}
	return total
}
