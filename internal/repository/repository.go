package repository

import (
	"context"
	"fmt"

	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/jmoiron/sqlx"
)

// CountryRepository defines operations for countries
type CountryRepository interface {
	List(ctx context.Context, filter model.CountryFilter) ([]model.Country, error)
	Get(ctx context.Context, id int64) (*model.Country, error)
	Create(ctx context.Context, country *model.Country) error
	Update(ctx context.Context, country *model.Country) (bool, error)
	FilterOptions(ctx context.Context) (*model.FilterOptions, error)
}

// CityRepository defines operations for cities
type CityRepository interface {
	List(ctx context.Context) ([]model.CityDetail, error)
	ListByCountry(ctx context.Context, countryID int64) ([]model.City, error)
	Get(ctx context.Context, id int64) (*model.CityDetail, error)
	Create(ctx context.Context, city *model.City) error
	Update(ctx context.Context, city *model.City) (bool, error)
}

// AttractionRepository defines operations for attractions
type AttractionRepository interface {
	List(ctx context.Context) ([]model.AttractionDetail, error)
	ListByCountry(ctx context.Context, countryID int64) ([]model.AttractionDetail, error)
	Get(ctx context.Context, id int64) (*model.AttractionDetail, error)
	GetMany(ctx context.Context, ids []int64) ([]model.Attraction, error)
	Create(ctx context.Context, attraction *model.Attraction) error
	Update(ctx context.Context, attraction *model.Attraction) (bool, error)
}

// HotelRepository defines operations for hotels
type HotelRepository interface {
	List(ctx context.Context) ([]model.HotelDetail, error)
	ListByAttractions(ctx context.Context, attractionIDs []int64) ([]model.HotelDetail, error)
	Get(ctx context.Context, id int64) (*model.HotelDetail, error)
	Create(ctx context.Context, hotel *model.Hotel) error
	Update(ctx context.Context, hotel *model.Hotel) (bool, error)
}

// BookingRepository defines operations for bookings
type BookingRepository interface {
	List(ctx context.Context) ([]model.BookingDetail, error)
	ListByUser(ctx context.Context, userID string, order model.BookingOrder) ([]model.BookingDetail, error)
	Get(ctx context.Context, id int64) (*model.BookingDetail, error)
	Create(ctx context.Context, booking *model.Booking) error
	Update(ctx context.Context, booking *model.Booking) (bool, error)
}

// CascadeRepository deletes rows by reference for the integrity manager
type CascadeRepository interface {
	Exists(ctx context.Context, entity model.Entity, id int64) (bool, error)
	DeleteSelected(ctx context.Context, sel Selector, rootID int64) (int64, error)
	DeleteByID(ctx context.Context, entity model.Entity, id int64) (int64, error)
}

// Container holds all repositories
type Container struct {
	Country    CountryRepository
	City       CityRepository
	Attraction AttractionRepository
	Hotel      HotelRepository
	Booking    BookingRepository
	Cascade    CascadeRepository
}

// NewRepositories creates repositories bound to db, which may be a *sqlx.DB or
// a *sqlx.Tx. Queries are written with ? placeholders and rebound per driver.
func NewRepositories(db sqlx.ExtContext) *Container {
	return &Container{
		Country:    &countryRepository{db: db},
		City:       &cityRepository{db: db},
		Attraction: &attractionRepository{db: db},
		Hotel:      &hotelRepository{db: db},
		Booking:    &bookingRepository{db: db},
		Cascade:    &cascadeRepository{db: db},
	}
}

// Store owns the connection pool and hands out repositories, optionally
// scoped to a transaction
type Store struct {
	db    *sqlx.DB
	repos *Container
}

// NewStore creates a store over db
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db, repos: NewRepositories(db)}
}

// Repos returns repositories that run each statement on its own
func (s *Store) Repos() *Container {
	return s.repos
}

// WithTx runs fn with repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) WithTx(ctx context.Context, fn func(repos *Container) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(NewRepositories(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// IsDatabaseEmpty reports whether the catalog has no countries yet (used by main)
func IsDatabaseEmpty(ctx context.Context, db *sqlx.DB) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM countries"
	err := db.GetContext(ctx, &count, query)
	if err != nil {
		// Simplify error handling for non-existent tables
		return true, nil
	}
	return count == 0, nil
}
