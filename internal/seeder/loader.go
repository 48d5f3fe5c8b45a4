package seeder

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alexivanou/travel-planner/internal/repository"
	"github.com/alexivanou/travel-planner/internal/validator"
)

// Summary counts the rows inserted by Load
type Summary struct {
	Countries   int `json:"countries"`
	Cities      int `json:"cities"`
	Attractions int `json:"attractions"`
	Hotels      int `json:"hotels"`
}

type keyMap map[string]int64

func (m keyMap) put(kind, key string, id int64) error {
	if _, dup := m[key]; dup {
		return fmt.Errorf("duplicate %s key %q", kind, key)
	}
	m[key] = id
	return nil
}

func (m keyMap) lookup(kind, key string) (int64, error) {
	id, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("unknown %s key %q", kind, key)
	}
	return id, nil
}

// Load inserts the catalog in one transaction, resolving record keys to the
// generated ids. Nothing is stored if any record is rejected.
func Load(ctx context.Context, store *repository.Store, catalog *Catalog, logger *zap.Logger) (*Summary, error) {
	summary := &Summary{}

	err := store.WithTx(ctx, func(repos *repository.Container) error {
		countries, cities, attractions, hotels := keyMap{}, keyMap{}, keyMap{}, keyMap{}
		cityCountry := map[int64]int64{}

		for _, rec := range catalog.Countries {
			country := rec.Country
			if err := validator.ValidateStruct(&country); err != nil {
				return fmt.Errorf("country %q: %w", rec.Key, err)
			}
			if err := repos.Country.Create(ctx, &country); err != nil {
				return fmt.Errorf("failed to insert country %q: %w", rec.Key, err)
			}
			if err := countries.put(KindCountry, rec.Key, country.ID); err != nil {
				return err
			}
			summary.Countries++
		}

		for _, rec := range catalog.Cities {
			city := rec.City
			countryID, err := countries.lookup(KindCountry, rec.CountryKey)
			if err != nil {
				return fmt.Errorf("city %q: %w", rec.Key, err)
			}
			city.CountryID = countryID
			if err := validator.ValidateStruct(&city); err != nil {
				return fmt.Errorf("city %q: %w", rec.Key, err)
			}
			if err := repos.City.Create(ctx, &city); err != nil {
				return fmt.Errorf("failed to insert city %q: %w", rec.Key, err)
			}
			if err := cities.put(KindCity, rec.Key, city.ID); err != nil {
				return err
			}
			cityCountry[city.ID] = countryID
			summary.Cities++
		}

		for _, rec := range catalog.Attractions {
			a := rec.Attraction
			countryID, err := countries.lookup(KindCountry, rec.CountryKey)
			if err != nil {
				return fmt.Errorf("attraction %q: %w", rec.Key, err)
			}
			cityID, err := cities.lookup(KindCity, rec.CityKey)
			if err != nil {
				return fmt.Errorf("attraction %q: %w", rec.Key, err)
			}
			if cityCountry[cityID] != countryID {
				return fmt.Errorf("attraction %q: city %q is not in country %q", rec.Key, rec.CityKey, rec.CountryKey)
			}
			a.CountryID, a.CityID = countryID, cityID
			if err := validator.ValidateStruct(&a); err != nil {
				return fmt.Errorf("attraction %q: %w", rec.Key, err)
			}
			if err := repos.Attraction.Create(ctx, &a); err != nil {
				return fmt.Errorf("failed to insert attraction %q: %w", rec.Key, err)
			}
			if err := attractions.put(KindAttraction, rec.Key, a.ID); err != nil {
				return err
			}
			summary.Attractions++
		}

		for _, rec := range catalog.Hotels {
			h := rec.Hotel
			attractionID, err := attractions.lookup(KindAttraction, rec.AttractionKey)
			if err != nil {
				return fmt.Errorf("hotel %q: %w", rec.Key, err)
			}
			cityID, err := cities.lookup(KindCity, rec.CityKey)
			if err != nil {
				return fmt.Errorf("hotel %q: %w", rec.Key, err)
			}
			h.AttractionID, h.CityID = attractionID, cityID
			if err := validator.ValidateStruct(&h); err != nil {
				return fmt.Errorf("hotel %q: %w", rec.Key, err)
			}
			if err := repos.Hotel.Create(ctx, &h); err != nil {
				return fmt.Errorf("failed to insert hotel %q: %w", rec.Key, err)
			}
			if err := hotels.put(KindHotel, rec.Key, h.ID); err != nil {
				return err
			}
			summary.Hotels++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Catalog loaded",
		zap.Int("countries", summary.Countries),
		zap.Int("cities", summary.Cities),
		zap.Int("attractions", summary.Attractions),
		zap.Int("hotels", summary.Hotels))
	return summary, nil
}
