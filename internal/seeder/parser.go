package seeder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/alexivanou/travel-planner/internal/model"
)

// Record kinds, the first column of every catalog line
const (
	KindCountry    = "country"
	KindCity       = "city"
	KindAttraction = "attraction"
	KindHotel      = "hotel"
)

// CountryRecord is a parsed country line:
// country  key  name  region  currency  language
type CountryRecord struct {
	Key     string
	Country model.Country
}

// CityRecord is a parsed city line:
// city  key  country-key  name  is-capital
type CityRecord struct {
	Key        string
	CountryKey string
	City       model.City
}

// AttractionRecord is a parsed attraction line:
// attraction  key  country-key  city-key  name  type  rating  budget-level  description
type AttractionRecord struct {
	Key        string
	CountryKey string
	CityKey    string
	Attraction model.Attraction
}

// HotelRecord is a parsed hotel line:
// hotel  key  attraction-key  city-key  name  stars  price-per-night  address  contact
type HotelRecord struct {
	Key           string
	AttractionKey string
	CityKey       string
	Hotel         model.Hotel
}

// Catalog holds every record of a catalog file in file order
type Catalog struct {
	Countries   []CountryRecord
	Cities      []CityRecord
	Attractions []AttractionRecord
	Hotels      []HotelRecord
}

// Size returns the number of records
func (c *Catalog) Size() int {
	return len(c.Countries) + len(c.Cities) + len(c.Attractions) + len(c.Hotels)
}

// ParseFile parses the catalog TSV file at path
func ParseFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads tab separated catalog records. Blank lines and lines starting
// with # are skipped; trailing optional columns may be omitted.
func Parse(r io.Reader) (*Catalog, error) {
	catalog := &Catalog{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "\t")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		if err := catalog.add(parts); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return catalog, nil
}

func (c *Catalog) add(parts []string) error {
	// column returns parts[i], or "" when the line is shorter
	column := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}
	required := func(n int) error {
		for i := 1; i <= n; i++ {
			if column(i) == "" {
				return fmt.Errorf("%s record needs at least %d columns", parts[0], n+1)
			}
		}
		return nil
	}

	switch parts[0] {
	case KindCountry:
		if err := required(2); err != nil {
			return err
		}
		c.Countries = append(c.Countries, CountryRecord{
			Key: column(1),
			Country: model.Country{
				Name:     column(2),
				Region:   column(3),
				Currency: column(4),
				Language: column(5),
			},
		})

	case KindCity:
		if err := required(3); err != nil {
			return err
		}
		capital := false
		if v := column(4); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid is-capital %q", v)
			}
			capital = b
		}
		c.Cities = append(c.Cities, CityRecord{
			Key:        column(1),
			CountryKey: column(2),
			City:       model.City{Name: column(3), IsCapital: capital},
		})

	case KindAttraction:
		if err := required(4); err != nil {
			return err
		}
		var rating float64
		if v := column(6); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("invalid rating %q", v)
			}
			rating = f
		}
		c.Attractions = append(c.Attractions, AttractionRecord{
			Key:        column(1),
			CountryKey: column(2),
			CityKey:    column(3),
			Attraction: model.Attraction{
				Name:        column(4),
				Type:        column(5),
				Rating:      rating,
				BudgetLevel: column(7),
				Description: column(8),
			},
		})

	case KindHotel:
		if err := required(4); err != nil {
			return err
		}
		stars := 1
		if v := column(5); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid stars %q", v)
			}
			stars = n
		}
		price := decimal.Zero
		if v := column(6); v != "" {
			d, err := decimal.NewFromString(v)
			if err != nil {
				return fmt.Errorf("invalid price %q", v)
			}
			price = d
		}
		c.Hotels = append(c.Hotels, HotelRecord{
			Key:           column(1),
			AttractionKey: column(2),
			CityKey:       column(3),
			Hotel: model.Hotel{
				Name:          column(4),
				Stars:         stars,
				PricePerNight: price,
				Address:       column(7),
				Contact:       column(8),
			},
		})

	default:
		return fmt.Errorf("unknown record kind %q", parts[0])
	}
	return nil
}
