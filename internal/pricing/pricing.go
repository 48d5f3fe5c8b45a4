// Package pricing computes booking totals.
package pricing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alexivanou/travel-planner/internal/model"
)

var surcharges = map[string]int64{
	model.BudgetHigh:   50,
	model.BudgetMedium: 30,
	model.BudgetLow:    15,
}

const defaultSurcharge = 20

// Nights returns the whole days between start and end, truncated
func Nights(start, end time.Time) int64 {
	return int64(end.Sub(start).Hours() / 24)
}

// Surcharge returns the attraction fee for a budget level, matched case-insensitively
func Surcharge(budgetLevel string) decimal.Decimal {
	if v, ok := surcharges[strings.ToLower(budgetLevel)]; ok {
		return decimal.NewFromInt(v)
	}
	return decimal.NewFromInt(defaultSurcharge)
}

// Total prices a stay at attraction between start and end. The hotel, when
// given, is charged per night on top of the attraction surcharge.
func Total(start, end time.Time, attraction model.Attraction, hotel *model.Hotel) decimal.Decimal {
	total := Surcharge(attraction.BudgetLevel)
	if hotel != nil {
		total = total.Add(hotel.PricePerNight.Mul(decimal.NewFromInt(Nights(start, end))))
	}
	return total
}
