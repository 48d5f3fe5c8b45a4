package model

// Budget levels recognised by pricing; any other value is allowed
const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
	BudgetOther  = "other"
)

// Attraction represents an attraction in the database
type Attraction struct {
	ID          int64   `db:"id" json:"id"`
	CountryID   int64   `db:"country_id" json:"country_id" validate:"required,gt=0"`
	CityID      int64   `db:"city_id" json:"city_id" validate:"required,gt=0"`
	Name        string  `db:"name" json:"name" validate:"required,max=100"`
	Type        string  `db:"type" json:"type" validate:"max=50"`
	Rating      float64 `db:"rating" json:"rating" validate:"gte=0,lte=5"`
	BudgetLevel string  `db:"budget_level" json:"budget_level" validate:"max=50,budgetlevel"`
	Description string  `db:"description" json:"description"`
}

// AttractionDetail is an attraction joined with its country and city names
type AttractionDetail struct {
	Attraction
	CountryName string `db:"country_name" json:"country_name"`
	CityName    string `db:"city_name" json:"city_name"`
}
