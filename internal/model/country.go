package model

// Country represents a country in the database
type Country struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name" validate:"required,max=100"`
	Region   string `db:"region" json:"region" validate:"max=50"`
	Currency string `db:"currency" json:"currency" validate:"max=50"`
	Language string `db:"language" json:"language" validate:"max=50"`
}

// CountryFilter narrows a country listing. Empty fields do not filter;
// non-empty fields must match exactly (case-sensitive).
type CountryFilter struct {
	Region   string `json:"region,omitempty"`
	Currency string `json:"currency,omitempty"`
	Language string `json:"language,omitempty"`
}

// FilterOptions holds the distinct values present in the countries table
type FilterOptions struct {
	Regions    []string `json:"regions"`
	Currencies []string `json:"currencies"`
	Languages  []string `json:"languages"`
}
