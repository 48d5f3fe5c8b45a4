package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/jmoiron/sqlx"
)

type countryRepository struct {
	db sqlx.ExtContext
}

func (r *countryRepository) List(ctx context.Context, filter model.CountryFilter) ([]model.Country, error) {
	var conds []string
	var args []any
	if filter.Region != "" {
		conds = append(conds, "region = ?")
		args = append(args, filter.Region)
	}
	if filter.Currency != "" {
		conds = append(conds, "currency = ?")
		args = append(args, filter.Currency)
	}
	if filter.Language != "" {
		conds = append(conds, "language = ?")
		args = append(args, filter.Language)
	}

	q := "SELECT id, name, region, currency, language FROM countries"
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY name, id"

	countries := []model.Country{}
	if err := sqlx.SelectContext(ctx, r.db, &countries, r.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *countryRepository) Get(ctx context.Context, id int64) (*model.Country, error) {
	var country model.Country
	q := "SELECT id, name, region, currency, language FROM countries WHERE id = ?"
	if err := sqlx.GetContext(ctx, r.db, &country, r.db.Rebind(q), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *countryRepository) Create(ctx context.Context, country *model.Country) error {
	q := `
		INSERT INTO countries (name, region, currency, language)
		VALUES (?, ?, ?, ?)
		RETURNING id`
	return sqlx.GetContext(ctx, r.db, &country.ID, r.db.Rebind(q),
		country.Name, country.Region, country.Currency, country.Language)
}

func (r *countryRepository) Update(ctx context.Context, country *model.Country) (bool, error) {
	q := `
		UPDATE countries
		SET name = ?, region = ?, currency = ?, language = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, r.db.Rebind(q),
		country.Name, country.Region, country.Currency, country.Language, country.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *countryRepository) FilterOptions(ctx context.Context) (*model.FilterOptions, error) {
	opts := &model.FilterOptions{}
	targets := []struct {
		column string
		dest   *[]string
	}{
		{"region", &opts.Regions},
		{"currency", &opts.Currencies},
		{"language", &opts.Languages},
	}

	for _, t := range targets {
		values := []string{}
		q := "SELECT DISTINCT " + t.column + " FROM countries WHERE " + t.column + " <> '' ORDER BY " + t.column
		if err := sqlx.SelectContext(ctx, r.db, &values, q); err != nil {
			return nil, err
		}
		*t.dest = values
	}
	return opts, nil
}
