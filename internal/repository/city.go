package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/jmoiron/sqlx"
)

const cityDetailQuery = `
	SELECT c.id, c.country_id, c.name, c.is_capital, co.name AS country_name
	FROM cities c
	JOIN countries co ON co.id = c.country_id`

type cityRepository struct {
	db sqlx.ExtContext
}

func (r *cityRepository) List(ctx context.Context) ([]model.CityDetail, error) {
	cities := []model.CityDetail{}
	if err := sqlx.SelectContext(ctx, r.db, &cities, cityDetailQuery+" ORDER BY c.name, c.id"); err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityRepository) ListByCountry(ctx context.Context, countryID int64) ([]model.City, error) {
	q := "SELECT id, country_id, name, is_capital FROM cities WHERE country_id = ? ORDER BY name, id"
	cities := []model.City{}
	if err := sqlx.SelectContext(ctx, r.db, &cities, r.db.Rebind(q), countryID); err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityRepository) Get(ctx context.Context, id int64) (*model.CityDetail, error) {
	var city model.CityDetail
	q := cityDetailQuery + " WHERE c.id = ?"
	if err := sqlx.GetContext(ctx, r.db, &city, r.db.Rebind(q), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) Create(ctx context.Context, city *model.City) error {
	q := `
		INSERT INTO cities (country_id, name, is_capital)
		VALUES (?, ?, ?)
		RETURNING id`
	return sqlx.GetContext(ctx, r.db, &city.ID, r.db.Rebind(q), city.CountryID, city.Name, city.IsCapital)
}

func (r *cityRepository) Update(ctx context.Context, city *model.City) (bool, error) {
	q := "UPDATE cities SET country_id = ?, name = ?, is_capital = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, r.db.Rebind(q), city.CountryID, city.Name, city.IsCapital, city.ID)
	return affected(res, err)
}

// affected reports whether an UPDATE matched any row
func affected(res sql.Result, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
