package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/jmoiron/sqlx"
)

const attractionDetailQuery = `
	SELECT a.id, a.country_id, a.city_id, a.name, a.type, a.rating, a.budget_level, a.description,
		co.name AS country_name, c.name AS city_name
	FROM attractions a
	JOIN countries co ON co.id = a.country_id
	JOIN cities c ON c.id = a.city_id`

const attractionColumns = "id, country_id, city_id, name, type, rating, budget_level, description"

type attractionRepository struct {
	db sqlx.ExtContext
}

func (r *attractionRepository) List(ctx context.Context) ([]model.AttractionDetail, error) {
	attractions := []model.AttractionDetail{}
	if err := sqlx.SelectContext(ctx, r.db, &attractions, attractionDetailQuery+" ORDER BY a.name, a.id"); err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) ListByCountry(ctx context.Context, countryID int64) ([]model.AttractionDetail, error) {
	q := attractionDetailQuery + " WHERE a.country_id = ? ORDER BY a.name, a.id"
	attractions := []model.AttractionDetail{}
	if err := sqlx.SelectContext(ctx, r.db, &attractions, r.db.Rebind(q), countryID); err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) Get(ctx context.Context, id int64) (*model.AttractionDetail, error) {
	var attraction model.AttractionDetail
	q := attractionDetailQuery + " WHERE a.id = ?"
	if err := sqlx.GetContext(ctx, r.db, &attraction, r.db.Rebind(q), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &attraction, nil
}

// GetMany returns the attractions among ids that exist, in id order
func (r *attractionRepository) GetMany(ctx context.Context, ids []int64) ([]model.Attraction, error) {
	attractions := []model.Attraction{}
	if len(ids) == 0 {
		return attractions, nil
	}
	q, args, err := sqlx.In("SELECT "+attractionColumns+" FROM attractions WHERE id IN (?) ORDER BY id", ids)
	if err != nil {
		return nil, err
	}
	if err := sqlx.SelectContext(ctx, r.db, &attractions, r.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) Create(ctx context.Context, a *model.Attraction) error {
	q := `
		INSERT INTO attractions (country_id, city_id, name, type, rating, budget_level, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`
	return sqlx.GetContext(ctx, r.db, &a.ID, r.db.Rebind(q),
		a.CountryID, a.CityID, a.Name, a.Type, a.Rating, a.BudgetLevel, a.Description)
}

func (r *attractionRepository) Update(ctx context.Context, a *model.Attraction) (bool, error) {
	q := `
		UPDATE attractions
		SET country_id = ?, city_id = ?, name = ?, type = ?, rating = ?, budget_level = ?, description = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, r.db.Rebind(q),
		a.CountryID, a.CityID, a.Name, a.Type, a.Rating, a.BudgetLevel, a.Description, a.ID)
	return affected(res, err)
}
