package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/jmoiron/sqlx"
)

const hotelDetailQuery = `
	SELECT h.id, h.attraction_id, h.city_id, h.name, h.stars, h.price_per_night, h.address, h.contact,
		a.name AS attraction_name, c.name AS city_name
	FROM hotels h
	JOIN attractions a ON a.id = h.attraction_id
	JOIN cities c ON c.id = h.city_id`

type hotelRepository struct {
	db sqlx.ExtContext
}

func (r *hotelRepository) List(ctx context.Context) ([]model.HotelDetail, error) {
	hotels := []model.HotelDetail{}
	if err := sqlx.SelectContext(ctx, r.db, &hotels, hotelDetailQuery+" ORDER BY h.name, h.id"); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) ListByAttractions(ctx context.Context, attractionIDs []int64) ([]model.HotelDetail, error) {
	hotels := []model.HotelDetail{}
	if len(attractionIDs) == 0 {
		return hotels, nil
	}
	q, args, err := sqlx.In(hotelDetailQuery+" WHERE h.attraction_id IN (?) ORDER BY h.name, h.id", attractionIDs)
	if err != nil {
		return nil, err
	}
	if err := sqlx.SelectContext(ctx, r.db, &hotels, r.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) Get(ctx context.Context, id int64) (*model.HotelDetail, error) {
	var hotel model.HotelDetail
	q := hotelDetailQuery + " WHERE h.id = ?"
	if err := sqlx.GetContext(ctx, r.db, &hotel, r.db.Rebind(q), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) Create(ctx context.Context, h *model.Hotel) error {
	q := `
		INSERT INTO hotels (attraction_id, city_id, name, stars, price_per_night, address, contact)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`
	return sqlx.GetContext(ctx, r.db, &h.ID, r.db.Rebind(q),
		h.AttractionID, h.CityID, h.Name, h.Stars, h.PricePerNight, h.Address, h.Contact)
}

func (r *hotelRepository) Update(ctx context.Context, h *model.Hotel) (bool, error) {
	q := `
		UPDATE hotels
		SET attraction_id = ?, city_id = ?, name = ?, stars = ?, price_per_night = ?, address = ?, contact = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, r.db.Rebind(q),
		h.AttractionID, h.CityID, h.Name, h.Stars, h.PricePerNight, h.Address, h.Contact, h.ID)
	return affected(res, err)
}
