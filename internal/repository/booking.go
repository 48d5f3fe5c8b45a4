package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/jmoiron/sqlx"
)

const bookingDetailQuery = `
	SELECT b.id, b.user_id, b.country_id, b.attraction_id, b.hotel_id, b.start_date, b.end_date, b.total_price,
		co.name AS country_name, a.name AS attraction_name, c.name AS city_name, h.name AS hotel_name
	FROM bookings b
	JOIN countries co ON co.id = b.country_id
	JOIN attractions a ON a.id = b.attraction_id
	JOIN cities c ON c.id = a.city_id
	LEFT JOIN hotels h ON h.id = b.hotel_id`

type bookingRepository struct {
	db sqlx.ExtContext
}

func (r *bookingRepository) List(ctx context.Context) ([]model.BookingDetail, error) {
	bookings := []model.BookingDetail{}
	if err := sqlx.SelectContext(ctx, r.db, &bookings, bookingDetailQuery+" ORDER BY b.id DESC"); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID string, order model.BookingOrder) ([]model.BookingDetail, error) {
	q := bookingDetailQuery + " WHERE b.user_id = ?"
	switch order {
	case model.OrderByStartDate:
		q += " ORDER BY b.start_date DESC, b.id DESC"
	default:
		q += " ORDER BY b.id DESC"
	}

	bookings := []model.BookingDetail{}
	if err := sqlx.SelectContext(ctx, r.db, &bookings, r.db.Rebind(q), userID); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) Get(ctx context.Context, id int64) (*model.BookingDetail, error) {
	var booking model.BookingDetail
	q := bookingDetailQuery + " WHERE b.id = ?"
	if err := sqlx.GetContext(ctx, r.db, &booking, r.db.Rebind(q), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *model.Booking) error {
	q := `
		INSERT INTO bookings (user_id, country_id, attraction_id, hotel_id, start_date, end_date, total_price)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`
	return sqlx.GetContext(ctx, r.db, &b.ID, r.db.Rebind(q),
		b.UserID, b.CountryID, b.AttractionID, b.HotelID, b.StartDate, b.EndDate, b.TotalPrice)
}

func (r *bookingRepository) Update(ctx context.Context, b *model.Booking) (bool, error) {
	q := `
		UPDATE bookings
		SET user_id = ?, country_id = ?, attraction_id = ?, hotel_id = ?, start_date = ?, end_date = ?, total_price = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, r.db.Rebind(q),
		b.UserID, b.CountryID, b.AttractionID, b.HotelID, b.StartDate, b.EndDate, b.TotalPrice, b.ID)
	return affected(res, err)
}
