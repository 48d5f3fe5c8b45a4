package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/alexivanou/travel-planner/internal/wizard"
)

func list[T any](h *Handler, fn func(ctx context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := fn(r.Context())
		if err != nil {
			h.writeError(w, r, err, nil)
			return
		}
		h.writeJSON(w, http.StatusOK, items)
	}
}

func get[T any](h *Handler, fn func(ctx context.Context, id int64) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.writeError(w, r, err, nil)
			return
		}
		item, err := fn(r.Context(), id)
		if err != nil {
			h.writeError(w, r, err, nil)
			return
		}
		h.writeJSON(w, http.StatusOK, item)
	}
}

func decodeEntity[T any](r *http.Request) (*T, error) {
	var v T
	if err := decodeJSON(r, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func create[T any](h *Handler, decode func(r *http.Request) (*T, error), fn func(ctx context.Context, v *T) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := decode(r)
		if err != nil {
			h.writeError(w, r, err, nil)
			return
		}
		if err := fn(r.Context(), v); err != nil {
			h.writeError(w, r, err, v)
			return
		}
		h.writeJSON(w, http.StatusCreated, v)
	}
}

func update[T any](h *Handler, decode func(r *http.Request) (*T, error), setID func(v *T, id int64), fn func(ctx context.Context, v *T) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.writeError(w, r, err, nil)
			return
		}
		v, err := decode(r)
		if err != nil {
			h.writeError(w, r, err, nil)
			return
		}
		setID(v, id)
		if err := fn(r.Context(), v); err != nil {
			h.writeError(w, r, err, v)
			return
		}
		h.writeJSON(w, http.StatusOK, v)
	}
}

func (h *Handler) remove(entity model.Entity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.writeError(w, r, err, nil)
			return
		}
		report, err := h.catalog.Delete(r.Context(), entity, id)
		if err != nil {
			h.writeError(w, r, err, nil)
			return
		}
		h.writeJSON(w, http.StatusOK, report)
	}
}

// bookingRequest accepts calendar dates as YYYY-MM-DD
type bookingRequest struct {
	UserID       string          `json:"user_id"`
	CountryID    int64           `json:"country_id"`
	AttractionID int64           `json:"attraction_id"`
	HotelID      *int64          `json:"hotel_id"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

func decodeBooking(r *http.Request) (*model.Booking, error) {
	var req bookingRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	start, err := wizard.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := wizard.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	return &model.Booking{
		UserID:       req.UserID,
		CountryID:    req.CountryID,
		AttractionID: req.AttractionID,
		HotelID:      req.HotelID,
		StartDate:    start,
		EndDate:      end,
		TotalPrice:   req.TotalPrice,
	}, nil
}
