package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/alexivanou/travel-planner/internal/failure"
	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/alexivanou/travel-planner/internal/wizard"
)

// stateFromRequest builds wizard state from the state token, when present,
// overlaid with any of the loose parameters countryId, selectedAttractions,
// startDate, endDate and hotelId
func stateFromRequest(r *http.Request) (wizard.State, error) {
	var state wizard.State
	if err := r.ParseForm(); err != nil {
		return state, failure.Validation("invalid form data")
	}
	form := r.Form

	if token := form.Get("state"); token != "" {
		decoded, err := wizard.Decode(token)
		if err != nil {
			return state, err
		}
		state = decoded
	}

	if v := strings.TrimSpace(form.Get("countryId")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return state, failure.Validationf("invalid countryId %q", v)
		}
		state.CountryID = id
	}
	if v := form.Get("selectedAttractions"); v != "" {
		ids, err := wizard.ParseIDs(v)
		if err != nil {
			return state, err
		}
		state.AttractionIDs = ids
	}
	if v := form.Get("startDate"); v != "" {
		d, err := wizard.ParseDate(v)
		if err != nil {
			return state, err
		}
		state.StartDate = d
	}
	if v := form.Get("endDate"); v != "" {
		d, err := wizard.ParseDate(v)
		if err != nil {
			return state, err
		}
		state.EndDate = d
	}
	if v := strings.TrimSpace(form.Get("hotelId")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return state, failure.Validationf("invalid hotelId %q", v)
		}
		state.HotelID = &id
	}
	return state, nil
}

// SelectCountry handles GET /api/v1/wizard/countries
func (h *Handler) SelectCountry(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.CountryFilter{
		Region:   q.Get("region"),
		Currency: q.Get("currency"),
		Language: q.Get("language"),
	}

	step, err := h.wizard.SelectCountry(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err, filter)
		return
	}
	h.writeJSON(w, http.StatusOK, step)
}

// SelectAttractions handles GET /api/v1/wizard/attractions
func (h *Handler) SelectAttractions(w http.ResponseWriter, r *http.Request) {
	state, err := stateFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	if state.CountryID <= 0 {
		h.writeError(w, r, failure.Validation("parameter 'countryId' is required"), nil)
		return
	}

	step, err := h.wizard.SelectAttractions(r.Context(), state.CountryID)
	if err != nil {
		h.writeError(w, r, err, state)
		return
	}
	h.writeJSON(w, http.StatusOK, step)
}

// SelectDates handles GET /api/v1/wizard/dates
func (h *Handler) SelectDates(w http.ResponseWriter, r *http.Request) {
	state, err := stateFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	step, err := h.wizard.SelectDates(r.Context(), state)
	if err != nil {
		h.writeError(w, r, err, state)
		return
	}
	h.writeJSON(w, http.StatusOK, step)
}

// SelectHotels handles GET /api/v1/wizard/hotels
func (h *Handler) SelectHotels(w http.ResponseWriter, r *http.Request) {
	state, err := stateFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	step, err := h.wizard.SelectHotels(r.Context(), state)
	if err != nil {
		h.writeError(w, r, err, state)
		return
	}
	h.writeJSON(w, http.StatusOK, step)
}

// CompleteBooking handles POST /api/v1/wizard/complete
func (h *Handler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	state, err := stateFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	bookings, err := h.wizard.CompleteBooking(r.Context(), UserIDFrom(r.Context()), state)
	if err != nil {
		h.writeError(w, r, err, state)
		return
	}

	w.Header().Set("Location", "/api/v1/wizard/confirmation")
	h.writeJSON(w, http.StatusCreated, map[string]any{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// BookingConfirmation handles GET /api/v1/wizard/confirmation
func (h *Handler) BookingConfirmation(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.wizard.BookingConfirmation(r.Context(), UserIDFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	h.writeJSON(w, http.StatusOK, bookings)
}

// MyBookings handles GET /api/v1/bookings/mine
func (h *Handler) MyBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.wizard.MyBookings(r.Context(), UserIDFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	h.writeJSON(w, http.StatusOK, bookings)
}
