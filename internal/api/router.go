package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/alexivanou/travel-planner/internal/config"
	"github.com/alexivanou/travel-planner/internal/model"
	"github.com/alexivanou/travel-planner/internal/service"
	"github.com/alexivanou/travel-planner/internal/stats"
)

// NewRouter creates a new HTTP router
func NewRouter(
	catalog service.CatalogService,
	wizard service.WizardService,
	statsCollector *stats.Collector,
	cfg config.ServerConfig,
	logger *zap.Logger,
) *mux.Router {
	handler := NewHandler(catalog, wizard, logger)
	statsHandler := NewStatsHandler(statsCollector, logger)

	router := mux.NewRouter()
	router.Use(withRequestID, withAccessLog(logger), withUserID(cfg.DefaultUserID))

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1
	v1 := router.PathPrefix("/api/v1").Subrouter()
	if cfg.CSRFEnabled {
		v1.Use(handler.withCSRF)
	}
	v1.HandleFunc("/csrf", handler.IssueCSRFToken).Methods("GET")
	v1.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	// Wizard
	v1.HandleFunc("/wizard/countries", handler.SelectCountry).Methods("GET")
	v1.HandleFunc("/wizard/attractions", handler.SelectAttractions).Methods("GET")
	v1.HandleFunc("/wizard/dates", handler.SelectDates).Methods("GET")
	v1.HandleFunc("/wizard/hotels", handler.SelectHotels).Methods("GET")
	v1.HandleFunc("/wizard/complete", handler.CompleteBooking).Methods("POST")
	v1.HandleFunc("/wizard/confirmation", handler.BookingConfirmation).Methods("GET")
	v1.HandleFunc("/bookings/mine", handler.MyBookings).Methods("GET")

	// Catalog
	resource(v1, "/countries", handler, model.EntityCountry,
		list(handler, catalog.ListCountries),
		get(handler, catalog.GetCountry),
		create(handler, decodeEntity[model.Country], catalog.CreateCountry),
		update(handler, decodeEntity[model.Country], func(c *model.Country, id int64) { c.ID = id }, catalog.UpdateCountry))
	resource(v1, "/cities", handler, model.EntityCity,
		list(handler, catalog.ListCities),
		get(handler, catalog.GetCity),
		create(handler, decodeEntity[model.City], catalog.CreateCity),
		update(handler, decodeEntity[model.City], func(c *model.City, id int64) { c.ID = id }, catalog.UpdateCity))
	resource(v1, "/attractions", handler, model.EntityAttraction,
		list(handler, catalog.ListAttractions),
		get(handler, catalog.GetAttraction),
		create(handler, decodeEntity[model.Attraction], catalog.CreateAttraction),
		update(handler, decodeEntity[model.Attraction], func(a *model.Attraction, id int64) { a.ID = id }, catalog.UpdateAttraction))
	resource(v1, "/hotels", handler, model.EntityHotel,
		list(handler, catalog.ListHotels),
		get(handler, catalog.GetHotel),
		create(handler, decodeEntity[model.Hotel], catalog.CreateHotel),
		update(handler, decodeEntity[model.Hotel], func(h *model.Hotel, id int64) { h.ID = id }, catalog.UpdateHotel))
	resource(v1, "/bookings", handler, model.EntityBooking,
		list(handler, catalog.ListBookings),
		get(handler, catalog.GetBooking),
		create(handler, decodeBooking, catalog.CreateBooking),
		update(handler, decodeBooking, func(b *model.Booking, id int64) { b.ID = id }, catalog.UpdateBooking))

	return router
}

func resource(r *mux.Router, path string, h *Handler, entity model.Entity, listFn, getFn, createFn, updateFn http.HandlerFunc) {
	r.HandleFunc(path, listFn).Methods("GET")
	r.HandleFunc(path, createFn).Methods("POST")
	r.HandleFunc(path+"/{id:[0-9]+}", getFn).Methods("GET")
	r.HandleFunc(path+"/{id:[0-9]+}", updateFn).Methods("PUT")
	r.HandleFunc(path+"/{id:[0-9]+}", h.remove(entity)).Methods("DELETE")
}
