package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/alexivanou/travel-planner/internal/failure"
	"github.com/alexivanou/travel-planner/internal/service"
)

// Handler handles HTTP requests
type Handler struct {
	catalog service.CatalogService
	wizard  service.WizardService
	logger  *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(catalog service.CatalogService, wizard service.WizardService, logger *zap.Logger) *Handler {
	return &Handler{catalog: catalog, wizard: wizard, logger: logger}
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

type errorResponse struct {
	Error string `json:"error"`
	Input any    `json:"input,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Error encoding response", zap.Error(err))
	}
}

// writeError maps err to a status code. Validation failures echo input back
// so the caller can correct it.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, input any) {
	status := failure.HTTPStatus(err)
	resp := errorResponse{Error: failure.Message(err)}

	switch {
	case status >= http.StatusInternalServerError:
		h.logger.Error("Request failed",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	case status == http.StatusBadRequest:
		resp.Input = input
	}

	h.writeJSON(w, status, resp)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.Validation("invalid id")
	}
	return id, nil
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return failure.Validation("request body is required")
		}
		return failure.Validationf("invalid request body: %v", err)
	}
	return nil
}
