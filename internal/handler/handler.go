package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	_ "github.com/mtlprog/duedate/docs" // Import generated docs
	"github.com/mtlprog/duedate/internal/handler/dto"
	"github.com/mtlprog/duedate/internal/middleware"
	"github.com/mtlprog/duedate/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	calculator *service.Calculator
}

// New creates a new Handler instance.
func New(calculator *service.Calculator) *Handler {
	return &Handler{
		calculator: calculator,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	// API v1 routes
	mux.HandleFunc("POST /api/v1/due-date", h.handleCalculateDueDate)
	mux.HandleFunc("GET /api/v1/calendar", h.handleGetCalendar)
}

// Routes returns the full HTTP handler with middleware applied.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return middleware.RequestID(middleware.AccessLog(mux))
}

// handleHealthz returns 200 OK. The calculator has no external dependencies.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps a domain error and writes it.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}
