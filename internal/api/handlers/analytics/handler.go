package analytics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	analyticsService "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/analytics"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod = "некорректный период отчета"
	msgInvalidLimit  = "некорректное значение limit"
)

// Handler обслуживает все аналитические отчеты
type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleRevenueByCategory GET /api/v1/analytics/revenue-by-category
// Query params: startDate, endDate (опционально, YYYY-MM-DD)
func (h *Handler) HandleRevenueByCategory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var start, end *time.Time

	if raw := query.Get("startDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /analytics/revenue-by-category - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		start = &parsed
	}

	if raw := query.Get("endDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /analytics/revenue-by-category - Invalid end date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		end = &parsed
	}

	result, err := h.service.RevenueByCategory(r.Context(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, analyticsService.ErrInvalidPeriod):
			h.logger.Warn("GET /analytics/revenue-by-category - Invalid period")
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /analytics/revenue-by-category - Failed to build report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /analytics/revenue-by-category - Report built: categories=%d", len(result.Categories))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGuestsByMonth GET /api/v1/analytics/guests-by-month
func (h *Handler) HandleGuestsByMonth(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GuestsByMonth(r.Context())
	if err != nil {
		h.logger.Error("GET /analytics/guests-by-month - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /analytics/guests-by-month - Report built: months=%d", len(result.Months))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleTopRooms GET /api/v1/analytics/top-rooms
// Query params: limit (опционально)
func (h *Handler) HandleTopRooms(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /analytics/top-rooms - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.TopRooms(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /analytics/top-rooms - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /analytics/top-rooms - Report built: rooms=%d", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result)
}
