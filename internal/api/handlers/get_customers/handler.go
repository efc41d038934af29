package get_customers

import (
	"net/http"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /customers - Failed to get customers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers - Customers retrieved successfully: count=%d", len(result.Customers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
