package get_payments

import (
	"net/http"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPayments(r.Context())
	if err != nil {
		h.logger.Error("GET /payments - Failed to get payments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /payments - Payments retrieved successfully: count=%d", len(result.Payments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
