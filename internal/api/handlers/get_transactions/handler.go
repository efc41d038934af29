package get_transactions

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

// Handle GET /api/v1/transactions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListTransactions(r.Context())
	if err != nil {
		h.logger.Error("GET /transactions - Failed to get transactions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /transactions - Transactions retrieved successfully: count=%d", len(result.Transactions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
