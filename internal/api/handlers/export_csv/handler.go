package export_csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/exports"
)

const (
	msgUnknownEntity = "неизвестная сущность для выгрузки"
)

type Handler struct {
	service ExportService
	logger  Logger
}

func NewHandler(service ExportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/exports/{entity}.csv
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entity := vars["entity"]

	records, err := h.service.Export(r.Context(), entity)
	if err != nil {
		switch {
		case errors.Is(err, exports.ErrUnknownEntity):
			h.logger.Warn("GET /exports/{entity}.csv - Unknown entity: %s", entity)
			handlers.RespondNotFound(w, msgUnknownEntity)

		default:
			h.logger.Error("GET /exports/{entity}.csv - Failed to export %s: %v", entity, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", entity+".csv"))

	writer := csv.NewWriter(w)
	if err := writer.WriteAll(records); err != nil {
		// Заголовки уже отправлены, клиенту остается оборванный файл
		h.logger.Error("GET /exports/{entity}.csv - Failed to write CSV for %s: %v", entity, err)
		return
	}

	h.logger.Info("GET /exports/{entity}.csv - Exported %s: %d rows", entity, len(records)-1)
}
