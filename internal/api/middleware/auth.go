package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers"
)

// HeaderStaffID заголовок идентификации сотрудника для служебных маршрутов
const HeaderStaffID = "X-Staff-ID"

type contextKey string

const staffIDKey contextKey = "staffID"

// Auth проверяет наличие корректного X-Staff-ID в запросе и кладет его
// в контекст. Служебные маршруты без него недоступны.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderStaffID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "требуется заголовок X-Staff-ID")
			return
		}

		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || staffID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный X-Staff-ID")
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStaffID извлекает ID сотрудника из контекста запроса
func GetStaffID(ctx context.Context) (int64, bool) {
	staffID, ok := ctx.Value(staffIDKey).(int64)
	return staffID, ok
}
