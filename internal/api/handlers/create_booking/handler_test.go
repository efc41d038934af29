package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/usecase/create_booking"
)

type mockUseCase struct {
	resp *createBooking.Response
	err  error

	gotRequest *createBooking.Request
}

func (m *mockUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	m.gotRequest = req
	return m.resp, m.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"roomId": 1,
	"customer": {"fullName": "Иванов Иван", "phone": "+79001234567", "email": "ivanov@example.com"},
	"startDate": "2026-09-10",
	"endDate": "2026-09-12",
	"guestsCount": 2,
	"breakfastCount": 4
}`

func doRequest(t *testing.T, useCase *mockUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(useCase, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	return rec
}

func TestHandle_Created(t *testing.T) {
	useCase := &mockUseCase{resp: &createBooking.Response{
		ID:          42,
		RoomID:      1,
		CustomerID:  7,
		StartDate:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Nights:      2,
		GuestsCount: 2,
		BaseTotal:   9000,
		MealsTotal:  1200,
		Subtotal:    10200,
		FinalAmount: 10200,
		Status:      "created",
		CreatedAt:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, useCase, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	// Даты распарсены из YYYY-MM-DD
	require.NotNil(t, useCase.gotRequest)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), useCase.gotRequest.StartDate)
	assert.Equal(t, "Иванов Иван", useCase.gotRequest.Customer.FullName)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-09-10", resp.StartDate)
	assert.Equal(t, int64(10200), resp.FinalAmount)
	assert.Equal(t, "created", resp.Status)
}

func TestHandle_InvalidJSON(t *testing.T) {
	rec := doRequest(t, &mockUseCase{}, `{broken`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownField(t *testing.T) {
	rec := doRequest(t, &mockUseCase{}, `{"roomId": 1, "unknownField": true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDateFormat(t *testing.T) {
	body := strings.Replace(validBody, "2026-09-10", "10.09.2026", 1)
	rec := doRequest(t, &mockUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "YYYY-MM-DD")
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"room unavailable", createBooking.ErrRoomUnavailable, http.StatusConflict},
		{"room not found", createBooking.ErrRoomNotFound, http.StatusNotFound},
		{"customer not found", createBooking.ErrCustomerNotFound, http.StatusNotFound},
		{"capacity exceeded", createBooking.ErrRoomCapacityExceeded, http.StatusBadRequest},
		{"invalid dates", createBooking.ErrInvalidDate, http.StatusBadRequest},
		{"invalid customer", createBooking.ErrInvalidCustomer, http.StatusBadRequest},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &mockUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
