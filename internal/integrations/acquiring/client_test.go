package acquiring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func authorizeRequest() *AuthorizeRequest {
	return &AuthorizeRequest{
		BookingID: 42,
		Amount:    10200,
		Method:    "card",
	}
}

func TestAuthorize_OfflineMode(t *testing.T) {
	client := NewClient("", 5*time.Second, noopLogger{})

	auth, err := client.Authorize(context.Background(), authorizeRequest())
	require.NoError(t, err)

	assert.Equal(t, "offline-42", auth.OrderID)
	assert.True(t, auth.Confirmed())
}

func TestAuthorize_Confirmed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/payments/authorize", r.URL.Path)

		var req AuthorizeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(42), req.BookingID)
		assert.Equal(t, int64(10200), req.Amount)

		json.NewEncoder(w).Encode(Authorization{OrderID: "ord-7", Status: "confirmed"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, noopLogger{})

	auth, err := client.Authorize(context.Background(), authorizeRequest())
	require.NoError(t, err)

	assert.Equal(t, "ord-7", auth.OrderID)
	assert.True(t, auth.Confirmed())
}

func TestAuthorize_Declined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, noopLogger{})

	_, err := client.Authorize(context.Background(), authorizeRequest())
	assert.ErrorIs(t, err, ErrPaymentDeclined)
}

func TestAuthorizeWithGracefulDegradation_DeclinedPassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, noopLogger{})

	_, err := client.AuthorizeWithGracefulDegradation(context.Background(), authorizeRequest())
	assert.ErrorIs(t, err, ErrPaymentDeclined)
}

func TestAuthorizeWithGracefulDegradation_GatewayDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, noopLogger{})

	_, err := client.AuthorizeWithGracefulDegradation(context.Background(), authorizeRequest())
	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestAuthorizeWithGracefulDegradation_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond, noopLogger{})

	_, err := client.AuthorizeWithGracefulDegradation(context.Background(), authorizeRequest())
	assert.ErrorIs(t, err, ErrServiceDegraded)
}
