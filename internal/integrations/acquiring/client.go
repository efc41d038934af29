package acquiring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платежного шлюза (эквайринга).
// При пустом baseURL работает в оффлайн-режиме: платежи на кассе
// подтверждаются без обращения к внешнему сервису.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента эквайринга
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Authorize авторизует платеж в шлюзе
func (c *Client) Authorize(ctx context.Context, req *AuthorizeRequest) (*Authorization, error) {
	if c.baseURL == "" {
		// Оффлайн-режим: оплата принимается на стойке регистрации
		return &Authorization{
			OrderID: fmt.Sprintf("offline-%d", req.BookingID),
			Status:  "confirmed",
		}, nil
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/api/v1/payments/authorize", c.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusPaymentRequired, http.StatusUnprocessableEntity:
		return nil, ErrPaymentDeclined
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var auth Authorization
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &auth, nil
}

// AuthorizeWithGracefulDegradation авторизует платеж с graceful degradation.
// При недоступности шлюза возвращает ErrServiceDegraded, что позволяет
// провести платеж как оффлайн вместо отказа клиенту.
func (c *Client) AuthorizeWithGracefulDegradation(ctx context.Context, req *AuthorizeRequest) (*Authorization, error) {
	c.log.Info("Authorizing payment for booking_id=%d, amount=%d, method=%s", req.BookingID, req.Amount, req.Method)

	auth, err := c.Authorize(ctx, req)
	if err != nil {
		// Отказ шлюза это бизнес-ошибка, пробрасываем её дальше
		if err == ErrPaymentDeclined {
			c.log.Info("Payment declined for booking_id=%d", req.BookingID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation
		c.log.Error("Acquiring gateway unavailable, applying graceful degradation for booking_id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: booking_id=%d, error=%v", ErrServiceDegraded, req.BookingID, err)
	}

	c.log.Info("Payment authorized for booking_id=%d, order_id=%s", req.BookingID, auth.OrderID)
	return auth, nil
}
