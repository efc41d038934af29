package acquiring

import "errors"

var (
	// ErrPaymentDeclined возвращается, когда эквайринг отклонил платеж
	ErrPaymentDeclined = errors.New("payment declined by acquiring gateway")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("acquiring client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("acquiring client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что шлюз недоступен и платеж следует провести как оффлайн
	ErrServiceDegraded = errors.New("acquiring gateway unavailable: graceful degradation applied")
)
