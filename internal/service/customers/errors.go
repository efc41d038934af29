package customers

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInvalidInput возвращается при некорректных данных клиента
	ErrInvalidInput = errors.New("invalid customer data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("customers service: internal error")
)
