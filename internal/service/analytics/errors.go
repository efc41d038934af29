package analytics

import "errors"

var (
	// ErrInvalidPeriod возвращается, когда конец периода раньше начала
	ErrInvalidPeriod = errors.New("invalid report period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("analytics service: internal error")
)
