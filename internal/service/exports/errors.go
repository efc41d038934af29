package exports

import "errors"

var (
	// ErrUnknownEntity возвращается при запросе выгрузки неизвестной сущности
	ErrUnknownEntity = errors.New("unknown export entity")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("exports service: internal error")
)
