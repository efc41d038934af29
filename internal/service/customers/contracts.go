package customers

import (
	"context"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByContact(ctx context.Context, phone, email string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
