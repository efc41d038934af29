package payments

import (
	"context"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	List(ctx context.Context) ([]*domain.Payment, error)
}

// TransactionRepository интерфейс репозитория финансовых транзакций
type TransactionRepository interface {
	List(ctx context.Context) ([]*domain.Transaction, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
