package get_transactions

import (
	"context"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/payments/models"
)

type PaymentService interface {
	ListTransactions(ctx context.Context) (*models.TransactionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
