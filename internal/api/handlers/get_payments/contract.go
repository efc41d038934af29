package get_payments

import (
	"context"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/payments/models"
)

type PaymentService interface {
	ListPayments(ctx context.Context) (*models.PaymentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
