package get_customers

import (
	"context"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/customers/models"
)

type CustomerService interface {
	List(ctx context.Context) (*models.CustomerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
