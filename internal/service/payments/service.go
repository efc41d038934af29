package payments

import (
	"context"
	"fmt"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/payments/models"
)

// Service сервис для чтения платежей и финансовых транзакций.
// Записи создаются use case'ами оплаты и отмены, здесь только выборки.
type Service struct {
	paymentRepo     PaymentRepository
	transactionRepo TransactionRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(
	paymentRepo PaymentRepository,
	transactionRepo TransactionRepository,
	logger Logger,
) *Service {
	return &Service{
		paymentRepo:     paymentRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// ListPayments получает все платежи
func (s *Service) ListPayments(ctx context.Context) (*models.PaymentListResponse, error) {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListPayments: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPayments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListPayments: fetched %d payments", len(payments))
	return models.FromDomainPaymentList(payments), nil
}

// ListTransactions получает все финансовые транзакции
func (s *Service) ListTransactions(ctx context.Context) (*models.TransactionListResponse, error) {
	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListTransactions: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTransactions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListTransactions: fetched %d transactions", len(transactions))
	return models.FromDomainTransactionList(transactions), nil
}
