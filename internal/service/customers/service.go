package customers

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	customerRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/customer"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/customers/models"
)

var (
	// Телефон: опциональный "+" и от 10 до 15 цифр
	phoneRegexp = regexp.MustCompile(`^\+?\d{10,15}$`)

	// Email: минимальная проверка формы local@domain.tld
	emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Service сервис для работы с клиентами
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Resolve находит существующего клиента по телефону или email,
// либо создает нового. Один и тот же человек, пришедший повторно
// с теми же контактами, получает ту же запись.
//
// При вызове внутри транзакции (контекст из transaction manager)
// поиск и создание выполняются в ней же.
func (s *Service) Resolve(ctx context.Context, req *models.ResolveCustomerRequest) (*domain.Customer, error) {
	normalized, err := normalizeAndValidate(req)
	if err != nil {
		s.logger.Warn("Resolve: validation failed: %v", err)
		return nil, err
	}

	existing, err := s.customerRepo.GetByContact(ctx, normalized.Phone, normalized.Email)
	if err != nil && !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		s.logger.Error("Resolve: failed to look up customer by contact: %v", err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	if existing != nil {
		s.logger.Info("Resolve: matched existing customer id=%d", existing.ID)
		return existing, nil
	}

	created, err := s.customerRepo.Create(ctx, &domain.Customer{
		FullName: normalized.FullName,
		Phone:    normalized.Phone,
		Email:    normalized.Email,
	})
	if err != nil {
		s.logger.Error("Resolve: failed to create customer: %v", err)
		return nil, fmt.Errorf("%w: Resolve - failed to create customer: %v", ErrInternal, err)
	}

	s.logger.Info("Resolve: created new customer id=%d", created.ID)
	return created, nil
}

// ResolveByID находит существующего клиента по его ID.
// Используется при бронировании на уже известного клиента,
// когда контактные данные в запросе не передаются.
func (s *Service) ResolveByID(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("ResolveByID: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("ResolveByID: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: ResolveByID - repository error: %v", ErrInternal, err)
	}

	return customer, nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomer(customer), nil
}

// List получает всех клиентов
func (s *Service) List(ctx context.Context) (*models.CustomerListResponse, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d customers", len(customers))
	return models.FromDomainCustomerList(customers), nil
}

// normalizeAndValidate обрезает пробелы и проверяет форматы контактов
func normalizeAndValidate(req *models.ResolveCustomerRequest) (*models.ResolveCustomerRequest, error) {
	normalized := &models.ResolveCustomerRequest{
		FullName: strings.TrimSpace(req.FullName),
		Phone:    strings.TrimSpace(req.Phone),
		Email:    strings.TrimSpace(req.Email),
	}

	if normalized.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if !phoneRegexp.MatchString(normalized.Phone) {
		return nil, fmt.Errorf("%w: invalid phone format", ErrInvalidInput)
	}
	if !emailRegexp.MatchString(normalized.Email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	return normalized, nil
}
