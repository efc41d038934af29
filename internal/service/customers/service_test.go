package customers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	customerRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/customer"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/customers/models"
)

type mockCustomerRepo struct {
	existing *domain.Customer

	createdWith *domain.Customer
	lookupPhone string
	lookupEmail string
}

func (m *mockCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	created := *c
	created.ID = 100
	m.createdWith = &created
	return &created, nil
}

func (m *mockCustomerRepo) GetByID(_ context.Context, _ int64) (*domain.Customer, error) {
	if m.existing == nil {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return m.existing, nil
}

func (m *mockCustomerRepo) GetByContact(_ context.Context, phone, email string) (*domain.Customer, error) {
	m.lookupPhone = phone
	m.lookupEmail = email
	if m.existing == nil {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return m.existing, nil
}

func (m *mockCustomerRepo) List(_ context.Context) ([]*domain.Customer, error) {
	if m.existing == nil {
		return nil, nil
	}
	return []*domain.Customer{m.existing}, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validResolveRequest() *models.ResolveCustomerRequest {
	return &models.ResolveCustomerRequest{
		FullName: "Иванов Иван",
		Phone:    "+79001234567",
		Email:    "ivanov@example.com",
	}
}

func TestResolve_CreatesNewCustomer(t *testing.T) {
	repo := &mockCustomerRepo{}
	svc := NewService(repo, noopLogger{})

	customer, err := svc.Resolve(context.Background(), validResolveRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), customer.ID)
	require.NotNil(t, repo.createdWith)
	assert.Equal(t, "Иванов Иван", repo.createdWith.FullName)
}

func TestResolve_MatchesExistingCustomer(t *testing.T) {
	repo := &mockCustomerRepo{existing: &domain.Customer{
		ID:       7,
		FullName: "Иванов Иван",
		Phone:    "+79001234567",
		Email:    "ivanov@example.com",
	}}
	svc := NewService(repo, noopLogger{})

	customer, err := svc.Resolve(context.Background(), validResolveRequest())
	require.NoError(t, err)

	// Повторный гость получает ту же запись, дубликат не создается
	assert.Equal(t, int64(7), customer.ID)
	assert.Nil(t, repo.createdWith)
}

func TestResolve_TrimsWhitespaceBeforeLookup(t *testing.T) {
	repo := &mockCustomerRepo{}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Resolve(context.Background(), &models.ResolveCustomerRequest{
		FullName: "  Иванов Иван  ",
		Phone:    " +79001234567 ",
		Email:    " ivanov@example.com ",
	})
	require.NoError(t, err)

	assert.Equal(t, "+79001234567", repo.lookupPhone)
	assert.Equal(t, "ivanov@example.com", repo.lookupEmail)
	assert.Equal(t, "Иванов Иван", repo.createdWith.FullName)
}

func TestResolve_Validation(t *testing.T) {
	svc := NewService(&mockCustomerRepo{}, noopLogger{})

	tests := []struct {
		name string
		req  *models.ResolveCustomerRequest
	}{
		{
			name: "empty full name",
			req:  &models.ResolveCustomerRequest{Phone: "+79001234567", Email: "a@b.com"},
		},
		{
			name: "phone too short",
			req:  &models.ResolveCustomerRequest{FullName: "Иванов", Phone: "123", Email: "a@b.com"},
		},
		{
			name: "phone with letters",
			req:  &models.ResolveCustomerRequest{FullName: "Иванов", Phone: "+7900abc4567", Email: "a@b.com"},
		},
		{
			name: "email without at sign",
			req:  &models.ResolveCustomerRequest{FullName: "Иванов", Phone: "+79001234567", Email: "not-an-email"},
		},
		{
			name: "email without tld",
			req:  &models.ResolveCustomerRequest{FullName: "Иванов", Phone: "+79001234567", Email: "a@b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Resolve(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestResolveByID_ReturnsExistingCustomer(t *testing.T) {
	repo := &mockCustomerRepo{existing: &domain.Customer{ID: 55, FullName: "Петров Петр"}}
	svc := NewService(repo, noopLogger{})

	customer, err := svc.ResolveByID(context.Background(), 55)
	require.NoError(t, err)

	assert.Equal(t, int64(55), customer.ID)
	assert.Equal(t, "Петров Петр", customer.FullName)
}

func TestResolveByID_NotFound(t *testing.T) {
	repo := &mockCustomerRepo{}
	svc := NewService(repo, noopLogger{})

	_, err := svc.ResolveByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&mockCustomerRepo{}, noopLogger{})

	_, err := svc.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
