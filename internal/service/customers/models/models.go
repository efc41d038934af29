package models

import (
	"time"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
)

// ResolveCustomerRequest данные клиента из запроса на бронирование
type ResolveCustomerRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"` // ISO 8601
}

// CustomerListResponse ответ со списком клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}

	return &CustomerResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainCustomerList конвертирует список domain моделей в DTO
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{
		Customers: make([]CustomerResponse, 0, len(customers)),
	}

	for _, customer := range customers {
		if customerResp := FromDomainCustomer(customer); customerResp != nil {
			resp.Customers = append(resp.Customers, *customerResp)
		}
	}

	return resp
}
