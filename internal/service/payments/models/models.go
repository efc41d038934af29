package models

import (
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
)

// PaymentResponse ответ с данными платежа
type PaymentResponse struct {
	ID          int64  `json:"id"`
	BookingID   int64  `json:"bookingId"`
	Amount      int64  `json:"amount"`
	Method      string `json:"method"`
	Status      string `json:"status"`
	PaymentDate string `json:"paymentDate"` // "2026-01-15"
}

// PaymentListResponse ответ со списком платежей
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// TransactionResponse ответ с данными финансовой транзакции
type TransactionResponse struct {
	ID              int64  `json:"id"`
	PaymentID       int64  `json:"paymentId"`
	Amount          int64  `json:"amount"`
	Type            string `json:"type"` // income | refund
	TransactionDate string `json:"transactionDate"`
}

// TransactionListResponse ответ со списком транзакций
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// FromDomainPaymentList конвертирует список платежей в DTO
func FromDomainPaymentList(payments []*domain.Payment) *PaymentListResponse {
	resp := &PaymentListResponse{
		Payments: make([]PaymentResponse, 0, len(payments)),
	}

	for _, p := range payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			ID:          p.ID,
			BookingID:   p.BookingID,
			Amount:      p.Amount,
			Method:      string(p.Method),
			Status:      string(p.Status),
			PaymentDate: p.PaymentDate.Format(domain.DateFormat),
		})
	}

	return resp
}

// FromDomainTransactionList конвертирует список транзакций в DTO
func FromDomainTransactionList(transactions []*domain.Transaction) *TransactionListResponse {
	resp := &TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(transactions)),
	}

	for _, t := range transactions {
		resp.Transactions = append(resp.Transactions, TransactionResponse{
			ID:              t.ID,
			PaymentID:       t.PaymentID,
			Amount:          t.Amount,
			Type:            string(t.Type),
			TransactionDate: t.TransactionDate.Format(domain.DateFormat),
		})
	}

	return resp
}
