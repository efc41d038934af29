package models

import (
	"errors"
	"time"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetBookingsRequest запрос на получение бронирований с фильтрацией
type GetBookingsRequest struct {
	RoomID           *int64     `json:"roomId,omitempty"`           // Фильтр по номеру (опционально)
	CustomerID       *int64     `json:"customerId,omitempty"`       // Фильтр по клиенту (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	StartDate        *time.Time `json:"startDate,omitempty"`        // Заезд не раньше (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`          // Заезд не позже (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		RoomID:           r.RoomID,
		CustomerID:       r.CustomerID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64 `json:"id"`
	RoomID     int64 `json:"roomId"`
	CustomerID int64 `json:"customerId"`

	StartDate string `json:"startDate"` // "2026-01-15"
	EndDate   string `json:"endDate"`
	Nights    int    `json:"nights"`

	GuestsCount    int `json:"guestsCount"`
	BreakfastCount int `json:"breakfastCount"`
	LunchCount     int `json:"lunchCount"`
	DinnerCount    int `json:"dinnerCount"`

	DiscountNights float64 `json:"discountNightsPercent"`
	DiscountRepeat float64 `json:"discountRepeatPercent"`
	TotalAmount    int64   `json:"totalAmount"`
	FinalAmount    int64   `json:"finalAmount"`

	Status string `json:"status"`

	// Данные успешного платежа, если бронирование оплачено
	Payment *PaymentInfo `json:"payment,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// PaymentInfo краткие данные платежа в составе бронирования
type PaymentInfo struct {
	ID          int64  `json:"id"`
	Amount      int64  `json:"amount"`
	Method      string `json:"method"`
	Status      string `json:"status"`
	PaymentDate string `json:"paymentDate"` // "2026-01-15"
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:             b.ID,
		RoomID:         b.RoomID,
		CustomerID:     b.CustomerID,
		StartDate:      b.StartDate.Format(domain.DateFormat),
		EndDate:        b.EndDate.Format(domain.DateFormat),
		Nights:         b.Nights(),
		GuestsCount:    b.GuestsCount,
		BreakfastCount: b.BreakfastCount,
		LunchCount:     b.LunchCount,
		DinnerCount:    b.DinnerCount,
		DiscountNights: b.DiscountNights,
		DiscountRepeat: b.DiscountRepeat,
		TotalAmount:    b.TotalAmount,
		FinalAmount:    b.FinalAmount,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
	}
}

// FromDomainPayment конвертирует платеж в краткую форму для ответа
func FromDomainPayment(p *domain.Payment) *PaymentInfo {
	if p == nil {
		return nil
	}

	return &PaymentInfo{
		ID:          p.ID,
		Amount:      p.Amount,
		Method:      string(p.Method),
		Status:      string(p.Status),
		PaymentDate: p.PaymentDate.Format(domain.DateFormat),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusCreated,
		domain.StatusPaid,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
