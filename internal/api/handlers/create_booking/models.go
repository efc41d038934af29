package create_booking

import (
	"time"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	createBooking "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/usecase/create_booking"
)

// CustomerData контактные данные клиента в HTTP запросе
type CustomerData struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// CreateBookingRequest HTTP request model.
// Для существующего клиента передается customerId,
// для нового заполняется customer
type CreateBookingRequest struct {
	RoomID         int64        `json:"roomId"`
	CustomerID     *int64       `json:"customerId,omitempty"`
	Customer       CustomerData `json:"customer"`
	StartDate      string       `json:"startDate"` // "2026-01-15"
	EndDate        string       `json:"endDate"`   // "2026-01-18"
	GuestsCount    int          `json:"guestsCount"`
	BreakfastCount int          `json:"breakfastCount"`
	LunchCount     int          `json:"lunchCount"`
	DinnerCount    int          `json:"dinnerCount"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64 `json:"id"`
	RoomID     int64 `json:"roomId"`
	CustomerID int64 `json:"customerId"`

	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Nights    int    `json:"nights"`

	GuestsCount int `json:"guestsCount"`

	BaseTotal             int64   `json:"baseTotal"`
	MealsTotal            int64   `json:"mealsTotal"`
	Subtotal              int64   `json:"subtotal"`
	NightsDiscountPercent float64 `json:"nightsDiscountPercent"`
	RepeatDiscountPercent float64 `json:"repeatDiscountPercent"`
	DiscountPercent       float64 `json:"discountPercent"`
	FinalAmount           int64   `json:"finalAmount"`

	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RoomID:     r.RoomID,
		CustomerID: r.CustomerID,
		Customer: createBooking.CustomerData{
			FullName: r.Customer.FullName,
			Phone:    r.Customer.Phone,
			Email:    r.Customer.Email,
		},
		StartDate:      startDate,
		EndDate:        endDate,
		GuestsCount:    r.GuestsCount,
		BreakfastCount: r.BreakfastCount,
		LunchCount:     r.LunchCount,
		DinnerCount:    r.DinnerCount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                    resp.ID,
		RoomID:                resp.RoomID,
		CustomerID:            resp.CustomerID,
		StartDate:             resp.StartDate.Format(domain.DateFormat),
		EndDate:               resp.EndDate.Format(domain.DateFormat),
		Nights:                resp.Nights,
		GuestsCount:           resp.GuestsCount,
		BaseTotal:             resp.BaseTotal,
		MealsTotal:            resp.MealsTotal,
		Subtotal:              resp.Subtotal,
		NightsDiscountPercent: resp.NightsDiscountPercent,
		RepeatDiscountPercent: resp.RepeatDiscountPercent,
		DiscountPercent:       resp.DiscountPercent,
		FinalAmount:           resp.FinalAmount,
		Status:                resp.Status,
		CreatedAt:             resp.CreatedAt.Format(time.RFC3339),
	}
}
