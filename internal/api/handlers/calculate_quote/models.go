package calculate_quote

import (
	"time"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	calculateQuote "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/usecase/calculate_quote"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	RoomID         int64  `json:"roomId"`
	StartDate      string `json:"startDate"` // "2026-01-15"
	EndDate        string `json:"endDate"`
	GuestsCount    int    `json:"guestsCount"`
	BreakfastCount int    `json:"breakfastCount"`
	LunchCount     int    `json:"lunchCount"`
	DinnerCount    int    `json:"dinnerCount"`
	CustomerID     *int64 `json:"customerId,omitempty"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	RoomID int64 `json:"roomId"`
	Nights int   `json:"nights"`

	BaseTotal  int64 `json:"baseTotal"`
	MealsTotal int64 `json:"mealsTotal"`
	Subtotal   int64 `json:"subtotal"`

	NightsDiscountPercent float64 `json:"nightsDiscountPercent"`
	RepeatDiscountPercent float64 `json:"repeatDiscountPercent"`
	DiscountPercent       float64 `json:"discountPercent"`

	FinalAmount int64 `json:"finalAmount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*calculateQuote.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &calculateQuote.Request{
		RoomID:         r.RoomID,
		StartDate:      startDate,
		EndDate:        endDate,
		GuestsCount:    r.GuestsCount,
		BreakfastCount: r.BreakfastCount,
		LunchCount:     r.LunchCount,
		DinnerCount:    r.DinnerCount,
		CustomerID:     r.CustomerID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculateQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		RoomID:                resp.RoomID,
		Nights:                resp.Nights,
		BaseTotal:             resp.BaseTotal,
		MealsTotal:            resp.MealsTotal,
		Subtotal:              resp.Subtotal,
		NightsDiscountPercent: resp.NightsDiscountPercent,
		RepeatDiscountPercent: resp.RepeatDiscountPercent,
		DiscountPercent:       resp.DiscountPercent,
		FinalAmount:           resp.FinalAmount,
	}
}
