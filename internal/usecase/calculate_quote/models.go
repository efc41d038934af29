package calculate_quote

import (
	"time"
)

// Request модель запроса на расчет стоимости
type Request struct {
	RoomID int64

	StartDate time.Time
	EndDate   time.Time

	GuestsCount int

	// Количество приемов пищи за все проживание
	BreakfastCount int
	LunchCount     int
	DinnerCount    int

	// Известный клиент для применения скидки постоянного клиента (опционально)
	CustomerID *int64
}

// Response детализация стоимости без создания бронирования
type Response struct {
	RoomID int64
	Nights int

	BaseTotal  int64
	MealsTotal int64
	Subtotal   int64

	NightsDiscountPercent float64
	RepeatDiscountPercent float64
	DiscountPercent       float64

	FinalAmount int64
}
