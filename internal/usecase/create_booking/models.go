package create_booking

import (
	"time"
)

// CustomerData контактные данные клиента из запроса
type CustomerData struct {
	FullName string
	Phone    string
	Email    string
}

// Request модель запроса на создание бронирования.
// Клиент задается либо CustomerID (уже известный клиент),
// либо контактными данными Customer (поиск или создание)
type Request struct {
	RoomID     int64
	CustomerID *int64
	Customer   CustomerData

	StartDate time.Time // Дата заезда
	EndDate   time.Time // Дата выезда (не входит в проживание)

	GuestsCount int

	// Количество приемов пищи за все проживание
	BreakfastCount int
	LunchCount     int
	DinnerCount    int
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	RoomID     int64
	CustomerID int64

	StartDate time.Time
	EndDate   time.Time
	Nights    int

	GuestsCount int

	// Детализация стоимости
	BaseTotal             int64
	MealsTotal            int64
	Subtotal              int64
	NightsDiscountPercent float64
	RepeatDiscountPercent float64
	DiscountPercent       float64
	FinalAmount           int64

	Status    string
	CreatedAt time.Time
}
