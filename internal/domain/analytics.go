package domain

// CategoryIncome доход по категории номеров за период
type CategoryIncome struct {
	CategoryName string
	Income       int64
}

// MonthGuests количество гостей по месяцам заезда
type MonthGuests struct {
	Month  string // "2025-06"
	Guests int64
}

// RoomUsage статистика использования номера
type RoomUsage struct {
	RoomID        int64
	RoomNumber    int
	BookingsCount int64
	Income        int64
}
