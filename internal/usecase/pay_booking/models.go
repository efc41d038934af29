package pay_booking

// Статусы результата оплаты
const (
	StatusPaid     = "paid"
	StatusAwaiting = "awaiting_confirmation"
)

// Request модель запроса на оплату бронирования
type Request struct {
	BookingID int64
	Method    string // cash | card | online | bank

	// Подтверждение оплаты. Без него оплата не проводится:
	// бронирование остается в статусе created, записи не создаются
	Confirmed bool
}

// Response результат оплаты
type Response struct {
	BookingID int64
	PaymentID int64 // 0, если оплата не проводилась
	Amount    int64
	Method    string
	Status    string // paid | awaiting_confirmation
}
