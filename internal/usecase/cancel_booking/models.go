package cancel_booking

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64
}

// Response результат отмены
type Response struct {
	BookingID int64
	Status    string // cancelled

	// RefundIssued true, если бронирование было оплачено и отмена
	// прошла с соблюдением срока уведомления
	RefundIssued bool

	// Message инструкция для клиента по возврату средств (при возврате)
	Message string
}
