package acquiring

// AuthorizeRequest запрос на авторизацию платежа в эквайринге
type AuthorizeRequest struct {
	BookingID int64  `json:"booking_id"`
	Amount    int64  `json:"amount"`
	Method    string `json:"method"`
}

// Authorization результат авторизации платежа
type Authorization struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"` // confirmed | declined
}

// Confirmed сообщает, что шлюз подтвердил платеж
func (a *Authorization) Confirmed() bool {
	return a.Status == "confirmed"
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
