package domain

// Default pricing values, used when the configuration leaves them unset.
// Meal prices are per unit (one meal for one guest).
const (
	DefaultBreakfastPrice int64 = 300
	DefaultLunchPrice     int64 = 600
	DefaultDinnerPrice    int64 = 800

	DefaultLongStayNights                = 3
	DefaultLongStayDiscountPercent       = 5.0
	DefaultRepeatCustomerDiscountPercent = 5.0

	// DefaultCancellationNoticeHours minimum notice before check-in for a
	// paid booking to qualify for a refund
	DefaultCancellationNoticeHours = 24

	// RepeatCustomerWindowDays период, за который клиент считается повторным
	RepeatCustomerWindowDays = 365
)

// Business validation constants
const (
	MinNights      = 1
	MaxNights      = 90
	MinGuestsCount = 1
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// RefundContactMessage единственное пользовательское сообщение, которое
// формирует ядро: возврат средств оформляется по телефону
const RefundContactMessage = "За возвратом денежных средств обращайтесь по телефону 8 800 123-45-67"

// ActiveStatuses статусы бронирований, удерживающих номер
// Используются при проверке занятости номера на даты
var ActiveStatuses = []BookingStatus{StatusCreated, StatusPaid}
