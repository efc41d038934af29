package create_booking

import (
	"fmt"
	"time"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CustomerID != nil && *req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.GuestsCount < domain.MinGuestsCount {
		return fmt.Errorf("%w: guests count must be at least %d", ErrInvalidInput, domain.MinGuestsCount)
	}

	if req.BreakfastCount < 0 || req.LunchCount < 0 || req.DinnerCount < 0 {
		return fmt.Errorf("%w: meal counts must not be negative", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	return nil
}

// validateDates проверяет даты заезда и выезда.
// Проживание считается ночами: выезд должен быть хотя бы на следующий
// день после заезда, а заезд не может быть в прошлом.
func validateDates(start, end, now time.Time) error {
	if isDateInPast(start, now) {
		return fmt.Errorf("%w: start date is in the past", ErrInvalidDate)
	}

	nights := nightsBetween(start, end)
	if nights < domain.MinNights {
		return fmt.Errorf("%w: stay must be at least %d night", ErrInvalidDate, domain.MinNights)
	}
	if nights > domain.MaxNights {
		return fmt.Errorf("%w: stay must not exceed %d nights", ErrInvalidDate, domain.MaxNights)
	}

	return nil
}

// nightsBetween возвращает количество ночей между датами
func nightsBetween(start, end time.Time) int {
	startOnly := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endOnly := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	return int(endOnly.Sub(startOnly).Hours() / 24)
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
