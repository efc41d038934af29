package get_bookings

import (
	"strconv"
	"time"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров
func ToServiceRequest(roomIDStr, customerIDStr, statusStr, startDateStr, endDateStr, includeCancelledStr string) (*models.GetBookingsRequest, error) {
	req := &models.GetBookingsRequest{}

	if roomIDStr != "" {
		roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RoomID = &roomID
	}

	if customerIDStr != "" {
		customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CustomerID = &customerID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
