package models

import (
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
)

// CategoryIncomeResponse доход по категории номеров
type CategoryIncomeResponse struct {
	CategoryName string `json:"categoryName"`
	Income       int64  `json:"income"`
}

// RevenueByCategoryResponse ответ отчета о доходах по категориям
type RevenueByCategoryResponse struct {
	Categories []CategoryIncomeResponse `json:"categories"`
}

// MonthGuestsResponse количество гостей за месяц
type MonthGuestsResponse struct {
	Month  string `json:"month"` // "2026-06"
	Guests int64  `json:"guests"`
}

// GuestsByMonthResponse ответ отчета о загрузке по месяцам
type GuestsByMonthResponse struct {
	Months []MonthGuestsResponse `json:"months"`
}

// RoomUsageResponse статистика использования номера
type RoomUsageResponse struct {
	RoomID        int64 `json:"roomId"`
	RoomNumber    int   `json:"roomNumber"`
	BookingsCount int64 `json:"bookingsCount"`
	Income        int64 `json:"income"`
}

// TopRoomsResponse ответ отчета о самых востребованных номерах
type TopRoomsResponse struct {
	Rooms []RoomUsageResponse `json:"rooms"`
}

// FromDomainCategoryIncome конвертирует список доходов по категориям в DTO
func FromDomainCategoryIncome(items []*domain.CategoryIncome) *RevenueByCategoryResponse {
	resp := &RevenueByCategoryResponse{
		Categories: make([]CategoryIncomeResponse, 0, len(items)),
	}

	for _, item := range items {
		resp.Categories = append(resp.Categories, CategoryIncomeResponse{
			CategoryName: item.CategoryName,
			Income:       item.Income,
		})
	}

	return resp
}

// FromDomainMonthGuests конвертирует список гостей по месяцам в DTO
func FromDomainMonthGuests(items []*domain.MonthGuests) *GuestsByMonthResponse {
	resp := &GuestsByMonthResponse{
		Months: make([]MonthGuestsResponse, 0, len(items)),
	}

	for _, item := range items {
		resp.Months = append(resp.Months, MonthGuestsResponse{
			Month:  item.Month,
			Guests: item.Guests,
		})
	}

	return resp
}

// FromDomainRoomUsage конвертирует статистику номеров в DTO
func FromDomainRoomUsage(items []*domain.RoomUsage) *TopRoomsResponse {
	resp := &TopRoomsResponse{
		Rooms: make([]RoomUsageResponse, 0, len(items)),
	}

	for _, item := range items {
		resp.Rooms = append(resp.Rooms, RoomUsageResponse{
			RoomID:        item.RoomID,
			RoomNumber:    item.RoomNumber,
			BookingsCount: item.BookingsCount,
			Income:        item.Income,
		})
	}

	return resp
}
