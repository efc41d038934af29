package models

import (
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
)

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID            int64  `json:"id"`
	Number        int    `json:"number"`
	CategoryID    int64  `json:"categoryId"`
	CategoryName  string `json:"categoryName,omitempty"`
	Capacity      int    `json:"capacity"`
	PricePerNight int64  `json:"pricePerNight"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// AvailabilityResponse результат проверки доступности номера
type AvailabilityResponse struct {
	RoomID    int64  `json:"roomId"`
	StartDate string `json:"startDate"` // "2026-01-15"
	EndDate   string `json:"endDate"`
	Available bool   `json:"available"`
}

// FromDomainRoom конвертирует domain модель в DTO.
// categoryName может быть пустым, если категория не загружалась.
func FromDomainRoom(r *domain.Room, categoryName string) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		ID:            r.ID,
		Number:        r.Number,
		CategoryID:    r.CategoryID,
		CategoryName:  categoryName,
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
	}
}

// FromDomainRoomList конвертирует список номеров, подставляя имена категорий
func FromDomainRoomList(rooms []*domain.Room, categories []*domain.Category) *RoomListResponse {
	names := make(map[int64]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}

	for _, room := range rooms {
		if roomResp := FromDomainRoom(room, names[room.CategoryID]); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}

	return resp
}
