package rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	roomRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/room"
)

type mockRoomRepo struct {
	room       *domain.Room
	rooms      []*domain.Room
	categories []*domain.Category
}

func (m *mockRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	if m.room == nil {
		return nil, roomRepo.ErrRoomNotFound
	}
	return m.room, nil
}

func (m *mockRoomRepo) List(_ context.Context) ([]*domain.Room, error) {
	return m.rooms, nil
}

func (m *mockRoomRepo) GetCategoryByID(_ context.Context, id int64) (*domain.Category, error) {
	for _, c := range m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, roomRepo.ErrCategoryNotFound
}

func (m *mockRoomRepo) ListCategories(_ context.Context) ([]*domain.Category, error) {
	return m.categories, nil
}

type mockBookingRepo struct {
	occupied bool

	start time.Time
	end   time.Time
}

func (m *mockBookingRepo) HasOverlapping(_ context.Context, _ int64, start, end time.Time) (bool, error) {
	m.start = start
	m.end = end
	return m.occupied, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestCheckAvailability_Free(t *testing.T) {
	rooms := &mockRoomRepo{room: &domain.Room{ID: 1, Capacity: 2}}
	bookings := &mockBookingRepo{}

	svc := NewService(rooms, bookings, noopLogger{})

	resp, err := svc.CheckAvailability(context.Background(), 1,
		time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Equal(t, "2026-09-10", resp.StartDate)
	assert.Equal(t, "2026-09-12", resp.EndDate)
}

func TestCheckAvailability_Occupied(t *testing.T) {
	rooms := &mockRoomRepo{room: &domain.Room{ID: 1, Capacity: 2}}
	bookings := &mockBookingRepo{occupied: true}

	svc := NewService(rooms, bookings, noopLogger{})

	resp, err := svc.CheckAvailability(context.Background(), 1,
		time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.False(t, resp.Available)
}

func TestCheckAvailability_InvalidRange(t *testing.T) {
	svc := NewService(&mockRoomRepo{room: &domain.Room{ID: 1}}, &mockBookingRepo{}, noopLogger{})

	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.CheckAvailability(context.Background(), 1, start, start)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.CheckAvailability(context.Background(), 1, start, start.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCheckAvailability_RoomNotFound(t *testing.T) {
	svc := NewService(&mockRoomRepo{}, &mockBookingRepo{}, noopLogger{})

	_, err := svc.CheckAvailability(context.Background(), 99,
		time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestList_JoinsCategoryNames(t *testing.T) {
	rooms := &mockRoomRepo{
		rooms: []*domain.Room{
			{ID: 1, Number: 101, CategoryID: 1, Capacity: 2, PricePerNight: 4500},
			{ID: 2, Number: 201, CategoryID: 2, Capacity: 4, PricePerNight: 9000},
		},
		categories: []*domain.Category{
			{ID: 1, Name: "Стандарт"},
			{ID: 2, Name: "Люкс"},
		},
	}

	svc := NewService(rooms, &mockBookingRepo{}, noopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, "Стандарт", resp.Rooms[0].CategoryName)
	assert.Equal(t, "Люкс", resp.Rooms[1].CategoryName)
}
