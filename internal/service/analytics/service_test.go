package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
)

type mockAnalyticsRepo struct {
	income []*domain.CategoryIncome
	months []*domain.MonthGuests
	rooms  []*domain.RoomUsage

	topRoomsLimit int
}

func (m *mockAnalyticsRepo) IncomeByCategory(_ context.Context, _, _ *time.Time) ([]*domain.CategoryIncome, error) {
	return m.income, nil
}

func (m *mockAnalyticsRepo) GuestsByMonth(_ context.Context) ([]*domain.MonthGuests, error) {
	return m.months, nil
}

func (m *mockAnalyticsRepo) TopRooms(_ context.Context, limit int) ([]*domain.RoomUsage, error) {
	m.topRoomsLimit = limit
	return m.rooms, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestRevenueByCategory(t *testing.T) {
	repo := &mockAnalyticsRepo{income: []*domain.CategoryIncome{
		{CategoryName: "Люкс", Income: 50000},
		{CategoryName: "Стандарт", Income: 32000},
	}}

	svc := NewService(repo, &fakeTxManager{}, noopLogger{})

	resp, err := svc.RevenueByCategory(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, resp.Categories, 2)
	assert.Equal(t, "Люкс", resp.Categories[0].CategoryName)
	assert.Equal(t, int64(50000), resp.Categories[0].Income)
}

func TestRevenueByCategory_InvalidPeriod(t *testing.T) {
	svc := NewService(&mockAnalyticsRepo{}, &fakeTxManager{}, noopLogger{})

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.RevenueByCategory(context.Background(), &start, &end)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestTopRooms_DefaultLimit(t *testing.T) {
	repo := &mockAnalyticsRepo{}
	svc := NewService(repo, &fakeTxManager{}, noopLogger{})

	_, err := svc.TopRooms(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTopRoomsLimit, repo.topRoomsLimit)

	_, err = svc.TopRooms(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.topRoomsLimit)
}
