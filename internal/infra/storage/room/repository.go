package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/pkg/dbmetrics"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/pkg/psqlbuilder"
)

// DBExecutor алиас интерфейса исполнителя запросов
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с номерами и категориями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает номер по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"number",
		"category_id",
		"capacity",
		"price_per_night",
		"created_at",
		"updated_at",
	).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.Number,
		&room.CategoryID,
		&room.Capacity,
		&room.PricePerNight,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}

// List получает все номера, отсортированные по номеру комнаты
func (r *Repository) List(ctx context.Context) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"number",
		"category_id",
		"capacity",
		"price_per_night",
		"created_at",
		"updated_at",
	).
		From("rooms").
		OrderBy("number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&room.ID,
			&room.Number,
			&room.CategoryID,
			&room.Capacity,
			&room.PricePerNight,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		room.CreatedAt = createdAt.Time
		room.UpdatedAt = updatedAt.Time
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// GetCategoryByID получает категорию по ID
func (r *Repository) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"base_price",
	).
		From("categories").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCategoryByID - build select query: %v", ErrBuildQuery, err)
	}

	var category domain.Category
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.BasePrice,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategoryByID - scan category: %v", ErrScanRow, err)
	}

	return &category, nil
}

// ListCategories получает все категории
func (r *Repository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"base_price",
	).
		From("categories").
		OrderBy("base_price ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.BasePrice); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}
