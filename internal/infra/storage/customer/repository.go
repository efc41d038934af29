package customer

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

// Repository репозиторий для работы с клиентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового клиента
// Если в контексте передана активная транзакция, использует её
// (создание клиента при бронировании происходит в общей транзакции,
// чтобы при ошибке дальше по цепочке клиент не оставался в БД)
func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns(
			"full_name",
			"phone",
			"email",
		).
		Values(
			customer.FullName,
			customer.Phone,
			customer.Email,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	customer.CreatedAt = createdAt.Time

	return customer, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"full_name",
		"phone",
		"email",
		"created_at",
	).
		From("customers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var customer domain.Customer
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.FullName,
		&customer.Phone,
		&customer.Email,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan customer: %v", ErrScanRow, err)
	}

	customer.CreatedAt = createdAt.Time

	return &customer, nil
}

// GetByContact ищет клиента по телефону или email.
// Совпадение по любому из двух полей считается тем же клиентом.
// Если в контексте передана активная транзакция, строка блокируется (FOR UPDATE)
func (r *Repository) GetByContact(ctx context.Context, phone, email string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(
		"id",
		"full_name",
		"phone",
		"email",
		"created_at",
	).
		From("customers").
		Where(squirrel.Or{
			squirrel.Eq{"phone": phone},
			squirrel.Eq{"email": email},
		}).
		OrderBy("id ASC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByContact - build select query: %v", ErrBuildQuery, err)
	}

	var customer domain.Customer
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.FullName,
		&customer.Phone,
		&customer.Email,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByContact - scan customer: %v", ErrScanRow, err)
	}

	customer.CreatedAt = createdAt.Time

	return &customer, nil
}

// List получает всех клиентов, отсортированных по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"full_name",
		"phone",
		"email",
		"created_at",
	).
		From("customers").
		OrderBy("full_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var customer domain.Customer
		var createdAt sql.NullTime

		err := rows.Scan(
			&customer.ID,
			&customer.FullName,
			&customer.Phone,
			&customer.Email,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		customer.CreatedAt = createdAt.Time
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return customers, nil
}
