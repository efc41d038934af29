package transaction

import (
	"context"
	"fmt"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/pkg/dbmetrics"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/pkg/psqlbuilder"
)

// DBExecutor алиас интерфейса исполнителя запросов
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий журнала транзакций
// Журнал append-only: записи создаются при оплате (income) и при
// одобренном возврате (refund), никогда не изменяются и не удаляются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория транзакций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись в журнал
func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("transactions").
		Columns(
			"payment_id",
			"amount",
			"type",
			"transaction_date",
		).
		Values(
			tx.PaymentID,
			tx.Amount,
			tx.Type,
			tx.TransactionDate,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&tx.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return tx, nil
}

// List получает все записи журнала, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"payment_id",
		"amount",
		"type",
		"transaction_date",
	).
		From("transactions").
		OrderBy("transaction_date DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(
			&tx.ID,
			&tx.PaymentID,
			&tx.Amount,
			&tx.Type,
			&tx.TransactionDate,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		transactions = append(transactions, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return transactions, nil
}
