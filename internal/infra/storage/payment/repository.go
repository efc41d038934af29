package payment

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

var paymentColumns = []string{
	"id",
	"booking_id",
	"amount",
	"method",
	"status",
	"payment_date",
}

// Repository репозиторий для работы с платежами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый платёж
// Вызывается только внутри транзакции оплаты бронирования
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"booking_id",
			"amount",
			"method",
			"status",
			"payment_date",
		).
		Values(
			payment.BookingID,
			payment.Amount,
			payment.Method,
			payment.Status,
			payment.PaymentDate,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&payment.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return payment, nil
}

// GetSuccessfulByBookingID получает успешный платёж по бронированию
func (r *Repository) GetSuccessfulByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		Where(squirrel.Eq{"status": string(domain.PaymentSuccess)}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSuccessfulByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	payment, err := scanPayment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSuccessfulByBookingID - scan payment: %v", ErrScanRow, err)
	}

	return payment, nil
}

// List получает все платежи, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		OrderBy("payment_date DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}

// UpdateStatus обновляет статус платежа
// Используется при отмене оплаченного бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var payment domain.Payment

	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Method,
		&payment.Status,
		&payment.PaymentDate,
	)
	if err != nil {
		return nil, err
	}

	return &payment, nil
}
