package dbmetrics

import "context"

type ctxKey struct{}

var txKey ctxKey

// WithTransaction кладет активную транзакцию в контекст
// Репозитории автоматически используют её через GetExecutor
func WithTransaction(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetExecutor возвращает executor для выполнения запроса:
// активную транзакцию из контекста, если она есть, иначе переданный по умолчанию
func GetExecutor(ctx context.Context, def DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey).(TxExecutor); ok {
		return tx
	}
	return def
}

// IsInTransaction сообщает, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(TxExecutor)
	return ok
}
