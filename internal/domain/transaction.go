package domain

import "time"

// TransactionType enumerates ledger entry types
type TransactionType string

const (
	TransactionIncome TransactionType = "income"
	TransactionRefund TransactionType = "refund"
)

// Transaction is an append-only ledger entry derived from a payment event.
// Income entries are written when a booking is paid, refund entries when a
// paid booking is cancelled with refund approval. Transactions are never
// updated or deleted.
type Transaction struct {
	ID        int64
	PaymentID int64

	Amount          int64
	Type            TransactionType
	TransactionDate time.Time
}
