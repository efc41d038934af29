package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/pkg/dbmetrics"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeTxBeginner struct {
	lastOpts *sql.TxOptions
	lastTx   *fakeTx
}

func (b *fakeTxBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.lastOpts = opts
	b.lastTx = &fakeTx{}
	return b.lastTx, nil
}

func serializationFailure() error {
	return &pq.Error{Code: pgSerializationFailure}
}

func TestDoSerializable_RetriesOnSerializationConflict(t *testing.T) {
	m := NewTransactionManager(&fakeTxBeginner{})

	attempts := 0
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		attempts++
		return serializationFailure()
	})

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, maxSerializableAttempts, attempts)
}

func TestDoSerializable_SucceedsAfterConflict(t *testing.T) {
	db := &fakeTxBeginner{}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		attempts++
		if attempts == 1 {
			return serializationFailure()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.True(t, db.lastTx.committed)
	require.NotNil(t, db.lastOpts)
	assert.Equal(t, sql.LevelSerializable, db.lastOpts.Isolation)
}

func TestDoSerializable_DoesNotRetryOtherErrors(t *testing.T) {
	db := &fakeTxBeginner{}
	m := NewTransactionManager(db)

	wantErr := errors.New("boom")
	attempts := 0
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		attempts++
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, attempts)
	assert.True(t, db.lastTx.rolledBack)
}

func TestDoReadOnly_CommitsReadOnlyTransaction(t *testing.T) {
	db := &fakeTxBeginner{}
	m := NewTransactionManager(db)

	err := m.DoReadOnly(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	require.NotNil(t, db.lastOpts)
	assert.True(t, db.lastOpts.ReadOnly)
	assert.True(t, db.lastTx.committed)
}
