package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	commits     int
	rollbacks   int
	commitErr   error
	rollbackErr error
}

func (t *fakeTx) Commit(context.Context) error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rollbacks++
	return t.rollbackErr
}

type fakeDB struct {
	PgxIface
	tx       *fakeTx
	beginErr error
}

func (d *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

func TestInTxCommitsOnSuccess(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{}}

	var got pgx.Tx
	err := InTx(context.Background(), db, func(tx pgx.Tx) error {
		got = tx
		return nil
	})

	require.NoError(t, err)
	assert.Same(t, db.tx, got)
	assert.Equal(t, 1, db.tx.commits)
	assert.Equal(t, 0, db.tx.rollbacks)
}

func TestInTxRollsBackWhenFnFails(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{}}
	recomputeErr := errors.New("update rating stats: connection reset")

	err := InTx(context.Background(), db, func(pgx.Tx) error {
		return recomputeErr
	})

	require.ErrorIs(t, err, recomputeErr)
	assert.Equal(t, 0, db.tx.commits)
	assert.Equal(t, 1, db.tx.rollbacks)
}

func TestInTxReportsRollbackFailure(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{rollbackErr: errors.New("conn busy")}}
	fnErr := errors.New("insert review")

	err := InTx(context.Background(), db, func(pgx.Tx) error { return fnErr })

	require.ErrorIs(t, err, fnErr)
	assert.ErrorContains(t, err, "rollback: conn busy")
	assert.Equal(t, 0, db.tx.commits)
}

func TestInTxRollsBackFailedCommit(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{commitErr: errors.New("serialization failure"), rollbackErr: pgx.ErrTxClosed}}

	err := InTx(context.Background(), db, func(pgx.Tx) error { return nil })

	require.Error(t, err)
	assert.ErrorContains(t, err, "commit transaction")
	assert.NotContains(t, err.Error(), "rollback")
	assert.Equal(t, 1, db.tx.commits)
	assert.Equal(t, 1, db.tx.rollbacks)
}

func TestInTxRollsBackAndRepanics(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{}}

	assert.PanicsWithValue(t, "boom", func() {
		_ = InTx(context.Background(), db, func(pgx.Tx) error { panic("boom") })
	})
	assert.Equal(t, 0, db.tx.commits)
	assert.Equal(t, 1, db.tx.rollbacks)
}

func TestInTxBeginFailure(t *testing.T) {
	db := &fakeDB{beginErr: errors.New("pool closed")}
	called := false

	err := InTx(context.Background(), db, func(pgx.Tx) error {
		called = true
		return nil
	})

	require.ErrorContains(t, err, "begin transaction")
	assert.False(t, called)
}
