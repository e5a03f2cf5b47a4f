package repository

import (
	"context"
	"errors"
	"testing"

	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingTx struct {
	pgx.Tx
	commits, rollbacks int
}

func (t *recordingTx) Commit(context.Context) error {
	t.commits++
	return nil
}

func (t *recordingTx) Rollback(context.Context) error {
	t.rollbacks++
	return nil
}

type txPool struct {
	database.PgxIface
	tx *recordingTx
}

func (p *txPool) Begin(context.Context) (pgx.Tx, error) {
	return p.tx, nil
}

func TestWithTxRollsBackReviewWriteWhenRecomputeFails(t *testing.T) {
	pool := &txPool{tx: &recordingTx{}}
	repo := NewRepository(pool, zap.NewNop())
	statsErr := errors.New("update rating stats: deadlock detected")

	var inner *Repository
	err := repo.WithTx(context.Background(), func(tx *Repository) error {
		inner = tx
		// review mutation succeeded, stats write did not
		return statsErr
	})

	require.ErrorIs(t, err, statsErr)
	require.NotNil(t, inner)
	assert.NotSame(t, repo, inner)
	assert.NotNil(t, inner.Review)
	assert.Equal(t, 0, pool.tx.commits)
	assert.Equal(t, 1, pool.tx.rollbacks)
}

func TestWithTxCommits(t *testing.T) {
	pool := &txPool{tx: &recordingTx{}}
	repo := NewRepository(pool, zap.NewNop())

	require.NoError(t, repo.WithTx(context.Background(), func(*Repository) error { return nil }))
	assert.Equal(t, 1, pool.tx.commits)
	assert.Equal(t, 0, pool.tx.rollbacks)
}
