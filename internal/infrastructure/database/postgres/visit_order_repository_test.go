package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"collection-portal/internal/domain/schedule"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func setupVisitOrderRepo(t *testing.T) (context.Context, *VisitOrderRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}

	ctx := context.Background()
	repo := NewVisitOrderRepository(mockPool, logger)

	return ctx, repo, mockPool
}

func TestFindVisitOrderByAgentReturnOne(t *testing.T) {
	ctx, repo, mockPool := setupVisitOrderRepo(t)
	defer mockPool.Close()

	updatedAt := time.Date(2026, 8, 29, 18, 0, 0, 0, time.UTC)

	mockPool.ExpectQuery(regexp.QuoteMeta("FROM visit_orders")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"agent_id", "customer_ids", "updated_at"}).
			AddRow(int64(7), []int64{3, 1, 2}, updatedAt))

	order, err := repo.FindByAgent(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), order.AgentID)
	assert.Equal(t, []int64{3, 1, 2}, order.CustomerIDs)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindVisitOrderByAgentReturnNone(t *testing.T) {
	ctx, repo, mockPool := setupVisitOrderRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta("FROM visit_orders")).
		WithArgs(int64(7)).
		WillReturnError(pgx.ErrNoRows)

	order, err := repo.FindByAgent(ctx, 7)
	assert.ErrorIs(t, err, schedule.ErrOrderNotFound)
	assert.Nil(t, order)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveVisitOrderUpserts(t *testing.T) {
	ctx, repo, mockPool := setupVisitOrderRepo(t)
	defer mockPool.Close()

	order := &schedule.VisitOrder{
		AgentID:     7,
		CustomerIDs: []int64{2, 3, 1},
	}

	mockPool.ExpectExec(regexp.QuoteMeta("ON CONFLICT (agent_id) DO UPDATE")).
		WithArgs(order.AgentID, order.CustomerIDs).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Save(ctx, order)
	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveVisitOrderRejectsNil(t *testing.T) {
	ctx, repo, mockPool := setupVisitOrderRepo(t)
	defer mockPool.Close()

	err := repo.Save(ctx, nil)
	assert.Error(t, err)
}
