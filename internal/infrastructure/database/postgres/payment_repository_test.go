package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"collection-portal/internal/domain/payment"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var paymentTest = &payment.Payment{
	PaymentID:  10,
	CustomerID: 1,
	AmountPaid: decimal.NewFromInt(2000),
	PayDate:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	AgentID:    7,
}

func paymentRows(payments ...*payment.Payment) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "customer_id", "amount_paid", "pay_date", "agent_id", "created_at", "updated_at",
	})
	for _, p := range payments {
		rows.AddRow(p.PaymentID, p.CustomerID, p.AmountPaid, p.PayDate, p.AgentID, p.CreatedAt, p.UpdatedAt)
	}
	return rows
}

func setupPaymentRepo(t *testing.T) (context.Context, *PaymentRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}

	ctx := context.Background()
	repo := NewPaymentRepository(mockPool, logger)

	return ctx, repo, mockPool
}

func TestUpsertForDayInsertsNewPayment(t *testing.T) {
	ctx, repo, mockPool := setupPaymentRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta("INSERT INTO daily_payments")).WithArgs(
		paymentTest.CustomerID,
		paymentTest.AmountPaid,
		paymentTest.PayDate,
		paymentTest.AgentID,
	).WillReturnRows(paymentRows(paymentTest))

	persisted, err := repo.UpsertForDay(ctx, paymentTest)
	assert.NoError(t, err)
	assert.Equal(t, paymentTest.PaymentID, persisted.PaymentID)
	assert.True(t, paymentTest.AmountPaid.Equal(persisted.AmountPaid))
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestUpsertForDayKeepsOriginalRowOnReplay(t *testing.T) {
	ctx, repo, mockPool := setupPaymentRepo(t)
	defer mockPool.Close()

	// The second write for the same day returns the original row id with the
	// replacement amount.
	replay := *paymentTest
	replay.AmountPaid = decimal.NewFromInt(4000)
	replay.AgentID = 9

	persistedRow := *paymentTest
	persistedRow.AmountPaid = replay.AmountPaid

	mockPool.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (customer_id, pay_date) DO UPDATE")).WithArgs(
		replay.CustomerID,
		replay.AmountPaid,
		replay.PayDate,
		replay.AgentID,
	).WillReturnRows(paymentRows(&persistedRow))

	persisted, err := repo.UpsertForDay(ctx, &replay)
	assert.NoError(t, err)
	assert.Equal(t, paymentTest.PaymentID, persisted.PaymentID)
	assert.Equal(t, paymentTest.AgentID, persisted.AgentID)
	assert.True(t, replay.AmountPaid.Equal(persisted.AmountPaid))
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestUpsertForDayRejectsNilPayment(t *testing.T) {
	ctx, repo, mockPool := setupPaymentRepo(t)
	defer mockPool.Close()

	persisted, err := repo.UpsertForDay(ctx, nil)
	assert.Error(t, err)
	assert.Nil(t, persisted)
}

func TestFindByDateRangeReturnsPayments(t *testing.T) {
	ctx, repo, mockPool := setupPaymentRepo(t)
	defer mockPool.Close()

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 23, 59, 59, 999999999, time.UTC)

	mockPool.ExpectQuery(regexp.QuoteMeta("WHERE pay_date BETWEEN $1 AND $2")).
		WithArgs(start, end).
		WillReturnRows(paymentRows(paymentTest))

	payments, err := repo.FindByDateRange(ctx, start, end)
	assert.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.Equal(t, paymentTest.PaymentID, payments[0].PaymentID)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindByCustomerReturnsPaymentsNewestFirst(t *testing.T) {
	ctx, repo, mockPool := setupPaymentRepo(t)
	defer mockPool.Close()

	older := *paymentTest
	older.PaymentID = 9
	older.PayDate = paymentTest.PayDate.AddDate(0, 0, -1)

	mockPool.ExpectQuery(regexp.QuoteMeta("WHERE customer_id = $1")).
		WithArgs(paymentTest.CustomerID).
		WillReturnRows(paymentRows(paymentTest, &older))

	payments, err := repo.FindByCustomer(ctx, paymentTest.CustomerID)
	assert.NoError(t, err)
	assert.Len(t, payments, 2)
	assert.True(t, payments[0].PayDate.After(payments[1].PayDate))
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindRecentHonorsLimit(t *testing.T) {
	ctx, repo, mockPool := setupPaymentRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta("LIMIT $1")).
		WithArgs(10).
		WillReturnRows(paymentRows(paymentTest))

	payments, err := repo.FindRecent(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSumAmountInRangeReturnsZeroWhenEmpty(t *testing.T) {
	ctx, repo, mockPool := setupPaymentRepo(t)
	defer mockPool.Close()

	start := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 30, 23, 59, 59, 999999999, time.UTC)

	mockPool.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount_paid), 0)")).
		WithArgs(start, end).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(decimal.Zero))

	total, err := repo.SumAmountInRange(ctx, start, end)
	assert.NoError(t, err)
	assert.True(t, total.IsZero())
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSumByCustomerReturnsRollups(t *testing.T) {
	ctx, repo, mockPool := setupPaymentRepo(t)
	defer mockPool.Close()

	lastDeposit := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	mockPool.ExpectQuery(regexp.QuoteMeta("GROUP BY customer_id")).
		WillReturnRows(pgxmock.NewRows([]string{"customer_id", "coalesce", "max", "count"}).
			AddRow(int64(1), decimal.NewFromInt(14000), lastDeposit, int64(7)))

	rollups, err := repo.SumByCustomer(ctx)
	assert.NoError(t, err)
	assert.Len(t, rollups, 1)
	assert.Equal(t, int64(1), rollups[0].CustomerID)
	assert.True(t, rollups[0].TotalDeposited.Equal(decimal.NewFromInt(14000)))
	assert.Equal(t, lastDeposit, rollups[0].LastDeposit)
	assert.Equal(t, int64(7), rollups[0].PaymentCount)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}
