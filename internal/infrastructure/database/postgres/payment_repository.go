package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"collection-portal/internal/domain/payment"
	"collection-portal/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const paymentColumns = `id, customer_id, amount_paid, pay_date, agent_id, created_at, updated_at`

type PaymentRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ payment.PaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository(db DBPool, logger *slog.Logger) *PaymentRepository {
	if db == nil {
		panic("DBPool cannot be nil for PaymentRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewPaymentRepository, using default stderr handler")
	}
	return &PaymentRepository{
		db:     db,
		logger: logger.With("component", "PaymentRepository"),
	}
}

func (r *PaymentRepository) UpsertForDay(ctx context.Context, p *payment.Payment) (*payment.Payment, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: payment cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to upsert daily payment",
		slog.Int64("customerID", p.CustomerID),
		slog.Time("payDate", p.PayDate))

	// The conflict target is the one-payment-per-customer-per-day rule.
	// A replay for the same day overwrites the amount only; the original
	// row keeps its id, date and recording agent.
	query := `
        INSERT INTO daily_payments (customer_id, amount_paid, pay_date, agent_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
        ON CONFLICT (customer_id, pay_date) DO UPDATE
        SET amount_paid = EXCLUDED.amount_paid,
            updated_at = NOW()
        RETURNING ` + paymentColumns

	start := time.Now()
	persisted, err := r.scanPayment(r.db.QueryRow(ctx, query,
		p.CustomerID,
		p.AmountPaid,
		p.PayDate,
		p.AgentID,
	))
	observeQuery("payment_upsert_for_day", start, err)

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to upsert daily payment", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to upsert daily payment: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Daily payment upserted successfully", slog.Int64("paymentID", persisted.PaymentID))
	return persisted, nil
}

func (r *PaymentRepository) FindByDateRange(ctx context.Context, rangeStart, rangeEnd time.Time) ([]*payment.Payment, error) {
	r.logger.InfoContext(ctx, "Attempting to find payments in date range",
		slog.Time("start", rangeStart),
		slog.Time("end", rangeEnd))

	query := `
        SELECT ` + paymentColumns + `
        FROM daily_payments
        WHERE pay_date BETWEEN $1 AND $2
        ORDER BY pay_date ASC, id ASC`

	start := time.Now()
	payments, err := r.queryPayments(ctx, query, rangeStart, rangeEnd)
	observeQuery("payment_find_by_range", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query payments by date range", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query payments by date range: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Finished finding payments in range", slog.Int("count", len(payments)))
	return payments, nil
}

func (r *PaymentRepository) FindByCustomer(ctx context.Context, customerID int64) ([]*payment.Payment, error) {
	r.logger.InfoContext(ctx, "Attempting to find payments for customer", slog.Int64("customerID", customerID))

	query := `
        SELECT ` + paymentColumns + `
        FROM daily_payments
        WHERE customer_id = $1
        ORDER BY pay_date DESC`

	start := time.Now()
	payments, err := r.queryPayments(ctx, query, customerID)
	observeQuery("payment_find_by_customer", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query payments for customer", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query payments for customer: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Finished finding payments for customer", slog.Int("count", len(payments)))
	return payments, nil
}

func (r *PaymentRepository) FindRecent(ctx context.Context, limit int) ([]*payment.Payment, error) {
	r.logger.InfoContext(ctx, "Attempting to find recent payments", slog.Int("limit", limit))

	query := `
        SELECT ` + paymentColumns + `
        FROM daily_payments
        ORDER BY pay_date DESC, id DESC
        LIMIT $1`

	start := time.Now()
	payments, err := r.queryPayments(ctx, query, limit)
	observeQuery("payment_find_recent", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query recent payments", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query recent payments: %w", apperrors.ErrDatabase, err)
	}

	return payments, nil
}

func (r *PaymentRepository) SumAmountInRange(ctx context.Context, rangeStart, rangeEnd time.Time) (decimal.Decimal, error) {
	r.logger.InfoContext(ctx, "Attempting to sum payments in date range",
		slog.Time("start", rangeStart),
		slog.Time("end", rangeEnd))

	query := `
        SELECT COALESCE(SUM(amount_paid), 0)
        FROM daily_payments
        WHERE pay_date BETWEEN $1 AND $2`

	var total decimal.Decimal
	start := time.Now()
	err := r.db.QueryRow(ctx, query, rangeStart, rangeEnd).Scan(&total)
	observeQuery("payment_sum_in_range", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to sum payments in range", slog.Any("error", err))
		return decimal.Zero, fmt.Errorf("%w: failed to sum payments in range: %w", apperrors.ErrDatabase, err)
	}

	return total, nil
}

func (r *PaymentRepository) SumByCustomer(ctx context.Context) ([]payment.CustomerRollup, error) {
	r.logger.InfoContext(ctx, "Attempting to aggregate deposit totals per customer")

	query := `
        SELECT customer_id, COALESCE(SUM(amount_paid), 0), MAX(pay_date), COUNT(*)
        FROM daily_payments
        GROUP BY customer_id
        ORDER BY customer_id ASC`

	start := time.Now()
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		observeQuery("payment_sum_by_customer", start, err)
		r.logger.ErrorContext(ctx, "Failed to query deposit totals", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query deposit totals: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	rollups := make([]payment.CustomerRollup, 0)
	for rows.Next() {
		var ru payment.CustomerRollup
		if err := rows.Scan(&ru.CustomerID, &ru.TotalDeposited, &ru.LastDeposit, &ru.PaymentCount); err != nil {
			observeQuery("payment_sum_by_customer", start, err)
			r.logger.ErrorContext(ctx, "Failed to scan rollup row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan rollup row: %w", apperrors.ErrDatabase, err)
		}
		rollups = append(rollups, ru)
	}

	if err = rows.Err(); err != nil {
		observeQuery("payment_sum_by_customer", start, err)
		r.logger.ErrorContext(ctx, "Error iterating rollup rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating rollup rows: %w", apperrors.ErrDatabase, err)
	}
	observeQuery("payment_sum_by_customer", start, nil)

	r.logger.InfoContext(ctx, "Finished aggregating deposit totals", slog.Int("customers", len(rollups)))
	return rollups, nil
}

func (r *PaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]*payment.Payment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*payment.Payment, 0)
	for rows.Next() {
		p, err := r.scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) scanPayment(row pgx.Row) (*payment.Payment, error) {
	var p payment.Payment
	err := row.Scan(
		&p.PaymentID,
		&p.CustomerID,
		&p.AmountPaid,
		&p.PayDate,
		&p.AgentID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
