package payment

import (
	"context"
	"time"

	"collection-portal/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

var ErrNotFound = apperrors.ErrNotFound

// CustomerRollup is one customer's derived deposit totals, produced by
// SumByCustomer for the nightly rollup job.
type CustomerRollup struct {
	CustomerID     int64
	TotalDeposited decimal.Decimal
	LastDeposit    time.Time
	PaymentCount   int64
}

type PaymentRepository interface {
	// UpsertForDay writes the single payment row keyed by (customer, calendar
	// day of payment.PayDate). On conflict only the amount changes; the row's
	// id, date and recording agent are preserved. The returned payment
	// carries the persisted identity either way.
	UpsertForDay(ctx context.Context, p *Payment) (*Payment, error)

	// FindByDateRange returns payments with PayDate in [start, end], both
	// ends inclusive.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*Payment, error)

	// FindByCustomer returns one customer's payments ordered by date
	// descending.
	FindByCustomer(ctx context.Context, customerID int64) ([]*Payment, error)

	// FindRecent returns the most recent payments ordered by date descending,
	// capped at limit.
	FindRecent(ctx context.Context, limit int) ([]*Payment, error)

	// SumAmountInRange is the dashboard's range-sum primitive.
	SumAmountInRange(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// SumByCustomer aggregates lifetime totals per customer for the rollup
	// job.
	SumByCustomer(ctx context.Context) ([]CustomerRollup, error)
}
