package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"collection-portal/internal/domain/customer"
	"collection-portal/internal/domain/payment"
	"collection-portal/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

// DepositRollupJob recomputes each customer's derived deposit totals from
// the payment ledger. The rollup fields on customers are never maintained
// inline on payment writes, so this job is the only writer.
type DepositRollupJob struct {
	paymentRepo  payment.PaymentRepository
	customerRepo customer.CustomerRepository
	logger       *slog.Logger
}

func NewDepositRollupJob(
	paymentRepo payment.PaymentRepository,
	customerRepo customer.CustomerRepository,
	logger *slog.Logger,
) *DepositRollupJob {
	if paymentRepo == nil || customerRepo == nil || logger == nil {
		panic("DepositRollupJob dependencies cannot be nil")
	}
	return &DepositRollupJob{
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
		logger:       logger.With("job", "DepositRollup"),
	}
}

func (j *DepositRollupJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting nightly deposit rollup job.")

	j.logger.DebugContext(ctx, "Aggregating deposit totals from the payment ledger.")
	rollups, err := j.paymentRepo.SumByCustomer(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to aggregate deposit totals, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run job, failed to aggregate deposits: %w", err)
	}
	j.logger.InfoContext(ctx, "Aggregated deposit totals.", slog.Int("customers", len(rollups)))

	if len(rollups) == 0 {
		j.logger.InfoContext(ctx, "No payments recorded yet, nothing to roll up.")
		j.logger.InfoContext(ctx, "Deposit rollup job finished.", slog.Duration("duration", time.Since(startTime)))
		return nil
	}

	j.logger.DebugContext(ctx, "Fetching customers for denomination lookup.")
	customers, err := j.customerRepo.FindAll(ctx, true)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to fetch customers, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run job, failed to fetch customers: %w", err)
	}

	denominations := make(map[int64]int64, len(customers))
	for _, cust := range customers {
		denominations[cust.CustomerID] = cust.Denomination
	}

	var updatedCount, skippedCount, errorCount int

	for _, rollup := range rollups {
		logCtx := j.logger.With(slog.Int64("customerID", rollup.CustomerID))

		denomination, known := denominations[rollup.CustomerID]
		if !known {
			logCtx.WarnContext(ctx, "Payments exist for an unknown customer (data inconsistency?)")
			skippedCount++
			continue
		}

		monthsPaidUpTo := monthsCovered(rollup.TotalDeposited, denomination)
		lastDeposit := rollup.LastDeposit

		logCtx.DebugContext(ctx, "Updating customer deposit rollup.",
			slog.String("totalDeposited", rollup.TotalDeposited.String()),
			slog.Int("monthsPaidUpTo", monthsPaidUpTo))

		updateErr := j.customerRepo.UpdateDepositRollup(ctx, rollup.CustomerID, rollup.TotalDeposited, &lastDeposit, monthsPaidUpTo)
		if updateErr != nil {
			if errors.Is(updateErr, apperrors.ErrNotFound) {
				logCtx.WarnContext(ctx, "Customer disappeared during rollup (potentially deleted recently?)", slog.Any("error", updateErr))
				skippedCount++
			} else {
				logCtx.ErrorContext(ctx, "Failed to update customer deposit rollup", slog.Any("error", updateErr))
				errorCount++
			}
			continue
		}
		updatedCount++
	}

	j.logger.InfoContext(ctx, "Deposit rollup job finished.",
		slog.Int("updated", updatedCount),
		slog.Int("skipped", skippedCount),
		slog.Int("errors", errorCount),
		slog.Duration("duration", time.Since(startTime)))

	if errorCount > 0 {
		return fmt.Errorf("deposit rollup completed with %d errors", errorCount)
	}
	return nil
}

// monthsCovered is how many whole pledged installments the lifetime total
// pays for. Customers with a zero denomination report zero months.
func monthsCovered(totalDeposited decimal.Decimal, denomination int64) int {
	if denomination <= 0 {
		return 0
	}
	months := totalDeposited.Div(decimal.NewFromInt(denomination)).IntPart()
	return int(months)
}
