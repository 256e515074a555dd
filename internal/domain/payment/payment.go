package payment

import (
	"fmt"
	"time"

	"collection-portal/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

// Payment is one day's cash installment from a customer. Identity is the
// composite key (CustomerID, PayDate): the store enforces at most one row per
// customer per calendar day, and repeated writes for the same day update the
// amount in place.
type Payment struct {
	PaymentID  int64
	CustomerID int64
	AmountPaid decimal.Decimal
	// PayDate is normalized to noon UTC so start/end-of-day range queries
	// capture exactly one day's records regardless of recording time.
	PayDate   time.Time
	AgentID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeDay pins a timestamp to the canonical time-of-day for its
// calendar day.
func NormalizeDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// DayBounds returns the inclusive [start, end] window covering the calendar
// day of t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	end := time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	return start, end
}

// ValidateAmount rejects negative installments before any store write.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", apperrors.ErrInvalidPaymentAmount)
	}
	return nil
}

// NoteValues are the cash denominations agents tally after a collection
// round, largest first.
var NoteValues = []int64{2000, 500, 200, 100, 50, 20, 10, 5, 2, 1}

// CashTotal sums a tally of note counts into a single amount. Unknown note
// values are ignored; negative counts are rejected.
func CashTotal(counts map[int64]int64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, note := range NoteValues {
		count := counts[note]
		if count < 0 {
			return decimal.Zero, fmt.Errorf("%w: note count must not be negative", apperrors.ErrInvalidArgument)
		}
		total = total.Add(decimal.NewFromInt(note).Mul(decimal.NewFromInt(count)))
	}
	return total, nil
}
