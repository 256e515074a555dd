package customer

import (
	"context"
	"time"

	"collection-portal/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound               = apperrors.ErrNotFound
	ErrDuplicateAccountNumber = apperrors.ErrAlreadyExists
	ErrArchived               = apperrors.ErrCustomerArchived
)

type CustomerRepository interface {
	// Save inserts when CustomerID is zero, otherwise updates in place.
	Save(ctx context.Context, cust *Customer) error

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	FindByAccountNumber(ctx context.Context, accountNumber string) (*Customer, error)

	// FindAll returns customers in store order. Archived customers are
	// excluded unless includeArchived is set.
	FindAll(ctx context.Context, includeArchived bool) ([]*Customer, error)

	CountActive(ctx context.Context) (int64, error)

	SetArchived(ctx context.Context, customerID int64, archived bool) error

	// UpdateDepositRollup overwrites the derived bookkeeping fields for one
	// customer. Used by the nightly rollup job only.
	UpdateDepositRollup(ctx context.Context, customerID int64, totalDeposited decimal.Decimal, lastDeposit *time.Time, monthsPaidUpTo int) error
}
