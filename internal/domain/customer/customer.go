package customer

import (
	"strings"
	"time"

	"collection-portal/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	// AccountTypeRD is the only scheme the portal currently handles.
	AccountTypeRD AccountType = "RD"
)

// DenominationStep is the granularity of the pledged periodic deposit.
const DenominationStep int64 = 1000

// Customer is a recurring-deposit account holder visited by a collection
// agent. Denomination is the pledged deposit amount per period and is the
// target the aggregation reports measure against. The rollup fields
// (TotalDeposited, MonthsPaidUpTo, LastDepositDate) are recomputed by the
// nightly batch job, never maintained inline on payment writes.
type Customer struct {
	CustomerID         int64
	AccountNumber      string
	FirstName          string
	LastName           string
	NomineeName        string
	Address            string
	MobileNumber       int64
	Denomination       int64
	AccountType        AccountType
	AccountOpeningDate time.Time
	AgentID            int64
	TotalDeposited     decimal.Decimal
	MonthsPaidUpTo     int
	LastDepositDate    *time.Time
	Archived           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Validate checks the fields an agent supplies on the creation form. It is
// called before any store write.
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.AccountNumber) == "" {
		return apperrors.NewValidationError("accountNumber", "account number is required")
	}
	if strings.TrimSpace(c.FirstName) == "" {
		return apperrors.NewValidationError("firstName", "first name is required")
	}
	if strings.TrimSpace(c.NomineeName) == "" {
		return apperrors.NewValidationError("nomineeName", "nominee name is required")
	}
	if strings.TrimSpace(c.Address) == "" {
		return apperrors.NewValidationError("address", "address is required")
	}
	if c.MobileNumber <= 0 {
		return apperrors.NewValidationError("mobileNumber", "mobile number is required")
	}
	if err := ValidateDenomination(c.Denomination); err != nil {
		return err
	}
	if c.AccountType != AccountTypeRD {
		return apperrors.NewValidationError("accountType", "unsupported account type")
	}
	return nil
}

// ValidateDenomination enforces the multiples-of-1000 pledge rule.
func ValidateDenomination(denomination int64) error {
	if denomination <= 0 || denomination%DenominationStep != 0 {
		return apperrors.NewValidationError("denomination", "must be a positive multiple of 1000")
	}
	return nil
}

// UpdateDetails carries the editable detail fields. Nil fields are left
// untouched, matching the store's partial-merge update semantics.
type UpdateDetails struct {
	AccountNumber      *string
	FirstName          *string
	LastName           *string
	NomineeName        *string
	Address            *string
	MobileNumber       *int64
	Denomination       *int64
	AccountOpeningDate *time.Time
}

// Apply merges the populated fields into the customer.
func (u UpdateDetails) Apply(c *Customer) {
	if u.AccountNumber != nil {
		c.AccountNumber = strings.TrimSpace(*u.AccountNumber)
	}
	if u.FirstName != nil {
		c.FirstName = strings.TrimSpace(*u.FirstName)
	}
	if u.LastName != nil {
		c.LastName = strings.TrimSpace(*u.LastName)
	}
	if u.NomineeName != nil {
		c.NomineeName = strings.TrimSpace(*u.NomineeName)
	}
	if u.Address != nil {
		c.Address = strings.TrimSpace(*u.Address)
	}
	if u.MobileNumber != nil {
		c.MobileNumber = *u.MobileNumber
	}
	if u.Denomination != nil {
		c.Denomination = *u.Denomination
	}
	if u.AccountOpeningDate != nil {
		c.AccountOpeningDate = *u.AccountOpeningDate
	}
}
