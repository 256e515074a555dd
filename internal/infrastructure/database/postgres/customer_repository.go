package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"collection-portal/internal/domain/customer"
	"collection-portal/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const customerColumns = `id, account_number, first_name, last_name, nominee_name, address,
        mobile_number, denomination, account_type, account_opening_date, agent_id,
        total_deposited, months_paid_up_to, last_deposit_date, archived, created_at, updated_at`

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	if cust.CustomerID == 0 {
		return r.createCustomer(ctx, cust)
	}
	return r.updateCustomer(ctx, cust)
}

func (r *CustomerRepository) createCustomer(ctx context.Context, cust *customer.Customer) error {
	r.logger.InfoContext(ctx, "Attempting to insert new customer", slog.String("accountNumber", cust.AccountNumber))

	query := `
        INSERT INTO customers (account_number, first_name, last_name, nominee_name, address,
            mobile_number, denomination, account_type, account_opening_date, agent_id,
            archived, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, FALSE, NOW(), NOW())
        RETURNING id, created_at, updated_at`

	start := time.Now()
	err := r.db.QueryRow(ctx, query,
		cust.AccountNumber,
		cust.FirstName,
		cust.LastName,
		cust.NomineeName,
		cust.Address,
		cust.MobileNumber,
		cust.Denomination,
		string(cust.AccountType),
		cust.AccountOpeningDate,
		cust.AgentID,
	).Scan(
		&cust.CustomerID,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)
	observeQuery("customer_insert", start, err)

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Failed to insert customer due to unique constraint violation", slog.String("accountNumber", cust.AccountNumber))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert customer: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.Int64("customerID", cust.CustomerID))
	return nil
}

func (r *CustomerRepository) updateCustomer(ctx context.Context, cust *customer.Customer) error {
	r.logger.InfoContext(ctx, "Attempting to update customer", slog.Int64("customerID", cust.CustomerID))

	query := `
        UPDATE customers
        SET account_number = $1,
            first_name = $2,
            last_name = $3,
            nominee_name = $4,
            address = $5,
            mobile_number = $6,
            denomination = $7,
            account_opening_date = $8,
            updated_at = NOW()
        WHERE id = $9`

	start := time.Now()
	cmdTag, err := r.db.Exec(ctx, query,
		cust.AccountNumber,
		cust.FirstName,
		cust.LastName,
		cust.NomineeName,
		cust.Address,
		cust.MobileNumber,
		cust.Denomination,
		cust.AccountOpeningDate,
		cust.CustomerID,
	)
	observeQuery("customer_update", start, err)

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Failed to update customer due to unique constraint violation", slog.Any("error", err))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to update customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update customer: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Customer updated successfully")
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	r.logger.InfoContext(ctx, "Attempting to find customer by ID")

	query := `
        SELECT ` + customerColumns + `
        FROM customers
        WHERE id = $1`

	start := time.Now()
	cust, err := r.scanCustomer(r.db.QueryRow(ctx, query, customerID))
	observeQuery("customer_find_by_id", start, err)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found")
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan customer by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer by ID: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer found successfully")
	return cust, nil
}

func (r *CustomerRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*customer.Customer, error) {
	r.logger.InfoContext(ctx, "Attempting to find customer by account number")

	query := `
        SELECT ` + customerColumns + `
        FROM customers
        WHERE account_number = $1`

	start := time.Now()
	cust, err := r.scanCustomer(r.db.QueryRow(ctx, query, accountNumber))
	observeQuery("customer_find_by_account", start, err)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found for the given account number")
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan customer by account number", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer by account number: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer found successfully by account number", slog.Int64("customerID", cust.CustomerID))
	return cust, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context, includeArchived bool) ([]*customer.Customer, error) {
	r.logger.InfoContext(ctx, "Attempting to find all customers")

	query := `
        SELECT ` + customerColumns + `
        FROM customers`
	args := []any{}
	if !includeArchived {
		query += " WHERE archived = $1"
		args = append(args, false)
	}
	query += " ORDER BY id ASC"

	start := time.Now()
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		observeQuery("customer_find_all", start, err)
		r.logger.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query customers: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		cust, err := r.scanCustomer(rows)
		if err != nil {
			observeQuery("customer_find_all", start, err)
			r.logger.ErrorContext(ctx, "Failed to scan customer row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan customer row: %w", apperrors.ErrDatabase, err)
		}
		customers = append(customers, cust)
	}

	if err = rows.Err(); err != nil {
		observeQuery("customer_find_all", start, err)
		r.logger.ErrorContext(ctx, "Error iterating customer rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating customer rows: %w", apperrors.ErrDatabase, err)
	}
	observeQuery("customer_find_all", start, nil)

	r.logger.InfoContext(ctx, "Finished finding customers", slog.Int("count", len(customers)))
	return customers, nil
}

func (r *CustomerRepository) CountActive(ctx context.Context) (int64, error) {
	r.logger.InfoContext(ctx, "Attempting to count active customers")

	query := `SELECT COUNT(*) FROM customers WHERE archived = FALSE`

	var count int64
	start := time.Now()
	err := r.db.QueryRow(ctx, query).Scan(&count)
	observeQuery("customer_count_active", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to count active customers", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to count active customers: %w", apperrors.ErrDatabase, err)
	}

	return count, nil
}

func (r *CustomerRepository) SetArchived(ctx context.Context, customerID int64, archived bool) error {
	r.logger.InfoContext(ctx, "Attempting to set archived flag", slog.Bool("archived", archived))

	query := `UPDATE customers SET archived = $1, updated_at = NOW() WHERE id = $2`

	start := time.Now()
	cmdTag, err := r.db.Exec(ctx, query, archived, customerID)
	observeQuery("customer_set_archived", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute update archived flag", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update archived flag: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update archived affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Customer archived flag updated successfully")
	return nil
}

func (r *CustomerRepository) UpdateDepositRollup(ctx context.Context, customerID int64, totalDeposited decimal.Decimal, lastDeposit *time.Time, monthsPaidUpTo int) error {
	r.logger.InfoContext(ctx, "Attempting to update deposit rollup", slog.Int64("customerID", customerID))

	query := `
        UPDATE customers
        SET total_deposited = $1,
            last_deposit_date = $2,
            months_paid_up_to = $3,
            updated_at = NOW()
        WHERE id = $4`

	start := time.Now()
	cmdTag, err := r.db.Exec(ctx, query, totalDeposited, lastDeposit, monthsPaidUpTo, customerID)
	observeQuery("customer_update_rollup", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute update deposit rollup", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update deposit rollup: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update rollup affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *CustomerRepository) scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var cust customer.Customer
	var accountType string
	err := row.Scan(
		&cust.CustomerID,
		&cust.AccountNumber,
		&cust.FirstName,
		&cust.LastName,
		&cust.NomineeName,
		&cust.Address,
		&cust.MobileNumber,
		&cust.Denomination,
		&accountType,
		&cust.AccountOpeningDate,
		&cust.AgentID,
		&cust.TotalDeposited,
		&cust.MonthsPaidUpTo,
		&cust.LastDepositDate,
		&cust.Archived,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	cust.AccountType = customer.AccountType(accountType)
	return &cust, nil
}
