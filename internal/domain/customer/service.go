package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"collection-portal/internal/event"
	"collection-portal/internal/infrastructure/monitoring"
	"collection-portal/internal/pkg/apperrors"
)

const customerNotFound = "Customer not found by repository"

type CustomerService interface {
	CreateCustomer(ctx context.Context, cust *Customer) (*Customer, error)
	GetCustomer(ctx context.Context, customerID int64) (*Customer, error)
	ListCustomers(ctx context.Context, includeArchived bool) ([]*Customer, error)
	UpdateCustomerDetails(ctx context.Context, customerID int64, details UpdateDetails) (*Customer, error)
	ArchiveCustomer(ctx context.Context, customerID int64) error
	UnarchiveCustomer(ctx context.Context, customerID int64) error
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	pub    event.EventPublisher
	logger *slog.Logger
}

func NewCustomerService(repo CustomerRepository, eventPublisher event.EventPublisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}
	if eventPublisher == nil {
		eventPublisher = &event.NoopPublisher{Logger: logger}
		logger.Warn("Warning: No event publisher provided to NewCustomerService, events will be dropped")
	}

	return &customerService{
		repo:   repo,
		pub:    eventPublisher,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

func newCustomerEventPayload(cust *Customer) event.CustomerEventPayload {
	if cust == nil {
		return event.CustomerEventPayload{}
	}
	return event.CustomerEventPayload{
		CustomerID:    cust.CustomerID,
		AccountNumber: cust.AccountNumber,
		FirstName:     cust.FirstName,
		LastName:      cust.LastName,
		Denomination:  cust.Denomination,
		AgentID:       cust.AgentID,
		Archived:      cust.Archived,
		CreatedAt:     cust.CreatedAt,
		UpdatedAt:     cust.UpdatedAt,
	}
}

func (s *customerService) publishCustomerUpdated(ctx context.Context, cust *Customer) {
	if cust == nil {
		s.logger.ErrorContext(ctx, "Attempted to publish update event for nil customer")
		return
	}
	evt := event.CustomerUpdatedEvent{
		Timestamp: time.Now(),
		Payload:   newCustomerEventPayload(cust),
	}
	if err := s.pub.PublishCustomerUpdated(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish customer update event", slog.Any("error", err))
	} else {
		s.logger.InfoContext(ctx, "Successfully published customer update event", slog.Int64("customerID", cust.CustomerID))
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, cust *Customer) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to create new customer")

	if cust == nil {
		return nil, fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}
	if cust.AccountType == "" {
		cust.AccountType = AccountTypeRD
	}
	if err := cust.Validate(); err != nil {
		s.logger.WarnContext(ctx, "Validation failed for new customer", slog.Any("error", err))
		return nil, err
	}
	if cust.AccountOpeningDate.IsZero() {
		cust.AccountOpeningDate = time.Now()
	}

	log := s.logger.With(slog.String("accountNumber", cust.AccountNumber))
	log.InfoContext(ctx, "Input validation passed")

	// Concurrent creates can still race past this check; the unique
	// index on account_number catches those at Save.
	existing, err := s.repo.FindByAccountNumber(ctx, cust.AccountNumber)
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.ErrorContext(ctx, "Repository error checking account number", slog.Any("error", err))
		return nil, fmt.Errorf("failed to check account number: %w", err)
	}
	if existing != nil {
		log.WarnContext(ctx, "Account number already in use")
		return nil, fmt.Errorf("%w: account number %s", ErrDuplicateAccountNumber, cust.AccountNumber)
	}

	log.InfoContext(ctx, "Calling repository Save")
	if err := s.repo.Save(ctx, cust); err != nil {
		if errors.Is(err, ErrDuplicateAccountNumber) {
			log.WarnContext(ctx, "Account number already in use")
			return nil, err
		}
		log.ErrorContext(ctx, "Repository failed to save new customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new customer: %w", err)
	}
	monitoring.Business.CustomersCreatedTotal.Inc()

	log = log.With(slog.Int64("customerID", cust.CustomerID))
	log.InfoContext(ctx, "Successfully saved new customer, publishing creation event")
	createdEvent := event.CustomerCreatedEvent{
		Timestamp: time.Now(),
		Payload:   newCustomerEventPayload(cust),
	}
	if pubErr := s.pub.PublishCustomerCreated(ctx, createdEvent); pubErr != nil {
		log.ErrorContext(ctx, "Customer created, but FAILED to publish creation event", slog.Any("error", pubErr))
	} else {
		log.InfoContext(ctx, "Successfully published customer creation event")
	}

	log.InfoContext(ctx, "Successfully created new customer")
	return cust, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID int64) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to get customer by ID", slog.Int64("customerID", customerID))

	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, customerNotFound, slog.Int64("customerID", customerID))
			return nil, ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}

	s.logger.InfoContext(ctx, "Successfully retrieved customer")
	return cust, nil
}

func (s *customerService) ListCustomers(ctx context.Context, includeArchived bool) ([]*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to list customers", slog.Bool("includeArchived", includeArchived))

	customers, err := s.repo.FindAll(ctx, includeArchived)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing customers", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	s.logger.InfoContext(ctx, "Successfully retrieved customers", slog.Int("count", len(customers)))
	return customers, nil
}

func (s *customerService) UpdateCustomerDetails(ctx context.Context, customerID int64, details UpdateDetails) (*Customer, error) {
	log := s.logger.With(slog.Int64("customerID", customerID))
	log.InfoContext(ctx, "Attempting to update customer details")

	if details.Denomination != nil {
		if err := ValidateDenomination(*details.Denomination); err != nil {
			log.WarnContext(ctx, "Validation failed: bad denomination", slog.Any("error", err))
			return nil, err
		}
	}

	log.InfoContext(ctx, "Calling repository FindByID to get current customer data")
	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WarnContext(ctx, "Customer not found by repository for update")
			return nil, ErrNotFound
		}
		log.ErrorContext(ctx, "Repository error finding customer for update", slog.Any("error", err))
		return nil, fmt.Errorf("cannot find customer %d to update details: %w", customerID, err)
	}

	details.Apply(cust)
	if err := cust.Validate(); err != nil {
		log.WarnContext(ctx, "Validation failed after applying details", slog.Any("error", err))
		return nil, err
	}

	log.InfoContext(ctx, "Calling repository Save to persist detail changes")
	if err := s.repo.Save(ctx, cust); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.ErrorContext(ctx, "Customer disappeared before save completed")
			return nil, ErrNotFound
		}
		if errors.Is(err, ErrDuplicateAccountNumber) {
			log.WarnContext(ctx, "Account number conflict detected during save")
			return nil, err
		}
		log.ErrorContext(ctx, "Repository failed to save updated details", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save updated details for customer %d: %w", customerID, err)
	}

	log.InfoContext(ctx, "Successfully updated customer details in repository, publishing update event.")
	s.publishCustomerUpdated(ctx, cust)

	return cust, nil
}

func (s *customerService) ArchiveCustomer(ctx context.Context, customerID int64) error {
	return s.setArchived(ctx, customerID, true)
}

func (s *customerService) UnarchiveCustomer(ctx context.Context, customerID int64) error {
	return s.setArchived(ctx, customerID, false)
}

func (s *customerService) setArchived(ctx context.Context, customerID int64, archived bool) error {
	log := s.logger.With(slog.Int64("customerID", customerID), slog.Bool("archived", archived))
	log.InfoContext(ctx, "Attempting to change customer archive flag")

	if err := s.repo.SetArchived(ctx, customerID, archived); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WarnContext(ctx, customerNotFound)
			return ErrNotFound
		}
		log.ErrorContext(ctx, "Repository error changing archive flag", slog.Any("error", err))
		return fmt.Errorf("failed to change archive flag for customer %d: %w", customerID, err)
	}

	updated, fetchErr := s.repo.FindByID(ctx, customerID)
	if fetchErr != nil {
		log.ErrorContext(ctx, "Successfully changed archive flag, but FAILED to re-fetch customer for event publishing", slog.Any("error", fetchErr))
	} else {
		s.publishCustomerUpdated(ctx, updated)
	}

	log.InfoContext(ctx, "Successfully changed customer archive flag")
	return nil
}
