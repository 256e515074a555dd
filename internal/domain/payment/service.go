package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"collection-portal/internal/domain/customer"
	"collection-portal/internal/event"
	"collection-portal/internal/infrastructure/monitoring"

	"github.com/shopspring/decimal"
)

// LedgerService records daily installments. The at-most-one-payment-per-
// customer-per-day rule is enforced by the repository's keyed upsert, so a
// double submit or two concurrent agents editing the same cell converge on a
// single row carrying the last written amount.
type LedgerService interface {
	RecordPayment(ctx context.Context, customerID int64, day time.Time, amount decimal.Decimal, agentID int64) (*Payment, error)
	GetCustomerPayments(ctx context.Context, customerID int64) ([]*Payment, error)
}

var _ LedgerService = (*ledgerService)(nil)

type ledgerService struct {
	repo         PaymentRepository
	customerRepo customer.CustomerRepository
	pub          event.EventPublisher
	logger       *slog.Logger
}

func NewLedgerService(repo PaymentRepository, customerRepo customer.CustomerRepository, eventPublisher event.EventPublisher, logger *slog.Logger) LedgerService {
	if repo == nil {
		panic("payment repository cannot be nil")
	}
	if customerRepo == nil {
		panic("customer repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewLedgerService, using default stderr handler")
	}
	if eventPublisher == nil {
		eventPublisher = &event.NoopPublisher{Logger: logger}
		logger.Warn("Warning: No event publisher provided to NewLedgerService, events will be dropped")
	}
	return &ledgerService{
		repo:         repo,
		customerRepo: customerRepo,
		pub:          eventPublisher,
		logger:       logger.With(slog.String("component", "ledgerService")),
	}
}

func (s *ledgerService) RecordPayment(ctx context.Context, customerID int64, day time.Time, amount decimal.Decimal, agentID int64) (*Payment, error) {
	log := s.logger.With(slog.Int64("customerID", customerID), slog.String("amount", amount.String()))
	log.InfoContext(ctx, "Attempting to record daily payment")

	if err := ValidateAmount(amount); err != nil {
		log.WarnContext(ctx, "Validation failed: bad payment amount", slog.Any("error", err))
		return nil, err
	}

	cust, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			log.WarnContext(ctx, "Customer not found by repository")
			return nil, customer.ErrNotFound
		}
		log.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to verify customer %d: %w", customerID, err)
	}
	log = log.With(slog.String("accountNumber", cust.AccountNumber))

	if cust.Archived {
		log.WarnContext(ctx, "Rejecting payment for archived customer")
		return nil, fmt.Errorf("%w: customer %d", customer.ErrArchived, customerID)
	}

	p := &Payment{
		CustomerID: customerID,
		AmountPaid: amount,
		PayDate:    NormalizeDay(day),
		AgentID:    agentID,
	}

	log.InfoContext(ctx, "Calling repository UpsertForDay", slog.Time("payDate", p.PayDate))
	saved, err := s.repo.UpsertForDay(ctx, p)
	if err != nil {
		log.ErrorContext(ctx, "Repository failed to upsert payment", slog.Any("error", err))
		return nil, fmt.Errorf("failed to record payment for customer %d: %w", customerID, err)
	}

	monitoring.Business.PaymentsRecordedTotal.Inc()
	amountFloat, _ := saved.AmountPaid.Float64()
	monitoring.Business.PaymentAmountCollected.Add(amountFloat)

	evt := event.PaymentRecordedEvent{
		PaymentID:  saved.PaymentID,
		CustomerID: saved.CustomerID,
		AmountPaid: saved.AmountPaid,
		PayDate:    saved.PayDate,
		AgentID:    saved.AgentID,
		Timestamp:  time.Now(),
	}
	if pubErr := s.pub.PublishPaymentRecorded(ctx, evt); pubErr != nil {
		log.ErrorContext(ctx, "Payment recorded, but FAILED to publish event", slog.Any("error", pubErr))
	}

	log.InfoContext(ctx, "Successfully recorded daily payment", slog.Int64("paymentID", saved.PaymentID))
	return saved, nil
}

func (s *ledgerService) GetCustomerPayments(ctx context.Context, customerID int64) ([]*Payment, error) {
	s.logger.InfoContext(ctx, "Attempting to list customer payments", slog.Int64("customerID", customerID))

	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			s.logger.WarnContext(ctx, "Customer not found by repository", slog.Int64("customerID", customerID))
			return nil, customer.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to verify customer %d: %w", customerID, err)
	}

	payments, err := s.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing customer payments", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list payments for customer %d: %w", customerID, err)
	}

	s.logger.InfoContext(ctx, "Successfully listed customer payments", slog.Int("count", len(payments)))
	return payments, nil
}
