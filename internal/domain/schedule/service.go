package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"collection-portal/internal/domain/customer"
	"collection-portal/internal/domain/payment"
	"collection-portal/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

// ScheduleRow is one line of the daily collection schedule: a customer in
// visit order, plus the amount already recorded for the selected day when one
// exists.
type ScheduleRow struct {
	Customer   *customer.Customer
	PaymentID  *int64
	AmountPaid *decimal.Decimal
}

type ScheduleService interface {
	// GetDailySchedule returns the agent's merged visit order joined with the
	// selected day's payments.
	GetDailySchedule(ctx context.Context, agentID int64, day time.Time) ([]ScheduleRow, error)

	// SaveVisitOrder overwrites the agent's preferred order wholesale.
	SaveVisitOrder(ctx context.Context, agentID int64, customerIDs []int64) error
}

var _ ScheduleService = (*scheduleService)(nil)

type scheduleService struct {
	orderRepo    VisitOrderRepository
	customerRepo customer.CustomerRepository
	paymentRepo  payment.PaymentRepository
	logger       *slog.Logger
}

func NewScheduleService(orderRepo VisitOrderRepository, customerRepo customer.CustomerRepository, paymentRepo payment.PaymentRepository, logger *slog.Logger) ScheduleService {
	if orderRepo == nil {
		panic("visit order repository cannot be nil")
	}
	if customerRepo == nil {
		panic("customer repository cannot be nil")
	}
	if paymentRepo == nil {
		panic("payment repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewScheduleService, using default stderr handler")
	}
	return &scheduleService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
		logger:       logger.With(slog.String("component", "scheduleService")),
	}
}

func (s *scheduleService) GetDailySchedule(ctx context.Context, agentID int64, day time.Time) ([]ScheduleRow, error) {
	log := s.logger.With(slog.Int64("agentID", agentID), slog.Time("day", day))
	log.InfoContext(ctx, "Building daily collection schedule")

	live, err := s.customerRepo.FindAll(ctx, false)
	if err != nil {
		log.ErrorContext(ctx, "Repository error listing customers for schedule", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list customers for schedule: %w", err)
	}

	var saved []int64
	order, err := s.orderRepo.FindByAgent(ctx, agentID)
	switch {
	case err == nil:
		saved = order.CustomerIDs
	case errors.Is(err, ErrOrderNotFound):
		log.InfoContext(ctx, "No saved visit order for agent, using store order")
	default:
		log.ErrorContext(ctx, "Repository error loading visit order", slog.Any("error", err))
		return nil, fmt.Errorf("failed to load visit order for agent %d: %w", agentID, err)
	}

	merged := MergeOrder(live, saved)

	start, end := payment.DayBounds(day)
	payments, err := s.paymentRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		log.ErrorContext(ctx, "Repository error loading day's payments", slog.Any("error", err))
		return nil, fmt.Errorf("failed to load payments for schedule day: %w", err)
	}

	byCustomer := make(map[int64]*payment.Payment, len(payments))
	for _, p := range payments {
		byCustomer[p.CustomerID] = p
	}

	rows := make([]ScheduleRow, 0, len(merged))
	for _, c := range merged {
		row := ScheduleRow{Customer: c}
		if p, ok := byCustomer[c.CustomerID]; ok {
			id := p.PaymentID
			amount := p.AmountPaid
			row.PaymentID = &id
			row.AmountPaid = &amount
		}
		rows = append(rows, row)
	}

	log.InfoContext(ctx, "Successfully built daily schedule", slog.Int("rows", len(rows)), slog.Int("paid", len(byCustomer)))
	return rows, nil
}

func (s *scheduleService) SaveVisitOrder(ctx context.Context, agentID int64, customerIDs []int64) error {
	log := s.logger.With(slog.Int64("agentID", agentID), slog.Int("count", len(customerIDs)))
	log.InfoContext(ctx, "Attempting to save visit order")

	if agentID <= 0 {
		return fmt.Errorf("%w: agent id must be positive", apperrors.ErrInvalidArgument)
	}
	if len(customerIDs) == 0 {
		return fmt.Errorf("%w: visit order cannot be empty", apperrors.ErrInvalidArgument)
	}

	order := &VisitOrder{
		AgentID:     agentID,
		CustomerIDs: customerIDs,
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		log.ErrorContext(ctx, "Repository failed to save visit order", slog.Any("error", err))
		return fmt.Errorf("failed to save visit order for agent %d: %w", agentID, err)
	}

	log.InfoContext(ctx, "Successfully saved visit order")
	return nil
}
