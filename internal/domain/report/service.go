package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"collection-portal/internal/domain/customer"
	"collection-portal/internal/domain/payment"
	"collection-portal/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

const recentPaymentsLimit = 10

// RecentPayment is a dashboard feed line: a payment joined with the
// customer's display name.
type RecentPayment struct {
	PaymentID    int64
	CustomerID   int64
	CustomerName string
	AmountPaid   decimal.Decimal
	PayDate      time.Time
}

// DashboardReport holds the fixed-window aggregates for the admin landing
// page. Each window is computed independently against the same range-sum
// primitive.
type DashboardReport struct {
	TotalCustomers  int64
	TotalToday      decimal.Decimal
	TotalLast30Days decimal.Decimal
	RecentPayments  []RecentPayment
	GeneratedAt     time.Time
}

type ReportService interface {
	// SummarizeRange reports every active customer's progress over
	// [start, end], inclusive on both calendar days.
	SummarizeRange(ctx context.Context, start, end time.Time) ([]SummaryRow, error)

	// Dashboard computes the today and trailing-30-day windows from now,
	// plus the recent payments feed.
	Dashboard(ctx context.Context, now time.Time) (*DashboardReport, error)
}

var _ ReportService = (*reportService)(nil)

type reportService struct {
	customerRepo customer.CustomerRepository
	paymentRepo  payment.PaymentRepository
	logger       *slog.Logger
}

func NewReportService(customerRepo customer.CustomerRepository, paymentRepo payment.PaymentRepository, logger *slog.Logger) ReportService {
	if customerRepo == nil {
		panic("customer repository cannot be nil")
	}
	if paymentRepo == nil {
		panic("payment repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewReportService, using default stderr handler")
	}
	return &reportService{
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
		logger:       logger.With(slog.String("component", "reportService")),
	}
}

func (s *reportService) SummarizeRange(ctx context.Context, start, end time.Time) ([]SummaryRow, error) {
	log := s.logger.With(slog.Time("start", start), slog.Time("end", end))
	log.InfoContext(ctx, "Building range summary")

	if end.Before(start) {
		return nil, fmt.Errorf("%w: range end precedes start", apperrors.ErrInvalidArgument)
	}

	// Widen the bounds to whole calendar days so a payment on the boundary
	// day is always included.
	rangeStart, _ := payment.DayBounds(start)
	_, rangeEnd := payment.DayBounds(end)

	customers, err := s.customerRepo.FindAll(ctx, false)
	if err != nil {
		log.ErrorContext(ctx, "Repository error listing customers for summary", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list customers for summary: %w", err)
	}

	payments, err := s.paymentRepo.FindByDateRange(ctx, rangeStart, rangeEnd)
	if err != nil {
		log.ErrorContext(ctx, "Repository error listing payments for summary", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list payments for summary: %w", err)
	}

	rows := Aggregate(customers, payments, rangeStart, rangeEnd)
	log.InfoContext(ctx, "Successfully built range summary", slog.Int("rows", len(rows)))
	return rows, nil
}

func (s *reportService) Dashboard(ctx context.Context, now time.Time) (*DashboardReport, error) {
	s.logger.InfoContext(ctx, "Building dashboard report")

	totalCustomers, err := s.customerRepo.CountActive(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error counting customers", slog.Any("error", err))
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	startOfToday, endOfToday := payment.DayBounds(now)
	totalToday, err := s.paymentRepo.SumAmountInRange(ctx, startOfToday, endOfToday)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error summing today's payments", slog.Any("error", err))
		return nil, fmt.Errorf("failed to sum today's payments: %w", err)
	}

	totalLast30, err := s.paymentRepo.SumAmountInRange(ctx, now.AddDate(0, 0, -30), now)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error summing trailing 30 days", slog.Any("error", err))
		return nil, fmt.Errorf("failed to sum trailing 30 days: %w", err)
	}

	recent, err := s.paymentRepo.FindRecent(ctx, recentPaymentsLimit)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing recent payments", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list recent payments: %w", err)
	}

	customers, err := s.customerRepo.FindAll(ctx, true)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing customers for name join", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list customers for name join: %w", err)
	}
	nameByID := make(map[int64]string, len(customers))
	for _, c := range customers {
		nameByID[c.CustomerID] = c.FullName()
	}

	feed := make([]RecentPayment, 0, len(recent))
	for _, p := range recent {
		name, ok := nameByID[p.CustomerID]
		if !ok {
			name = "N/A"
		}
		feed = append(feed, RecentPayment{
			PaymentID:    p.PaymentID,
			CustomerID:   p.CustomerID,
			CustomerName: name,
			AmountPaid:   p.AmountPaid,
			PayDate:      p.PayDate,
		})
	}

	s.logger.InfoContext(ctx, "Successfully built dashboard report",
		slog.Int64("totalCustomers", totalCustomers),
		slog.Int("recent", len(feed)))

	return &DashboardReport{
		TotalCustomers:  totalCustomers,
		TotalToday:      totalToday,
		TotalLast30Days: totalLast30,
		RecentPayments:  feed,
		GeneratedAt:     now,
	}, nil
}
