package report_test

import (
	"collection-portal/internal/domain/customer"
	"collection-portal/internal/domain/payment"
	"collection-portal/internal/domain/report"
	"collection-portal/internal/pkg/apperrors"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupReportTest() (*customer.MockCustomerRepository, *payment.MockPaymentRepository, report.ReportService) {
	mockCustomerRepo := new(customer.MockCustomerRepository)
	mockPaymentRepo := new(payment.MockPaymentRepository)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := report.NewReportService(mockCustomerRepo, mockPaymentRepo, logger)
	return mockCustomerRepo, mockPaymentRepo, service
}

func TestReportService_SummarizeRange(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mockCustomerRepo, mockPaymentRepo, service := setupReportTest()
		customers := []*customer.Customer{reportCustomer(1, 2000)}
		payments := []*payment.Payment{
			paidOn(1, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), 1400),
		}

		mockCustomerRepo.On("FindAll", ctx, false).Return(customers, nil).Once()
		// bounds are widened to whole days: start-of-start through end-of-end
		mockPaymentRepo.On("FindByDateRange", ctx,
			time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			mock.MatchedBy(func(ts time.Time) bool {
				return ts.Year() == 2026 && ts.Month() == time.August && ts.Day() == 31 && ts.Hour() == 23
			})).Return(payments, nil).Once()

		rows, err := service.SummarizeRange(ctx, start, end)

		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.True(t, rows[0].TotalPaid.Equal(decimal.NewFromInt(1400)))
		assert.True(t, rows[0].Remaining.Equal(decimal.NewFromInt(600)))
		mockCustomerRepo.AssertExpectations(t)
		mockPaymentRepo.AssertExpectations(t)
	})

	t.Run("Error - End Precedes Start", func(t *testing.T) {
		mockCustomerRepo, _, service := setupReportTest()

		rows, err := service.SummarizeRange(ctx, end, start)

		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
		assert.Nil(t, rows)
		mockCustomerRepo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})

	t.Run("Error - Payment Listing Failure", func(t *testing.T) {
		mockCustomerRepo, mockPaymentRepo, service := setupReportTest()

		mockCustomerRepo.On("FindAll", ctx, false).Return([]*customer.Customer{}, nil).Once()
		mockPaymentRepo.On("FindByDateRange", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return(nil, errors.New("boom")).Once()

		rows, err := service.SummarizeRange(ctx, start, end)

		assert.Error(t, err)
		assert.Nil(t, rows)
	})
}

func TestReportService_Dashboard(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mockCustomerRepo, mockPaymentRepo, service := setupReportTest()

		mockCustomerRepo.On("CountActive", ctx).Return(int64(42), nil).Once()
		mockPaymentRepo.On("SumAmountInRange", ctx,
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			mock.AnythingOfType("time.Time")).Return(decimal.NewFromInt(12000), nil).Once()
		mockPaymentRepo.On("SumAmountInRange", ctx, now.AddDate(0, 0, -30), now).
			Return(decimal.NewFromInt(310000), nil).Once()
		mockPaymentRepo.On("FindRecent", ctx, 10).Return([]*payment.Payment{
			{PaymentID: 10, CustomerID: 1, AmountPaid: decimal.NewFromInt(2000), PayDate: payment.NormalizeDay(now)},
			{PaymentID: 9, CustomerID: 99, AmountPaid: decimal.NewFromInt(500), PayDate: payment.NormalizeDay(now)},
		}, nil).Once()
		mockCustomerRepo.On("FindAll", ctx, true).Return([]*customer.Customer{
			{CustomerID: 1, FirstName: "Asha", LastName: "Nair"},
		}, nil).Once()

		dashboard, err := service.Dashboard(ctx, now)

		assert.NoError(t, err)
		assert.NotNil(t, dashboard)
		if dashboard != nil {
			assert.Equal(t, int64(42), dashboard.TotalCustomers)
			assert.True(t, dashboard.TotalToday.Equal(decimal.NewFromInt(12000)))
			assert.True(t, dashboard.TotalLast30Days.Equal(decimal.NewFromInt(310000)))
			assert.Len(t, dashboard.RecentPayments, 2)
			assert.Equal(t, "Asha Nair", dashboard.RecentPayments[0].CustomerName)
			// payments from customers missing in the join still show up
			assert.Equal(t, "N/A", dashboard.RecentPayments[1].CustomerName)
			assert.Equal(t, now, dashboard.GeneratedAt)
		}
		mockCustomerRepo.AssertExpectations(t)
		mockPaymentRepo.AssertExpectations(t)
	})

	t.Run("Error - Count Failure", func(t *testing.T) {
		mockCustomerRepo, mockPaymentRepo, service := setupReportTest()

		mockCustomerRepo.On("CountActive", ctx).Return(int64(0), errors.New("boom")).Once()

		dashboard, err := service.Dashboard(ctx, now)

		assert.Error(t, err)
		assert.Nil(t, dashboard)
		mockPaymentRepo.AssertNotCalled(t, "SumAmountInRange", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error - Recent Payments Failure", func(t *testing.T) {
		mockCustomerRepo, mockPaymentRepo, service := setupReportTest()

		mockCustomerRepo.On("CountActive", ctx).Return(int64(42), nil).Once()
		mockPaymentRepo.On("SumAmountInRange", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return(decimal.Zero, nil).Twice()
		mockPaymentRepo.On("FindRecent", ctx, 10).Return(nil, errors.New("boom")).Once()

		dashboard, err := service.Dashboard(ctx, now)

		assert.Error(t, err)
		assert.Nil(t, dashboard)
		mockPaymentRepo.AssertExpectations(t)
	})
}
