package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockPaymentRepository struct {
	mock.Mock
}

var _ PaymentRepository = (*MockPaymentRepository)(nil)

func (_m *MockPaymentRepository) UpsertForDay(ctx context.Context, p *Payment) (*Payment, error) {
	ret := _m.Called(ctx, p)

	var r0 *Payment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Payment)
	}
	return r0, ret.Error(1)
}

func (_m *MockPaymentRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*Payment, error) {
	ret := _m.Called(ctx, start, end)

	var r0 []*Payment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Payment)
	}
	return r0, ret.Error(1)
}

func (_m *MockPaymentRepository) FindByCustomer(ctx context.Context, customerID int64) ([]*Payment, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []*Payment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Payment)
	}
	return r0, ret.Error(1)
}

func (_m *MockPaymentRepository) FindRecent(ctx context.Context, limit int) ([]*Payment, error) {
	ret := _m.Called(ctx, limit)

	var r0 []*Payment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Payment)
	}
	return r0, ret.Error(1)
}

func (_m *MockPaymentRepository) SumAmountInRange(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	ret := _m.Called(ctx, start, end)
	return ret.Get(0).(decimal.Decimal), ret.Error(1)
}

func (_m *MockPaymentRepository) SumByCustomer(ctx context.Context) ([]CustomerRollup, error) {
	ret := _m.Called(ctx)

	var r0 []CustomerRollup
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]CustomerRollup)
	}
	return r0, ret.Error(1)
}
