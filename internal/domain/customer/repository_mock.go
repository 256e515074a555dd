package customer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

var _ CustomerRepository = (*MockCustomerRepository)(nil)

func (_m *MockCustomerRepository) Save(ctx context.Context, cust *Customer) error {
	ret := _m.Called(ctx, cust)
	return ret.Error(0)
}

func (_m *MockCustomerRepository) FindByID(ctx context.Context, customerID int64) (*Customer, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*Customer, error) {
	ret := _m.Called(ctx, accountNumber)

	var r0 *Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerRepository) FindAll(ctx context.Context, includeArchived bool) ([]*Customer, error) {
	ret := _m.Called(ctx, includeArchived)

	var r0 []*Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerRepository) CountActive(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MockCustomerRepository) SetArchived(ctx context.Context, customerID int64, archived bool) error {
	ret := _m.Called(ctx, customerID, archived)
	return ret.Error(0)
}

func (_m *MockCustomerRepository) UpdateDepositRollup(ctx context.Context, customerID int64, totalDeposited decimal.Decimal, lastDeposit *time.Time, monthsPaidUpTo int) error {
	ret := _m.Called(ctx, customerID, totalDeposited, lastDeposit, monthsPaidUpTo)
	return ret.Error(0)
}
