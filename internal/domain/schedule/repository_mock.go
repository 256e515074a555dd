package schedule

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockVisitOrderRepository struct {
	mock.Mock
}

var _ VisitOrderRepository = (*MockVisitOrderRepository)(nil)

func (_m *MockVisitOrderRepository) FindByAgent(ctx context.Context, agentID int64) (*VisitOrder, error) {
	ret := _m.Called(ctx, agentID)

	var r0 *VisitOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*VisitOrder)
	}
	return r0, ret.Error(1)
}

func (_m *MockVisitOrderRepository) Save(ctx context.Context, order *VisitOrder) error {
	ret := _m.Called(ctx, order)
	return ret.Error(0)
}
