package event

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockEventPublisher struct {
	mock.Mock
}

var _ EventPublisher = (*MockEventPublisher)(nil)

func (_m *MockEventPublisher) PublishCustomerCreated(ctx context.Context, event CustomerCreatedEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func (_m *MockEventPublisher) PublishCustomerUpdated(ctx context.Context, event CustomerUpdatedEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func (_m *MockEventPublisher) PublishPaymentRecorded(ctx context.Context, event PaymentRecordedEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}
