package handler_test

import (
	"bytes"
	"collection-portal/internal/api/handler"
	"collection-portal/internal/api/handler/dto"
	"collection-portal/internal/domain/schedule"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockScheduleService struct {
	mock.Mock
}

func (_m *MockScheduleService) GetDailySchedule(ctx context.Context, agentID int64, day time.Time) ([]schedule.ScheduleRow, error) {
	ret := _m.Called(ctx, agentID, day)

	var r0 []schedule.ScheduleRow
	if rf, ok := ret.Get(0).(func(context.Context, int64, time.Time) []schedule.ScheduleRow); ok {
		r0 = rf(ctx, agentID, day)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]schedule.ScheduleRow)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64, time.Time) error); ok {
		r1 = rf(ctx, agentID, day)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockScheduleService) SaveVisitOrder(ctx context.Context, agentID int64, customerIDs []int64) error {
	ret := _m.Called(ctx, agentID, customerIDs)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, []int64) error); ok {
		r0 = rf(ctx, agentID, customerIDs)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func TestGetDailySchedule(t *testing.T) {
	mockService := new(MockScheduleService)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	handler := handler.NewScheduleHandler(mockService, logger)

	t.Run("success with paid and unpaid rows", func(t *testing.T) {
		paidID := int64(10)
		paidAmount := decimal.NewFromInt(2000)
		rows := []schedule.ScheduleRow{
			{Customer: testCustomer(), PaymentID: &paidID, AmountPaid: &paidAmount},
			{Customer: testCustomer()},
		}
		mockService.On("GetDailySchedule", mock.Anything, int64(7),
			time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)).Return(rows, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/schedule?agentId=7&date=2026-08-30", nil)
		rec := httptest.NewRecorder()

		handler.GetDailySchedule(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []dto.ScheduleRowResponse
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.True(t, resp[0].Paid)
		assert.Equal(t, "10", *resp[0].PaymentID)
		assert.Equal(t, "2000.00", *resp[0].AmountPaid)
		assert.False(t, resp[1].Paid)
		assert.Nil(t, resp[1].PaymentID)
		mockService.AssertExpectations(t)
	})

	t.Run("missing agent ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/schedule", nil)
		rec := httptest.NewRecorder()

		handler.GetDailySchedule(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "GetDailySchedule")
	})

	t.Run("invalid date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/schedule?agentId=7&date=30-08-2026", nil)
		rec := httptest.NewRecorder()

		handler.GetDailySchedule(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSaveVisitOrder(t *testing.T) {
	mockService := new(MockScheduleService)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	handler := handler.NewScheduleHandler(mockService, logger)

	t.Run("success", func(t *testing.T) {
		mockService.On("SaveVisitOrder", mock.Anything, int64(7), []int64{3, 1, 2}).Return(nil).Once()

		body := []byte(`{"customerIds":[3,1,2]}`)
		req := httptest.NewRequest(http.MethodPut, "/schedule/order?agentId=7", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.SaveVisitOrder(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("empty order rejected", func(t *testing.T) {
		body := []byte(`{"customerIds":[]}`)
		req := httptest.NewRequest(http.MethodPut, "/schedule/order?agentId=7", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.SaveVisitOrder(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "SaveVisitOrder")
	})

	t.Run("non-positive customer ID rejected", func(t *testing.T) {
		body := []byte(`{"customerIds":[3,0,2]}`)
		req := httptest.NewRequest(http.MethodPut, "/schedule/order?agentId=7", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.SaveVisitOrder(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
