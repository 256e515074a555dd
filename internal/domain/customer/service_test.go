package customer_test

import (
	"collection-portal/internal/domain/customer"
	"collection-portal/internal/event"
	"collection-portal/internal/pkg/apperrors"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTest() (*customer.MockCustomerRepository, *event.MockEventPublisher, customer.CustomerService) {
	mockRepo := new(customer.MockCustomerRepository)
	mockPub := new(event.MockEventPublisher)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := customer.NewCustomerService(mockRepo, mockPub, logger)
	return mockRepo, mockPub, service
}

func TestCustomerService_CreateCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo, mockPub, service := setupTest()
		expectedCustomerID := int64(1)

		mockRepo.On("FindByAccountNumber", ctx, "RD-0001").Return(nil, customer.ErrNotFound).Once()
		mockRepo.On("Save", ctx, mock.MatchedBy(func(c *customer.Customer) bool {
			match := c.AccountNumber == "RD-0001" && c.Denomination == 2000
			if match {
				c.CustomerID = expectedCustomerID
			}
			return match
		})).Return(nil).Once()
		mockPub.On("PublishCustomerCreated", ctx, mock.AnythingOfType("event.CustomerCreatedEvent")).Return(nil).Once()

		created, err := service.CreateCustomer(ctx, validCustomer())

		assert.NoError(t, err)
		assert.NotNil(t, created)
		if created != nil {
			assert.Equal(t, expectedCustomerID, created.CustomerID)
			assert.Equal(t, customer.AccountTypeRD, created.AccountType)
		}
		mockRepo.AssertExpectations(t)
		mockPub.AssertExpectations(t)
	})

	t.Run("Success - Publish Failure Does Not Fail Creation", func(t *testing.T) {
		mockRepo, mockPub, service := setupTest()

		mockRepo.On("FindByAccountNumber", ctx, "RD-0001").Return(nil, customer.ErrNotFound).Once()
		mockRepo.On("Save", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once()
		mockPub.On("PublishCustomerCreated", ctx, mock.AnythingOfType("event.CustomerCreatedEvent")).
			Return(errors.New("broker unavailable")).Once()

		created, err := service.CreateCustomer(ctx, validCustomer())

		assert.NoError(t, err)
		assert.NotNil(t, created)
		mockRepo.AssertExpectations(t)
		mockPub.AssertExpectations(t)
	})

	t.Run("Error - Nil Customer", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		_, err := service.CreateCustomer(ctx, nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Error - Bad Denomination", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		c := validCustomer()
		c.Denomination = 2500

		_, err := service.CreateCustomer(ctx, c)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Error - Account Number Already In Use", func(t *testing.T) {
		mockRepo, mockPub, service := setupTest()
		existing := validCustomer()
		existing.CustomerID = 99

		mockRepo.On("FindByAccountNumber", ctx, "RD-0001").Return(existing, nil).Once()

		_, err := service.CreateCustomer(ctx, validCustomer())

		assert.ErrorIs(t, err, customer.ErrDuplicateAccountNumber)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		mockPub.AssertNotCalled(t, "PublishCustomerCreated", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Duplicate Slips Past Pre-Check", func(t *testing.T) {
		mockRepo, mockPub, service := setupTest()

		mockRepo.On("FindByAccountNumber", ctx, "RD-0001").Return(nil, customer.ErrNotFound).Once()
		mockRepo.On("Save", ctx, mock.AnythingOfType("*customer.Customer")).
			Return(customer.ErrDuplicateAccountNumber).Once()

		_, err := service.CreateCustomer(ctx, validCustomer())

		assert.ErrorIs(t, err, customer.ErrDuplicateAccountNumber)
		mockPub.AssertNotCalled(t, "PublishCustomerCreated", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Repository Save Failure", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		dbError := errors.New("database connection failed")

		mockRepo.On("FindByAccountNumber", ctx, "RD-0001").Return(nil, customer.ErrNotFound).Once()
		mockRepo.On("Save", ctx, mock.AnythingOfType("*customer.Customer")).Return(dbError).Once()

		created, err := service.CreateCustomer(ctx, validCustomer())

		assert.Error(t, err)
		assert.Nil(t, created)
		assert.ErrorIs(t, err, dbError)
		assert.Contains(t, err.Error(), "failed to save new customer")
		mockRepo.AssertExpectations(t)
	})
}

func TestCustomerService_GetCustomer(t *testing.T) {
	ctx := context.Background()
	customerID := int64(42)

	t.Run("Success", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		expected := validCustomer()
		expected.CustomerID = customerID

		mockRepo.On("FindByID", ctx, customerID).Return(expected, nil).Once()

		cust, err := service.GetCustomer(ctx, customerID)

		assert.NoError(t, err)
		assert.Equal(t, expected, cust)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Not Found", func(t *testing.T) {
		mockRepo, _, service := setupTest()

		mockRepo.On("FindByID", ctx, customerID).Return(nil, customer.ErrNotFound).Once()

		cust, err := service.GetCustomer(ctx, customerID)

		assert.ErrorIs(t, err, customer.ErrNotFound)
		assert.Nil(t, cust)
		mockRepo.AssertExpectations(t)
	})
}

func TestCustomerService_ListCustomers(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		expected := []*customer.Customer{validCustomer()}

		mockRepo.On("FindAll", ctx, false).Return(expected, nil).Once()

		customers, err := service.ListCustomers(ctx, false)

		assert.NoError(t, err)
		assert.Equal(t, expected, customers)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Repository Failure", func(t *testing.T) {
		mockRepo, _, service := setupTest()

		mockRepo.On("FindAll", ctx, true).Return(nil, errors.New("boom")).Once()

		customers, err := service.ListCustomers(ctx, true)

		assert.Error(t, err)
		assert.Nil(t, customers)
		mockRepo.AssertExpectations(t)
	})
}

func TestCustomerService_UpdateCustomerDetails(t *testing.T) {
	ctx := context.Background()
	customerID := int64(1)

	t.Run("Success", func(t *testing.T) {
		mockRepo, mockPub, service := setupTest()
		existing := validCustomer()
		existing.CustomerID = customerID
		newAddress := "22 Market Road"

		mockRepo.On("FindByID", ctx, customerID).Return(existing, nil).Once()
		mockRepo.On("Save", ctx, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.Address == newAddress
		})).Return(nil).Once()
		mockPub.On("PublishCustomerUpdated", ctx, mock.AnythingOfType("event.CustomerUpdatedEvent")).Return(nil).Once()

		updated, err := service.UpdateCustomerDetails(ctx, customerID, customer.UpdateDetails{Address: &newAddress})

		assert.NoError(t, err)
		assert.Equal(t, newAddress, updated.Address)
		mockRepo.AssertExpectations(t)
		mockPub.AssertExpectations(t)
	})

	t.Run("Error - Bad Denomination Checked Before Fetch", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		badDenomination := int64(2500)

		_, err := service.UpdateCustomerDetails(ctx, customerID, customer.UpdateDetails{Denomination: &badDenomination})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Error - Not Found", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		newAddress := "22 Market Road"

		mockRepo.On("FindByID", ctx, customerID).Return(nil, customer.ErrNotFound).Once()

		_, err := service.UpdateCustomerDetails(ctx, customerID, customer.UpdateDetails{Address: &newAddress})

		assert.ErrorIs(t, err, customer.ErrNotFound)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCustomerService_ArchiveCustomer(t *testing.T) {
	ctx := context.Background()
	customerID := int64(1)

	t.Run("Success", func(t *testing.T) {
		mockRepo, mockPub, service := setupTest()
		archived := validCustomer()
		archived.CustomerID = customerID
		archived.Archived = true

		mockRepo.On("SetArchived", ctx, customerID, true).Return(nil).Once()
		mockRepo.On("FindByID", ctx, customerID).Return(archived, nil).Once()
		mockPub.On("PublishCustomerUpdated", ctx, mock.AnythingOfType("event.CustomerUpdatedEvent")).Return(nil).Once()

		err := service.ArchiveCustomer(ctx, customerID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockPub.AssertExpectations(t)
	})

	t.Run("Error - Not Found", func(t *testing.T) {
		mockRepo, _, service := setupTest()

		mockRepo.On("SetArchived", ctx, customerID, true).Return(customer.ErrNotFound).Once()

		err := service.ArchiveCustomer(ctx, customerID)

		assert.ErrorIs(t, err, customer.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Refetch Failure Still Succeeds", func(t *testing.T) {
		mockRepo, mockPub, service := setupTest()

		mockRepo.On("SetArchived", ctx, customerID, true).Return(nil).Once()
		mockRepo.On("FindByID", ctx, customerID).Return(nil, errors.New("boom")).Once()

		err := service.ArchiveCustomer(ctx, customerID)

		assert.NoError(t, err)
		mockPub.AssertNotCalled(t, "PublishCustomerUpdated", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})
}

func TestCustomerService_UnarchiveCustomer(t *testing.T) {
	ctx := context.Background()
	customerID := int64(1)

	t.Run("Success", func(t *testing.T) {
		mockRepo, mockPub, service := setupTest()
		reactivated := validCustomer()
		reactivated.CustomerID = customerID

		mockRepo.On("SetArchived", ctx, customerID, false).Return(nil).Once()
		mockRepo.On("FindByID", ctx, customerID).Return(reactivated, nil).Once()
		mockPub.On("PublishCustomerUpdated", ctx, mock.AnythingOfType("event.CustomerUpdatedEvent")).Return(nil).Once()

		err := service.UnarchiveCustomer(ctx, customerID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockPub.AssertExpectations(t)
	})
}
