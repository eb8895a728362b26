package service

import (
	"testing"

	"tiendabot/internal/domain"
	"tiendabot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestOrderService_Checkout(t *testing.T) {
	lines := []domain.CartLine{
		{ProductID: 1, Name: "Gorra", Quantity: 2, UnitPrice: 15},
		{ProductID: 2, Name: "Sudadera", Quantity: 1, UnitPrice: 40},
	}

	t.Run("snapshots cart into a pending order", func(t *testing.T) {
		mockOrders := new(testutil.MockOrderRepository)
		mockCart := new(testutil.MockCartRepository)
		mockUsers := new(testutil.MockUserRepository)

		mockCart.On("Lines", int64(5)).Return(lines, nil)
		mockOrders.On("Create", int64(5), "Calle Mayor 1", "Alemania", "Contra reembolso", lines).Return(int64(11), nil)
		mockUsers.On("Get", int64(5)).Return(&domain.User{TelegramID: 5, IsVerified: true}, nil)

		service := NewOrderService(mockOrders, mockCart, mockUsers,
			new(testutil.MockVerificationRepository), testutil.NewTestLogger())

		orderID, verified, err := service.Checkout(5, "Calle Mayor 1", "Alemania", "Contra reembolso")

		assert.NoError(t, err)
		assert.Equal(t, int64(11), orderID)
		assert.True(t, verified)
		mockOrders.AssertExpectations(t)
	})

	t.Run("empty cart cannot check out", func(t *testing.T) {
		mockOrders := new(testutil.MockOrderRepository)
		mockCart := new(testutil.MockCartRepository)

		mockCart.On("Lines", int64(5)).Return([]domain.CartLine{}, nil)

		service := NewOrderService(mockOrders, mockCart, new(testutil.MockUserRepository),
			new(testutil.MockVerificationRepository), testutil.NewTestLogger())

		_, _, err := service.Checkout(5, "Calle Mayor 1", "Alemania", "Contra reembolso")

		assert.ErrorIs(t, err, ErrEmptyCart)
		mockOrders.AssertNotCalled(t, "Create", int64(5), "Calle Mayor 1", "Alemania", "Contra reembolso", []domain.CartLine{})
	})

	t.Run("unverified buyer is reported", func(t *testing.T) {
		mockOrders := new(testutil.MockOrderRepository)
		mockCart := new(testutil.MockCartRepository)
		mockUsers := new(testutil.MockUserRepository)

		mockCart.On("Lines", int64(5)).Return(lines, nil)
		mockOrders.On("Create", int64(5), "Calle Mayor 1", "EUROPA", "CryptoWallet", lines).Return(int64(12), nil)
		mockUsers.On("Get", int64(5)).Return(&domain.User{TelegramID: 5}, nil)

		service := NewOrderService(mockOrders, mockCart, mockUsers,
			new(testutil.MockVerificationRepository), testutil.NewTestLogger())

		orderID, verified, err := service.Checkout(5, "Calle Mayor 1", "EUROPA", "CryptoWallet")

		assert.NoError(t, err)
		assert.Equal(t, int64(12), orderID)
		assert.False(t, verified)
	})
}

func TestOrderService_Accept(t *testing.T) {
	t.Run("accepts and returns the order", func(t *testing.T) {
		order := testutil.NewTestOrder(11, 5, domain.StatusPending)

		mockOrders := new(testutil.MockOrderRepository)
		mockOrders.On("Get", int64(11)).Return(&order, nil)
		mockOrders.On("UpdateStatus", int64(11), domain.StatusAccepted).Return(nil)

		service := NewOrderService(mockOrders, new(testutil.MockCartRepository),
			new(testutil.MockUserRepository), new(testutil.MockVerificationRepository),
			testutil.NewTestLogger())

		got, err := service.Accept(11)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, got.Status)
		assert.Equal(t, int64(5), got.UserID)
		mockOrders.AssertExpectations(t)
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		mockOrders := new(testutil.MockOrderRepository)
		mockOrders.On("Get", int64(99)).Return(nil, nil)

		service := NewOrderService(mockOrders, new(testutil.MockCartRepository),
			new(testutil.MockUserRepository), new(testutil.MockVerificationRepository),
			testutil.NewTestLogger())

		_, err := service.Accept(99)

		assert.ErrorIs(t, err, ErrNotFound)
		mockOrders.AssertNotCalled(t, "UpdateStatus", int64(99), domain.StatusAccepted)
	})
}

func TestOrderService_OrdersByStatus(t *testing.T) {
	orders := []domain.Order{testutil.NewTestOrder(11, 5, domain.StatusPending)}
	lines := []domain.OrderLine{{ProductName: "Gorra", Quantity: 2, UnitPrice: 15}}
	verification := &domain.Verification{UserID: 5, Instagram: "comprador", PhotoID: "selfie-id"}

	mockOrders := new(testutil.MockOrderRepository)
	mockVerifications := new(testutil.MockVerificationRepository)

	mockOrders.On("ListByStatus", domain.StatusPending).Return(orders, nil)
	mockOrders.On("Lines", int64(11)).Return(lines, nil)
	mockVerifications.On("GetByUser", int64(5)).Return(verification, nil)

	service := NewOrderService(mockOrders, new(testutil.MockCartRepository),
		new(testutil.MockUserRepository), mockVerifications, testutil.NewTestLogger())

	details, err := service.OrdersByStatus(domain.StatusPending)

	assert.NoError(t, err)
	assert.Len(t, details, 1)
	assert.Equal(t, lines, details[0].Lines)
	assert.Equal(t, "comprador", details[0].Instagram)
	assert.Equal(t, "selfie-id", details[0].PhotoID)
}

func TestOrderService_Verify(t *testing.T) {
	t.Run("stores verification and flags the user", func(t *testing.T) {
		mockUsers := new(testutil.MockUserRepository)
		mockVerifications := new(testutil.MockVerificationRepository)

		mockVerifications.On("Create", int64(5), "comprador", "selfie-id").Return(nil)
		mockUsers.On("SetVerified", int64(5)).Return(nil)

		service := NewOrderService(new(testutil.MockOrderRepository),
			new(testutil.MockCartRepository), mockUsers, mockVerifications,
			testutil.NewTestLogger())

		err := service.Verify(5, "comprador", "selfie-id")

		assert.NoError(t, err)
		mockUsers.AssertExpectations(t)
		mockVerifications.AssertExpectations(t)
	})

	t.Run("rejects empty instagram", func(t *testing.T) {
		service := NewOrderService(new(testutil.MockOrderRepository),
			new(testutil.MockCartRepository), new(testutil.MockUserRepository),
			new(testutil.MockVerificationRepository), testutil.NewTestLogger())

		err := service.Verify(5, "", "selfie-id")

		assert.ErrorIs(t, err, ErrValidation)
	})
}
