package testutil

import (
	"time"

	"tiendabot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(telegramID int64, language string) *domain.User {
	return &domain.User{
		TelegramID: telegramID,
		Language:   language,
		CreatedAt:  time.Now(),
	}
}

// NewTestProduct creates a test product
func NewTestProduct(id, categoryID int64, name string, price float64) domain.Product {
	return domain.Product{
		ID:         id,
		Name:       name,
		CategoryID: categoryID,
		Price:      price,
		PhotoID:    "photo-file-id",
	}
}

// NewTestCategory creates a test category
func NewTestCategory(id int64, name, icon string) domain.Category {
	return domain.Category{
		ID:   id,
		Name: name,
		Icon: icon,
	}
}

// NewTestOrder creates a test order
func NewTestOrder(id, userID int64, status domain.OrderStatus) domain.Order {
	return domain.Order{
		ID:            id,
		UserID:        userID,
		Address:       "Calle Mayor 1",
		Country:       "Alemania",
		PaymentMethod: "Contra reembolso",
		Status:        status,
		CreatedAt:     time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}
