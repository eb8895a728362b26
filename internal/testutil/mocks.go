package testutil

import (
	"tiendabot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Get(telegramID int64) (*domain.User, error) {
	args := m.Called(telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(telegramID int64) error {
	args := m.Called(telegramID)
	return args.Error(0)
}

func (m *MockUserRepository) SetLanguage(telegramID int64, language string) error {
	args := m.Called(telegramID, language)
	return args.Error(0)
}

func (m *MockUserRepository) OwnerExists() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SetOwnerIfVacant(telegramID int64) (bool, error) {
	args := m.Called(telegramID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SetAdmin(telegramID int64) error {
	args := m.Called(telegramID)
	return args.Error(0)
}

func (m *MockUserRepository) SetVerified(telegramID int64) error {
	args := m.Called(telegramID)
	return args.Error(0)
}

// MockCategoryRepository is a mock for CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List() ([]domain.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Get(id int64) (*domain.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(name, icon string, createdBy int64) (int64, error) {
	args := m.Called(name, icon, createdBy)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) Update(id int64, name, icon string) error {
	args := m.Called(id, name, icon)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockProductRepository is a mock for ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List() ([]domain.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListByCategory(categoryID int64) ([]domain.Product, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) Get(id int64) (*domain.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Create(p domain.Product) (int64, error) {
	args := m.Called(p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Update(p domain.Product) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCartRepository is a mock for CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Add(userID, productID int64, quantity int) error {
	args := m.Called(userID, productID, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) Items(userID int64) ([]domain.CartItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) Lines(userID int64) ([]domain.CartLine, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartLine), args.Error(1)
}

func (m *MockCartRepository) Remove(userID, productID int64) error {
	args := m.Called(userID, productID)
	return args.Error(0)
}

func (m *MockCartRepository) Clear(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockOrderRepository is a mock for OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(userID int64, address, country, paymentMethod string, lines []domain.CartLine) (int64, error) {
	args := m.Called(userID, address, country, paymentMethod, lines)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Get(orderID int64) (*domain.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(userID int64) ([]domain.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByStatus(status domain.OrderStatus) ([]domain.Order, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(orderID int64, status domain.OrderStatus) error {
	args := m.Called(orderID, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(orderID int64) error {
	args := m.Called(orderID)
	return args.Error(0)
}

func (m *MockOrderRepository) Lines(orderID int64) ([]domain.OrderLine, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderLine), args.Error(1)
}

// MockAdminPasswordRepository is a mock for AdminPasswordRepository
type MockAdminPasswordRepository struct {
	mock.Mock
}

func (m *MockAdminPasswordRepository) Save(password string, createdBy int64) error {
	args := m.Called(password, createdBy)
	return args.Error(0)
}

func (m *MockAdminPasswordRepository) SaveBatch(passwords []string, createdBy int64) error {
	args := m.Called(passwords, createdBy)
	return args.Error(0)
}

func (m *MockAdminPasswordRepository) Redeem(password string, usedBy int64, maxAgeMinutes int) (bool, error) {
	args := m.Called(password, usedBy, maxAgeMinutes)
	return args.Bool(0), args.Error(1)
}

// MockVerificationRepository is a mock for VerificationRepository
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Create(userID int64, instagram, photoID string) error {
	args := m.Called(userID, instagram, photoID)
	return args.Error(0)
}

func (m *MockVerificationRepository) GetByUser(userID int64) (*domain.Verification, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Verification), args.Error(1)
}
