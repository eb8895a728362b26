package repository

import (
	"tiendabot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	Get(telegramID int64) (*domain.User, error)
	Create(telegramID int64) error
	SetLanguage(telegramID int64, language string) error
	OwnerExists() (bool, error)
	// SetOwnerIfVacant promotes the user to owner only when no owner
	// exists yet; first writer wins. Returns whether it promoted.
	SetOwnerIfVacant(telegramID int64) (bool, error)
	SetAdmin(telegramID int64) error
	SetVerified(telegramID int64) error
}

// CategoryRepository defines catalog category operations
type CategoryRepository interface {
	List() ([]domain.Category, error)
	Get(id int64) (*domain.Category, error)
	Create(name, icon string, createdBy int64) (int64, error)
	Update(id int64, name, icon string) error
	Delete(id int64) error
}

// ProductRepository defines product operations
type ProductRepository interface {
	List() ([]domain.Product, error)
	ListByCategory(categoryID int64) ([]domain.Product, error)
	Get(id int64) (*domain.Product, error)
	Create(p domain.Product) (int64, error)
	Update(p domain.Product) error
	Delete(id int64) error
}

// CartRepository defines cart line operations. Adds are additive rows;
// Items aggregates them per product.
type CartRepository interface {
	Add(userID, productID int64, quantity int) error
	Items(userID int64) ([]domain.CartItem, error)
	Lines(userID int64) ([]domain.CartLine, error)
	Remove(userID, productID int64) error
	Clear(userID int64) error
}

// OrderRepository defines order operations. Create snapshots the given
// cart lines into order contents inside a single transaction.
type OrderRepository interface {
	Create(userID int64, address, country, paymentMethod string, lines []domain.CartLine) (int64, error)
	Get(orderID int64) (*domain.Order, error)
	ListByUser(userID int64) ([]domain.Order, error)
	ListByStatus(status domain.OrderStatus) ([]domain.Order, error)
	UpdateStatus(orderID int64, status domain.OrderStatus) error
	Delete(orderID int64) error
	Lines(orderID int64) ([]domain.OrderLine, error)
}

// AdminPasswordRepository defines one-time admin credential operations
type AdminPasswordRepository interface {
	Save(password string, createdBy int64) error
	SaveBatch(passwords []string, createdBy int64) error
	// Redeem marks a password used and returns whether it was still
	// valid. The check and the mark happen in one statement so two
	// concurrent redemptions can never both succeed.
	Redeem(password string, usedBy int64, maxAgeMinutes int) (bool, error)
}

// VerificationRepository defines identity verification operations
type VerificationRepository interface {
	Create(userID int64, instagram, photoID string) error
	GetByUser(userID int64) (*domain.Verification, error)
}
