package service

import (
	"fmt"
	"strconv"

	"tiendabot/internal/domain"
	"tiendabot/internal/repository"
)

// CartService handles cart operations
type CartService struct {
	cartRepo repository.CartRepository
}

// NewCartService creates a new cart service
func NewCartService(cartRepo repository.CartRepository) *CartService {
	return &CartService{cartRepo: cartRepo}
}

// ParseQuantity turns a keypad buffer into a positive item count
func ParseQuantity(buffer string) (int, error) {
	quantity, err := strconv.Atoi(buffer)
	if err != nil || quantity <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid quantity", ErrValidation, buffer)
	}
	return quantity, nil
}

// Add puts quantity units of a product into the user's cart
func (s *CartService) Add(userID, productID int64, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	return s.cartRepo.Add(userID, productID, quantity)
}

// Summary returns the aggregated cart with its grand total
func (s *CartService) Summary(userID int64) ([]domain.CartItem, float64, error) {
	items, err := s.cartRepo.Items(userID)
	if err != nil {
		return nil, 0, err
	}
	return items, domain.CartTotal(items), nil
}

// Remove drops one product from the cart entirely
func (s *CartService) Remove(userID, productID int64) error {
	return s.cartRepo.Remove(userID, productID)
}

// Empty clears the whole cart
func (s *CartService) Empty(userID int64) error {
	return s.cartRepo.Clear(userID)
}
