package service

import (
	"fmt"

	"tiendabot/internal/domain"
	"tiendabot/internal/repository"

	"go.uber.org/zap"
)

// OrderDetails bundles an order with its snapshot contents and, for admin
// review, the customer's verification data when available
type OrderDetails struct {
	Order     domain.Order
	Lines     []domain.OrderLine
	Instagram string
	PhotoID   string
}

// OrderService handles checkout, order review and identity verification
type OrderService struct {
	orderRepo        repository.OrderRepository
	cartRepo         repository.CartRepository
	userRepo         repository.UserRepository
	verificationRepo repository.VerificationRepository
	logger           *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	userRepo repository.UserRepository,
	verificationRepo repository.VerificationRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:        orderRepo,
		cartRepo:         cartRepo,
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		logger:           logger,
	}
}

// Checkout snapshots the current cart into a pending order. The snapshot
// is taken before returning, so emptying the cart afterwards leaves the
// order contents untouched. Also reports whether the buyer is verified.
func (s *OrderService) Checkout(userID int64, address, country, paymentMethod string) (int64, bool, error) {
	lines, err := s.cartRepo.Lines(userID)
	if err != nil {
		return 0, false, fmt.Errorf("read cart: %w", err)
	}
	if len(lines) == 0 {
		return 0, false, ErrEmptyCart
	}

	orderID, err := s.orderRepo.Create(userID, address, country, paymentMethod, lines)
	if err != nil {
		return 0, false, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("Order created",
		zap.Int64("order_id", orderID),
		zap.Int64("user_id", userID),
		zap.Int("lines", len(lines)),
	)

	user, err := s.userRepo.Get(userID)
	if err != nil {
		return orderID, false, err
	}
	return orderID, user != nil && user.IsVerified, nil
}

// Get returns one order or nil when it does not exist
func (s *OrderService) Get(orderID int64) (*domain.Order, error) {
	return s.orderRepo.Get(orderID)
}

// UserOrders returns the user's orders with their snapshot contents
func (s *OrderService) UserOrders(userID int64) ([]OrderDetails, error) {
	orders, err := s.orderRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return s.withLines(orders, false)
}

// OrdersByStatus returns all orders in one state for admin review,
// including the customers' verification data
func (s *OrderService) OrdersByStatus(status domain.OrderStatus) ([]OrderDetails, error) {
	orders, err := s.orderRepo.ListByStatus(status)
	if err != nil {
		return nil, err
	}
	return s.withLines(orders, true)
}

func (s *OrderService) withLines(orders []domain.Order, withVerification bool) ([]OrderDetails, error) {
	details := make([]OrderDetails, 0, len(orders))
	for _, order := range orders {
		lines, err := s.orderRepo.Lines(order.ID)
		if err != nil {
			return nil, err
		}
		d := OrderDetails{Order: order, Lines: lines}

		if withVerification {
			verification, err := s.verificationRepo.GetByUser(order.UserID)
			if err != nil {
				return nil, err
			}
			if verification != nil {
				d.Instagram = verification.Instagram
				d.PhotoID = verification.PhotoID
			}
		}
		details = append(details, d)
	}
	return details, nil
}

// Accept moves an order to accepted and returns it so the caller can
// notify the buyer
func (s *OrderService) Accept(orderID int64) (*domain.Order, error) {
	return s.transition(orderID, domain.StatusAccepted)
}

// Reject moves an order to rejected and returns it so the caller can
// notify the buyer
func (s *OrderService) Reject(orderID int64) (*domain.Order, error) {
	return s.transition(orderID, domain.StatusRejected)
}

// Cancel moves an accepted order back out of fulfilment
func (s *OrderService) Cancel(orderID int64) error {
	return s.orderRepo.UpdateStatus(orderID, domain.StatusRejected)
}

func (s *OrderService) transition(orderID int64, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orderRepo.Get(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}
	if err := s.orderRepo.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// Delete removes a rejected order and its snapshot for good
func (s *OrderService) Delete(orderID int64) error {
	return s.orderRepo.Delete(orderID)
}

// Verify stores the submitted identity data and flags the user verified
func (s *OrderService) Verify(userID int64, instagram, photoID string) error {
	if instagram == "" {
		return fmt.Errorf("%w: instagram username cannot be empty", ErrValidation)
	}
	if photoID == "" {
		return fmt.Errorf("%w: verification photo is required", ErrValidation)
	}

	if err := s.verificationRepo.Create(userID, instagram, photoID); err != nil {
		return fmt.Errorf("save verification: %w", err)
	}
	return s.userRepo.SetVerified(userID)
}
