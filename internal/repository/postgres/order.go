package postgres

import (
	"database/sql"
	"fmt"

	"tiendabot/internal/domain"
)

// OrderRepo implements repository.OrderRepository
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo creates a new order repository
func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create inserts the order and a snapshot of its contents in one
// transaction. The snapshot copies name, quantity and price, so later
// cart or catalog changes cannot alter what was ordered.
func (r *OrderRepo) Create(userID int64, address, country, paymentMethod string, lines []domain.CartLine) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin order tx: %w", err)
	}
	defer tx.Rollback()

	var orderID int64
	insertOrder := `
		INSERT INTO pedidos (user_id, direccion, pais, forma_pago, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if err := tx.QueryRow(insertOrder, userID, address, country, paymentMethod, domain.StatusPending).Scan(&orderID); err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	insertLine := `
		INSERT INTO order_contents (order_id, product_id, nombre, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, line := range lines {
		if _, err := tx.Exec(insertLine, orderID, line.ProductID, line.Name, line.Quantity, line.UnitPrice); err != nil {
			return 0, fmt.Errorf("insert order line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit order tx: %w", err)
	}
	return orderID, nil
}

// Get returns one order or nil when it does not exist
func (r *OrderRepo) Get(orderID int64) (*domain.Order, error) {
	query := `
		SELECT id, user_id, direccion, pais, forma_pago, estado, fecha
		FROM pedidos WHERE id = $1
	`

	var o domain.Order
	err := r.db.QueryRow(query, orderID).Scan(&o.ID, &o.UserID, &o.Address, &o.Country, &o.PaymentMethod, &o.Status, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListByUser returns all orders placed by one user
func (r *OrderRepo) ListByUser(userID int64) ([]domain.Order, error) {
	query := `
		SELECT id, user_id, direccion, pais, forma_pago, estado, fecha
		FROM pedidos WHERE user_id = $1 ORDER BY fecha DESC
	`
	return r.queryOrders(query, userID)
}

// ListByStatus returns all orders in one lifecycle state
func (r *OrderRepo) ListByStatus(status domain.OrderStatus) ([]domain.Order, error) {
	query := `
		SELECT id, user_id, direccion, pais, forma_pago, estado, fecha
		FROM pedidos WHERE estado = $1 ORDER BY fecha DESC
	`
	return r.queryOrders(query, status)
}

func (r *OrderRepo) queryOrders(query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Address, &o.Country, &o.PaymentMethod, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// UpdateStatus moves an order to a new lifecycle state
func (r *OrderRepo) UpdateStatus(orderID int64, status domain.OrderStatus) error {
	query := `UPDATE pedidos SET estado = $1 WHERE id = $2`
	_, err := r.db.Exec(query, status, orderID)
	return err
}

// Delete removes an order and its snapshot
func (r *OrderRepo) Delete(orderID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM order_contents WHERE order_id = $1`, orderID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM pedidos WHERE id = $1`, orderID); err != nil {
		return err
	}
	return tx.Commit()
}

// Lines returns the snapshot contents of an order
func (r *OrderRepo) Lines(orderID int64) ([]domain.OrderLine, error) {
	query := `
		SELECT nombre, quantity, price
		FROM order_contents WHERE order_id = $1 ORDER BY id
	`

	rows, err := r.db.Query(query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.ProductName, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}
