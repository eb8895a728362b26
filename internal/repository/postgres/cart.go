package postgres

import (
	"database/sql"

	"tiendabot/internal/domain"
)

// CartRepo implements repository.CartRepository
type CartRepo struct {
	db *sql.DB
}

// NewCartRepo creates a new cart repository
func NewCartRepo(db *sql.DB) *CartRepo {
	return &CartRepo{db: db}
}

// Add appends a cart row. Repeated adds of the same product keep their
// own rows; Items aggregates them at read time.
func (r *CartRepo) Add(userID, productID int64, quantity int) error {
	query := `
		INSERT INTO carrito (user_id, product_id, cantidad)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(query, userID, productID, quantity)
	return err
}

// Items returns the cart aggregated per product with line totals
func (r *CartRepo) Items(userID int64) ([]domain.CartItem, error) {
	query := `
		SELECT c.product_id, p.nombre, p.precio,
			SUM(c.cantidad) AS cantidad_total,
			SUM(c.cantidad) * p.precio AS precio_total
		FROM carrito c
		INNER JOIN productos p ON c.product_id = p.id
		WHERE c.user_id = $1
		GROUP BY c.product_id, p.nombre, p.precio
		ORDER BY p.nombre
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.UnitPrice, &item.Quantity, &item.LineTotal); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Lines returns the raw cart rows joined with product data, used to
// snapshot order contents
func (r *CartRepo) Lines(userID int64) ([]domain.CartLine, error) {
	query := `
		SELECT c.product_id, p.nombre, c.cantidad, p.precio
		FROM carrito c
		INNER JOIN productos p ON c.product_id = p.id
		WHERE c.user_id = $1
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ProductID, &line.Name, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

// Remove deletes all cart rows for one product
func (r *CartRepo) Remove(userID, productID int64) error {
	query := `DELETE FROM carrito WHERE user_id = $1 AND product_id = $2`
	_, err := r.db.Exec(query, userID, productID)
	return err
}

// Clear empties the user's cart
func (r *CartRepo) Clear(userID int64) error {
	query := `DELETE FROM carrito WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}
