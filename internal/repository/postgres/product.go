package postgres

import (
	"database/sql"

	"tiendabot/internal/domain"
)

// ProductRepo implements repository.ProductRepository
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepo creates a new product repository
func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// List returns all products
func (r *ProductRepo) List() ([]domain.Product, error) {
	query := `SELECT id, nombre, categoria, precio, foto FROM productos ORDER BY id`
	return r.queryProducts(query)
}

// ListByCategory returns the products of one category
func (r *ProductRepo) ListByCategory(categoryID int64) ([]domain.Product, error) {
	query := `SELECT id, nombre, categoria, precio, foto FROM productos WHERE categoria = $1 ORDER BY id`
	return r.queryProducts(query, categoryID)
}

func (r *ProductRepo) queryProducts(query string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.CategoryID, &p.Price, &p.PhotoID); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// Get returns a product or nil if it does not exist
func (r *ProductRepo) Get(id int64) (*domain.Product, error) {
	var p domain.Product
	query := `SELECT id, nombre, categoria, precio, foto FROM productos WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&p.ID, &p.Name, &p.CategoryID, &p.Price, &p.PhotoID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// Create inserts a product and returns its id
func (r *ProductRepo) Create(p domain.Product) (int64, error) {
	var id int64
	query := `
		INSERT INTO productos (nombre, categoria, precio, foto)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(query, p.Name, p.CategoryID, p.Price, p.PhotoID).Scan(&id)
	return id, err
}

// Update replaces a product's fields
func (r *ProductRepo) Update(p domain.Product) error {
	query := `
		UPDATE productos SET nombre = $1, categoria = $2, precio = $3, foto = $4
		WHERE id = $5
	`
	_, err := r.db.Exec(query, p.Name, p.CategoryID, p.Price, p.PhotoID, p.ID)
	return err
}

// Delete removes a product
func (r *ProductRepo) Delete(id int64) error {
	query := `DELETE FROM productos WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}
