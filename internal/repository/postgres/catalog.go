package postgres

import (
	"database/sql"

	"tiendabot/internal/domain"
)

// CategoryRepo implements repository.CategoryRepository
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo creates a new category repository
func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// List returns all categories
func (r *CategoryRepo) List() ([]domain.Category, error) {
	query := `SELECT id, name, icon, created_by FROM categories ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.CreatedBy); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// Get returns a category or nil if it does not exist
func (r *CategoryRepo) Get(id int64) (*domain.Category, error) {
	var c domain.Category
	query := `SELECT id, name, icon, created_by FROM categories WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&c.ID, &c.Name, &c.Icon, &c.CreatedBy)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Create inserts a category and returns its id
func (r *CategoryRepo) Create(name, icon string, createdBy int64) (int64, error) {
	var id int64
	query := `
		INSERT INTO categories (name, icon, created_by)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(query, name, icon, createdBy).Scan(&id)
	return id, err
}

// Update replaces a category's name and icon
func (r *CategoryRepo) Update(id int64, name, icon string) error {
	query := `UPDATE categories SET name = $1, icon = $2 WHERE id = $3`
	_, err := r.db.Exec(query, name, icon, id)
	return err
}

// Delete removes a category
func (r *CategoryRepo) Delete(id int64) error {
	query := `DELETE FROM categories WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}
