package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCartRepo_Items(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewCartRepo(db)

	columns := []string{"product_id", "nombre", "precio", "cantidad_total", "precio_total"}
	rows := sqlmock.NewRows(columns).
		AddRow(int64(1), "Gorra", 15.0, 3, 45.0).
		AddRow(int64(2), "Sudadera", 40.0, 1, 40.0)

	mock.ExpectQuery("SELECT c.product_id, p.nombre, p.precio").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	items, err := repo.Items(5)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	// repeated adds arrive pre-summed by the query
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 45.0, items[0].LineTotal)
	assert.Equal(t, "Sudadera", items[1].Name)
}

func TestCartRepo_EmptyCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewCartRepo(db)

	columns := []string{"product_id", "nombre", "precio", "cantidad_total", "precio_total"}
	mock.ExpectQuery("SELECT c.product_id, p.nombre, p.precio").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(columns))

	items, err := repo.Items(5)

	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartRepo_Add(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewCartRepo(db)

	mock.ExpectExec("INSERT INTO carrito").
		WithArgs(int64(5), int64(1), 2).
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, repo.Add(5, 1, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
