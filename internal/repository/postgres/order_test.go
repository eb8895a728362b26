package postgres

import (
	"errors"
	"testing"

	"tiendabot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestOrderRepo_Create(t *testing.T) {
	lines := []domain.CartLine{
		{ProductID: 1, Name: "Gorra", Quantity: 2, UnitPrice: 15},
		{ProductID: 2, Name: "Sudadera", Quantity: 1, UnitPrice: 40},
	}

	t.Run("order and snapshot commit together", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewOrderRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO pedidos").
			WithArgs(int64(5), "Calle Mayor 1", "Alemania", "Contra reembolso", domain.StatusPending).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
		mock.ExpectExec("INSERT INTO order_contents").
			WithArgs(int64(11), int64(1), "Gorra", 2, 15.0).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO order_contents").
			WithArgs(int64(11), int64(2), "Sudadera", 1, 40.0).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		orderID, err := repo.Create(5, "Calle Mayor 1", "Alemania", "Contra reembolso", lines)

		assert.NoError(t, err)
		assert.Equal(t, int64(11), orderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed snapshot rolls the order back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewOrderRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO pedidos").
			WithArgs(int64(5), "Calle Mayor 1", "Alemania", "Contra reembolso", domain.StatusPending).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
		mock.ExpectExec("INSERT INTO order_contents").
			WithArgs(int64(11), int64(1), "Gorra", 2, 15.0).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		_, err = repo.Create(5, "Calle Mayor 1", "Alemania", "Contra reembolso", lines)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepo_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM order_contents").
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM pedidos").
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(11))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepo(db)

	mock.ExpectExec("UPDATE pedidos SET estado").
		WithArgs(domain.StatusAccepted, int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateStatus(11, domain.StatusAccepted))
	assert.NoError(t, mock.ExpectationsWereMet())
}
