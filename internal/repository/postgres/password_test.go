package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAdminPasswordRepo_Redeem(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		expected bool
	}{
		{
			name:     "fresh unused password redeems",
			affected: 1,
			expected: true,
		},
		{
			name:     "used or expired password does not",
			affected: 0,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewAdminPasswordRepo(db)

			mock.ExpectExec("UPDATE admin_passwords").
				WithArgs(int64(42), "secret-password", 10).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			ok, err := repo.Redeem("secret-password", 42, 10)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdminPasswordRepo_SaveBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewAdminPasswordRepo(db)

	passwords := []string{"primera-clave-1!", "segunda-clave-2!", "tercera-clave-3!"}

	mock.ExpectBegin()
	for _, password := range passwords {
		mock.ExpectExec("INSERT INTO admin_passwords").
			WithArgs(password, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	assert.NoError(t, repo.SaveBatch(passwords, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
