package postgres

import (
	"database/sql"
	"fmt"
)

// AdminPasswordRepo implements repository.AdminPasswordRepository
type AdminPasswordRepo struct {
	db *sql.DB
}

// NewAdminPasswordRepo creates a new admin password repository
func NewAdminPasswordRepo(db *sql.DB) *AdminPasswordRepo {
	return &AdminPasswordRepo{db: db}
}

// Save stores one unused admin password
func (r *AdminPasswordRepo) Save(password string, createdBy int64) error {
	query := `
		INSERT INTO admin_passwords (password, used, created_by_telegram_id)
		VALUES ($1, FALSE, $2)
	`
	_, err := r.db.Exec(query, password, createdBy)
	return err
}

// SaveBatch stores several passwords atomically
func (r *AdminPasswordRepo) SaveBatch(passwords []string, createdBy int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin password tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO admin_passwords (password, used, created_by_telegram_id)
		VALUES ($1, FALSE, $2)
	`
	for _, password := range passwords {
		if _, err := tx.Exec(query, password, createdBy); err != nil {
			return fmt.Errorf("insert password: %w", err)
		}
	}

	return tx.Commit()
}

// Redeem consumes a password if it is unused and younger than
// maxAgeMinutes. Validity check and mark-used run in one statement; a
// second concurrent redemption finds zero matching rows and fails.
func (r *AdminPasswordRepo) Redeem(password string, usedBy int64, maxAgeMinutes int) (bool, error) {
	query := `
		UPDATE admin_passwords
		SET used = TRUE, used_by_telegram_id = $1
		WHERE password = $2
			AND used = FALSE
			AND creation_time >= NOW() - INTERVAL '1 minute' * $3
	`
	res, err := r.db.Exec(query, usedBy, password, maxAgeMinutes)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
