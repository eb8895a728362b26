package postgres

import (
	"database/sql"

	"tiendabot/internal/domain"
)

// VerificationRepo implements repository.VerificationRepository
type VerificationRepo struct {
	db *sql.DB
}

// NewVerificationRepo creates a new verification repository
func NewVerificationRepo(db *sql.DB) *VerificationRepo {
	return &VerificationRepo{db: db}
}

// Create stores the submitted verification data
func (r *VerificationRepo) Create(userID int64, instagram, photoID string) error {
	query := `
		INSERT INTO verificaciones (user_id, instagram_username, foto)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(query, userID, instagram, photoID)
	return err
}

// GetByUser returns a user's verification or nil if none was submitted
func (r *VerificationRepo) GetByUser(userID int64) (*domain.Verification, error) {
	var v domain.Verification
	query := `
		SELECT id, user_id, instagram_username, foto, verification_date
		FROM verificaciones WHERE user_id = $1
	`
	err := r.db.QueryRow(query, userID).Scan(&v.ID, &v.UserID, &v.Instagram, &v.PhotoID, &v.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &v, nil
}
