package postgres

import (
	"database/sql"

	"tiendabot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Get returns a user or nil if the user does not exist
func (r *UserRepo) Get(telegramID int64) (*domain.User, error) {
	var u domain.User
	var language sql.NullString
	query := `
		SELECT telegram_id, language, is_admin, is_owner, is_verified, created_at
		FROM users WHERE telegram_id = $1
	`
	err := r.db.QueryRow(query, telegramID).Scan(
		&u.TelegramID, &language, &u.IsAdmin, &u.IsOwner, &u.IsVerified, &u.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if language.Valid {
		u.Language = language.String
	}
	return &u, nil
}

// Create inserts a user if not exists
func (r *UserRepo) Create(telegramID int64) error {
	query := `
		INSERT INTO users (telegram_id)
		VALUES ($1)
		ON CONFLICT (telegram_id) DO NOTHING
	`
	_, err := r.db.Exec(query, telegramID)
	return err
}

// SetLanguage updates the user's language preference
func (r *UserRepo) SetLanguage(telegramID int64, language string) error {
	query := `UPDATE users SET language = $1 WHERE telegram_id = $2`
	_, err := r.db.Exec(query, language, telegramID)
	return err
}

// OwnerExists reports whether any user holds the owner role
func (r *UserRepo) OwnerExists() (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE is_owner = TRUE)`
	err := r.db.QueryRow(query).Scan(&exists)
	return exists, err
}

// SetOwnerIfVacant promotes the user to owner only when no owner exists.
// The vacancy check and the promotion run in one statement, so two users
// racing for the role cannot both win.
func (r *UserRepo) SetOwnerIfVacant(telegramID int64) (bool, error) {
	query := `
		UPDATE users SET is_owner = TRUE
		WHERE telegram_id = $1
			AND NOT EXISTS (SELECT 1 FROM users WHERE is_owner = TRUE)
	`
	res, err := r.db.Exec(query, telegramID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// SetAdmin grants admin rights to the user
func (r *UserRepo) SetAdmin(telegramID int64) error {
	query := `UPDATE users SET is_admin = TRUE WHERE telegram_id = $1`
	_, err := r.db.Exec(query, telegramID)
	return err
}

// SetVerified marks the user as identity-verified
func (r *UserRepo) SetVerified(telegramID int64) error {
	query := `UPDATE users SET is_verified = TRUE WHERE telegram_id = $1`
	_, err := r.db.Exec(query, telegramID)
	return err
}
