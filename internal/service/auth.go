package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"unicode"

	"tiendabot/internal/domain"
	"tiendabot/internal/repository"
)

const (
	passwordLength  = 15
	passwordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*()_+"
	setupPasswords  = 3
)

// AuthService handles users, roles and admin credentials
type AuthService struct {
	userRepo     repository.UserRepository
	passwordRepo repository.AdminPasswordRepository
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, passwordRepo repository.AdminPasswordRepository) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		passwordRepo: passwordRepo,
	}
}

// EnsureUser creates the user record if it doesn't exist
func (s *AuthService) EnsureUser(telegramID int64) error {
	return s.userRepo.Create(telegramID)
}

// GetUser returns the user or nil when unknown
func (s *AuthService) GetUser(telegramID int64) (*domain.User, error) {
	return s.userRepo.Get(telegramID)
}

// ChooseLanguage persists the language preference. The first user ever to
// pick a language claims the vacant owner role; the return value reports
// whether that happened for this call.
func (s *AuthService) ChooseLanguage(telegramID int64, language string) (bool, error) {
	if err := s.userRepo.SetLanguage(telegramID, language); err != nil {
		return false, err
	}
	return s.userRepo.SetOwnerIfVacant(telegramID)
}

// IsOwner checks the owner flag
func (s *AuthService) IsOwner(telegramID int64) (bool, error) {
	user, err := s.userRepo.Get(telegramID)
	if err != nil {
		return false, err
	}
	return user != nil && user.IsOwner, nil
}

// IsPrivileged checks for admin or owner rights
func (s *AuthService) IsPrivileged(telegramID int64) (bool, error) {
	user, err := s.userRepo.Get(telegramID)
	if err != nil {
		return false, err
	}
	return user != nil && user.Privileged(), nil
}

// ValidatePassword applies the strength rules for admin passwords:
// at least 10 characters with at least one letter, one digit and one
// symbol each
func ValidatePassword(password string) bool {
	if len([]rune(password)) < 10 {
		return false
	}

	var hasLetter, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasLetter && hasDigit && hasSymbol
}

// GeneratePassword produces a random one-time admin password
func GeneratePassword() (string, error) {
	password := make([]byte, passwordLength)
	max := big.NewInt(int64(len(passwordCharset)))
	for i := range password {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		password[i] = passwordCharset[n.Int64()]
	}
	return string(password), nil
}

// SetupPasswordsNeeded reports how many passwords the owner bootstrap
// still expects given the ones collected so far
func SetupPasswordsNeeded(collected int) int {
	return setupPasswords - collected
}

// SaveSetupPasswords persists the owner's initial password batch
func (s *AuthService) SaveSetupPasswords(ownerID int64, passwords []string) error {
	return s.passwordRepo.SaveBatch(passwords, ownerID)
}

// IssuePassword generates and stores a fresh one-time admin password
func (s *AuthService) IssuePassword(createdBy int64) (string, error) {
	password, err := GeneratePassword()
	if err != nil {
		return "", err
	}
	if err := s.passwordRepo.Save(password, createdBy); err != nil {
		return "", fmt.Errorf("save admin password: %w", err)
	}
	return password, nil
}

// RedeemPassword consumes a one-time password and grants admin rights.
// Returns ErrInvalidPassword when the password is unknown, already used
// or older than its ten-minute validity window.
func (s *AuthService) RedeemPassword(telegramID int64, password string) error {
	maxAge := int(domain.AdminPasswordTTL.Minutes())
	ok, err := s.passwordRepo.Redeem(password, telegramID, maxAge)
	if err != nil {
		return fmt.Errorf("redeem password: %w", err)
	}
	if !ok {
		return ErrInvalidPassword
	}
	return s.userRepo.SetAdmin(telegramID)
}
