package service

import (
	"errors"
	"testing"

	"tiendabot/internal/domain"
	"tiendabot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected bool
	}{
		{
			name:     "valid password",
			password: "abcdefgh1!",
			expected: true,
		},
		{
			name:     "too short",
			password: "abc1!",
			expected: false,
		},
		{
			name:     "no digit",
			password: "abcdefghij!",
			expected: false,
		},
		{
			name:     "no symbol",
			password: "abcdefghij1",
			expected: false,
		},
		{
			name:     "no letter",
			password: "1234567890!",
			expected: false,
		},
		{
			name:     "long mixed password",
			password: "Sup3r-Secreta#2024",
			expected: true,
		},
		{
			name:     "empty",
			password: "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidatePassword(tt.password))
		})
	}
}

func TestGeneratePassword(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		password, err := GeneratePassword()

		assert.NoError(t, err)
		assert.Len(t, password, passwordLength)
		assert.False(t, seen[password], "generated passwords must not repeat")
		seen[password] = true
	}
}

func TestAuthService_ChooseLanguage(t *testing.T) {
	tests := []struct {
		name          string
		promoted      bool
		expectedOwner bool
	}{
		{
			name:          "first user claims owner",
			promoted:      true,
			expectedOwner: true,
		},
		{
			name:          "owner already taken",
			promoted:      false,
			expectedOwner: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(testutil.MockUserRepository)
			mockUsers.On("SetLanguage", int64(123), "ES").Return(nil)
			mockUsers.On("SetOwnerIfVacant", int64(123)).Return(tt.promoted, nil)

			service := NewAuthService(mockUsers, new(testutil.MockAdminPasswordRepository))

			becameOwner, err := service.ChooseLanguage(123, "ES")

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOwner, becameOwner)
			mockUsers.AssertExpectations(t)
		})
	}
}

func TestAuthService_RedeemPassword(t *testing.T) {
	maxAge := int(domain.AdminPasswordTTL.Minutes())

	t.Run("valid password grants admin", func(t *testing.T) {
		mockUsers := new(testutil.MockUserRepository)
		mockPasswords := new(testutil.MockAdminPasswordRepository)
		mockPasswords.On("Redeem", "abcdefgh1!", int64(42), maxAge).Return(true, nil)
		mockUsers.On("SetAdmin", int64(42)).Return(nil)

		service := NewAuthService(mockUsers, mockPasswords)

		err := service.RedeemPassword(42, "abcdefgh1!")

		assert.NoError(t, err)
		mockUsers.AssertExpectations(t)
		mockPasswords.AssertExpectations(t)
	})

	t.Run("used or expired password is rejected", func(t *testing.T) {
		mockUsers := new(testutil.MockUserRepository)
		mockPasswords := new(testutil.MockAdminPasswordRepository)
		mockPasswords.On("Redeem", "stale", int64(42), maxAge).Return(false, nil)

		service := NewAuthService(mockUsers, mockPasswords)

		err := service.RedeemPassword(42, "stale")

		assert.ErrorIs(t, err, ErrInvalidPassword)
		mockUsers.AssertNotCalled(t, "SetAdmin", int64(42))
	})

	t.Run("repository error is surfaced", func(t *testing.T) {
		mockUsers := new(testutil.MockUserRepository)
		mockPasswords := new(testutil.MockAdminPasswordRepository)
		mockPasswords.On("Redeem", "whatever", int64(42), maxAge).Return(false, errors.New("db down"))

		service := NewAuthService(mockUsers, mockPasswords)

		err := service.RedeemPassword(42, "whatever")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidPassword)
	})
}

func TestAuthService_IssuePassword(t *testing.T) {
	mockUsers := new(testutil.MockUserRepository)
	mockPasswords := new(testutil.MockAdminPasswordRepository)
	mockPasswords.On("Save", mock.AnythingOfType("string"), int64(7)).Return(nil)

	service := NewAuthService(mockUsers, mockPasswords)

	password, err := service.IssuePassword(7)

	assert.NoError(t, err)
	assert.Len(t, password, passwordLength)
	mockPasswords.AssertExpectations(t)
}

func TestSetupPasswordsNeeded(t *testing.T) {
	assert.Equal(t, 3, SetupPasswordsNeeded(0))
	assert.Equal(t, 1, SetupPasswordsNeeded(2))
	assert.Equal(t, 0, SetupPasswordsNeeded(3))
}

func TestAuthService_IsPrivileged(t *testing.T) {
	tests := []struct {
		name     string
		user     *domain.User
		expected bool
	}{
		{
			name:     "admin is privileged",
			user:     &domain.User{TelegramID: 1, IsAdmin: true},
			expected: true,
		},
		{
			name:     "owner is privileged",
			user:     &domain.User{TelegramID: 2, IsOwner: true},
			expected: true,
		},
		{
			name:     "plain user is not",
			user:     &domain.User{TelegramID: 3},
			expected: false,
		},
		{
			name:     "unknown user is not",
			user:     nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(testutil.MockUserRepository)
			mockUsers.On("Get", mock.AnythingOfType("int64")).Return(tt.user, nil)

			service := NewAuthService(mockUsers, new(testutil.MockAdminPasswordRepository))

			privileged, err := service.IsPrivileged(99)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, privileged)
		})
	}
}
