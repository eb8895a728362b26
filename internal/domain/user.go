package domain

import "time"

// User represents a bot user
type User struct {
	TelegramID int64
	Language   string
	IsAdmin    bool
	IsOwner    bool
	IsVerified bool
	CreatedAt  time.Time
}

// Privileged reports whether the user may open the admin panel
func (u User) Privileged() bool {
	return u.IsAdmin || u.IsOwner
}

// FlagEmoji returns the flag emoji for a language code
func FlagEmoji(language string) string {
	flags := map[string]string{
		"GB": "🇬🇧",
		"DE": "🇩🇪",
		"FR": "🇫🇷",
		"ES": "🇪🇸",
	}
	if flag, ok := flags[language]; ok {
		return flag
	}
	return "🏳️"
}
