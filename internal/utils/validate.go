package utils

import (
	"regexp"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateUsername 3-20 位，只允许字母、数字、下划线
func ValidateUsername(username string) bool {
	return usernameRe.MatchString(username)
}

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidatePassword 至少 6 位
func ValidatePassword(password string) bool {
	return len(password) >= 6
}
