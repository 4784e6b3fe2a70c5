package utils

import (
	"errors"
	"net/http"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		username string
		valid    bool
	}{
		{"abc", true},
		{"user_01", true},
		{"A1234567890123456789", true}, // 刚好 20 位
		{"ab", false},                  // 太短
		{"a12345678901234567890", false}, // 21 位
		{"用户名", false},
		{"user name", false},
		{"user-name", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidateUsername(c.username); got != c.valid {
			t.Errorf("ValidateUsername(%q) = %v, want %v", c.username, got, c.valid)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"user.name+tag@example.co", true},
		{"a@b", false},
		{"@b.com", false},
		{"a@.com", false},
		{"a b@c.com", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidateEmail(c.email); got != c.valid {
			t.Errorf("ValidateEmail(%q) = %v, want %v", c.email, got, c.valid)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ValidatePassword("12345") {
		t.Error("Expected 5-char password to be invalid")
	}
	if !ValidatePassword("123456") {
		t.Error("Expected 6-char password to be valid")
	}
}

func TestAppErrorMapping(t *testing.T) {
	cases := []struct {
		code   string
		status int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrInsufficientPoints, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrDuplicate, http.StatusConflict},
		{ErrDatabase, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := AppErrorToHTTPStatus(c.code); got != c.status {
			t.Errorf("AppErrorToHTTPStatus(%s) = %d, want %d", c.code, got, c.status)
		}
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	origin := errors.New("connection refused")
	err := NewAppError(ErrDatabase, "数据库错误", origin)

	if !errors.Is(err, origin) {
		t.Error("Expected errors.Is to reach origin error")
	}
	if !IsErrorCode(err, ErrDatabase) {
		t.Error("Expected IsErrorCode to match")
	}
	if IsErrorCode(origin, ErrDatabase) {
		t.Error("Expected plain error not to match any code")
	}
	if err.Error() != "数据库错误: connection refused" {
		t.Errorf("Unexpected error string: %s", err.Error())
	}
}
