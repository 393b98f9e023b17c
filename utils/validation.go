// utils/validation.go - Registration form validation
package utils

import (
	"errors"
	"regexp"
	"strconv"
)

const (
	MinAge = 6
	MaxAge = 12

	minUsernameLen = 3
	minPasswordLen = 6
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateUsername enforces 3+ characters, letters/digits/underscores only.
func ValidateUsername(username string) error {
	if len(username) < minUsernameLen {
		return errors.New("Username must be at least 3 characters long")
	}
	if !usernameRe.MatchString(username) {
		return errors.New("Username can only contain letters, numbers, and underscores")
	}
	return nil
}

// ValidateEmail checks the basic shape of an email address.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("Email is required")
	}
	if !emailRe.MatchString(email) {
		return errors.New("Please enter a valid email address")
	}
	return nil
}

// ValidatePassword enforces a minimum length of 6.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return errors.New("Password must be at least 6 characters long")
	}
	return nil
}

// ValidateAge parses age and enforces the 6-12 range.
func ValidateAge(age string) (int, error) {
	if age == "" {
		return 0, errors.New("Please select your age")
	}
	n, err := strconv.Atoi(age)
	if err != nil {
		return 0, errors.New("Please select your age")
	}
	if n < MinAge || n > MaxAge {
		return 0, errors.New("Age must be between 6 and 12")
	}
	return n, nil
}
