package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	hasLower   = regexp.MustCompile(`[a-z]`)
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasNumber  = regexp.MustCompile(`[0-9]`)
	nameRegex  = regexp.MustCompile(`^[a-zA-Z\s.'\-]+$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// ValidateEmail checks if the email is valid
func ValidateEmail(email string) (bool, string) {
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return false, "Invalid email format. Please enter a valid email address"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the requirements
func ValidatePassword(password string) (bool, string) {
	if len(password) < MinPasswordLength {
		return false, "Password must be at least 8 characters long"
	}

	if !hasLower.MatchString(password) {
		return false, "Password must contain at least one lowercase letter"
	}

	if !hasUpper.MatchString(password) {
		return false, "Password must contain at least one uppercase letter"
	}

	if !hasNumber.MatchString(password) {
		return false, "Password must contain at least one number"
	}

	return true, ""
}

// ValidatePhone checks if the phone number is valid
func ValidatePhone(phone string) (bool, string) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false, "Phone number is required"
	}

	if !phoneRegex.MatchString(phone) {
		return false, "Phone number must be 7 to 15 digits, with an optional leading +"
	}

	return true, ""
}

// ValidateName checks if the name is valid
func ValidateName(name string) (bool, string) {
	name = strings.TrimSpace(name)
	if len(name) < MinNameLength {
		return false, "Name must be at least 2 characters long"
	}

	if !nameRegex.MatchString(name) {
		return false, "Name cannot contain numbers or special characters"
	}

	return true, ""
}
