package utils

import "strings"

// NormalizeString standardizes a string
func NormalizeString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// NormalizeEmail standardizes email format
func NormalizeEmail(email string) string {
	return NormalizeString(email)
}
