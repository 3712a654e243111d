package utils

import "os"

// GetEnv returns the value of an environment variable
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOrDefault returns the value of an environment variable or a fallback
func GetEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
