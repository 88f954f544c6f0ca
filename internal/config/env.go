package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnvFiles loads .env.local from the working directory if it exists.
// Variables already set in the environment win.
func LoadEnvFiles() {
	_ = godotenv.Load(".env.local")
}

// GetEnv returns the value of key, or fallback if it is unset or blank.
func GetEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}

// GetEnvBool returns the boolean value of key, or fallback if it is unset or not a boolean.
func GetEnvBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(GetEnv(key, ""))
	if err != nil {
		return fallback
	}

	return b
}

// GetEnvInt returns the integer value of key, or fallback if it is unset or not an integer.
func GetEnvInt(key string, fallback int) int {
	i, err := strconv.Atoi(GetEnv(key, ""))
	if err != nil {
		return fallback
	}

	return i
}
