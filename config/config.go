package config

import "os"

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "quickmart_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// CachePath is where the local key-value cache lives.
func CachePath() string {
	return getEnv("CACHE_DB", "quickmart.db")
}

// Port the HTTP server listens on.
func Port() string {
	return getEnv("PORT", "8080")
}
