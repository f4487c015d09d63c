package utils

import (
	"os"
	"strconv"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("ARTISANHUB_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("ARTISANHUB_JWT_ISSUER")
	if issuer == "" {
		issuer = "artisanhub"
	}

	hours := 24
	if ttl := os.Getenv("ARTISANHUB_JWT_TTL_HOURS"); ttl != "" {
		if n, err := strconv.Atoi(ttl); err == nil && n > 0 {
			hours = n
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: time.Duration(hours) * time.Hour,
	}
}

type ServerConfig struct {
	HTTPAddr string
}

func LoadServerConfig() ServerConfig {
	addr := os.Getenv("ARTISANHUB_HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return ServerConfig{HTTPAddr: addr}
}
