package config

import (
	"errors"
	"os"
)

// Config holds the process-wide settings, read once at startup. There is no
// runtime reconfiguration.
type Config struct {
	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         []byte
	Port              string
	DBPath            string
}

func Load() (*Config, error) {
	cfg := &Config{
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         []byte(os.Getenv("JWT_SECRET")),
		Port:              os.Getenv("PORT"),
		DBPath:            os.Getenv("DB_PATH"),
	}

	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if cfg.Port == "" {
		cfg.Port = "3001"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "post-it.db"
	}

	return cfg, nil
}
