// Package config loads runtime configuration from the environment.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings the boundary needs to wire the core together.
type Config struct {
	SnapshotPath string
	JWTSecret    string
	LogLevel     string
	Location     *time.Location
}

// Load reads configuration from the environment, honouring a local .env
// file if one exists. A missing JWT secret is generated on the spot, which
// invalidates existing sessions on restart.
func Load() (*Config, error) {
	_ = godotenv.Load()

	tz := getenv("TZ", "Australia/Sydney")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.Local
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret, err = generateSecret()
		if err != nil {
			return nil, fmt.Errorf("generating jwt secret: %w", err)
		}
		slog.Warn("JWT secret auto-generated, sessions will not survive a restart")
	}

	return &Config{
		SnapshotPath: getenv("SNAPSHOT_PATH", "rentals.json"),
		JWTSecret:    secret,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		Location:     loc,
	}, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func generateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
