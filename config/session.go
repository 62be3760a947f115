package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SessionBackend selects where the session record is persisted.
type SessionBackend string

const (
	// SessionBackendFile stores the session as a JSON file (default).
	SessionBackendFile SessionBackend = "file"
	// SessionBackendRedis stores the session in Redis.
	SessionBackendRedis SessionBackend = "redis"
	// SessionBackendMemory keeps the session in memory only.
	SessionBackendMemory SessionBackend = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (b *SessionBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "file", "redis", "memory":
		*b = SessionBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionBackend: %q (valid options: file, redis, memory)", v)
	}
}

// SessionRedisConfig contains Redis connection settings for the redis
// session backend.
type SessionRedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
	Key      string `env:"KEY"      envDefault:"holidaze:session"`
}

// SessionConfig groups session persistence and refresh configuration.
type SessionConfig struct {
	// Backend determines which session store to use.
	Backend SessionBackend `env:"BACKEND" envDefault:"file"`

	// File is the session file path for the file backend. Defaults to
	// holidaze/session.json under the user config directory.
	File string `env:"FILE"`

	// Redis configuration (used when Backend=redis).
	Redis SessionRedisConfig `envPrefix:"REDIS_"`

	// RefreshMinInterval is the minimum elapsed time between consecutive
	// profile refresh calls. Non-positive values are raised to the 5s
	// default; the throttle cannot be disabled through configuration.
	RefreshMinInterval time.Duration `env:"REFRESH_MIN_INTERVAL" envDefault:"5s"`
}

// minRefreshInterval is the floor applied to the refresh throttle so a
// zeroed environment cannot disable it.
const minRefreshInterval = 5 * time.Second

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.Backend == "" {
		s.Backend = SessionBackendFile
	}
	if s.File == "" {
		s.File = defaultSessionFile()
	}
	if s.RefreshMinInterval <= 0 {
		s.RefreshMinInterval = minRefreshInterval
	}
}

// defaultSessionFile places the session under the user config directory,
// falling back to the working directory when none is resolvable.
func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".holidaze-session.json"
	}
	return filepath.Join(dir, "holidaze", "session.json")
}
