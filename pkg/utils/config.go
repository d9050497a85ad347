package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Session   SessionConfig
	RoleCache RoleCacheConfig
	Media     MediaConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	Secret       string
	Name         string
	ExpiryHours  int
	CookieSecure bool
}

// Expiry returns how long a login stays valid.
func (c SessionConfig) Expiry() time.Duration {
	return time.Duration(c.ExpiryHours) * time.Hour
}

type RoleCacheConfig struct {
	Size       int
	TTLSeconds int
}

func (c RoleCacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type MediaConfig struct {
	Path        string
	MaxUploadMB int64
}

// MaxUploadBytes is the request body limit for multipart forms.
func (c MediaConfig) MaxUploadBytes() int64 {
	if c.MaxUploadMB <= 0 {
		return 5 << 20
	}
	return c.MaxUploadMB << 20
}

// LoadConfigFrom reads the given env file, overlaid by process environment
// variables. A missing file is not an error.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "order-management")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("SESSION_NAME", "om_session")
	v.SetDefault("SESSION_EXPIRY_HOURS", 24)
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("ROLE_CACHE_SIZE", 1024)
	v.SetDefault("ROLE_CACHE_TTL_SECONDS", 30)
	v.SetDefault("MEDIA_PATH", "media/")
	v.SetDefault("MAX_UPLOAD_MB", 5)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			Secret:       v.GetString("SESSION_SECRET"),
			Name:         v.GetString("SESSION_NAME"),
			ExpiryHours:  v.GetInt("SESSION_EXPIRY_HOURS"),
			CookieSecure: v.GetBool("COOKIE_SECURE"),
		},
		RoleCache: RoleCacheConfig{
			Size:       v.GetInt("ROLE_CACHE_SIZE"),
			TTLSeconds: v.GetInt("ROLE_CACHE_TTL_SECONDS"),
		},
		Media: MediaConfig{
			Path:        v.GetString("MEDIA_PATH"),
			MaxUploadMB: v.GetInt64("MAX_UPLOAD_MB"),
		},
	}

	if len(config.Session.Secret) < 32 {
		return nil, errors.New("SESSION_SECRET must be at least 32 characters")
	}

	return config, nil
}
