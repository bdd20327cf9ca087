package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	HasherBcrypt   = "bcrypt"
	HasherArgon2id = "argon2id"
)

type Config struct {
	DatabaseURL string
	HTTPAddress string
	LogLevel    string

	// JWTSecret may be empty: token issuance then fails per request.
	JWTSecret string

	PasswordHasher string
	PasswordPepper string

	RedisAddress    string
	RedisPassword   string
	RedisDB         int
	ProfileCacheTTL time.Duration

	AllowedOrigins   []string
	AllowCredentials bool
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDRESS", ":3000")
	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("PASSWORD_HASHER", HasherBcrypt)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("PROFILE_CACHE_TTL", "5m")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("ALLOW_CREDENTIALS", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		DatabaseURL:      v.GetString("DATABASE_URL"),
		HTTPAddress:      v.GetString("HTTP_ADDRESS"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		PasswordHasher:   strings.ToLower(v.GetString("PASSWORD_HASHER")),
		PasswordPepper:   v.GetString("PASSWORD_PEPPER"),
		RedisAddress:     v.GetString("REDIS_ADDRESS"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		RedisDB:          v.GetInt("REDIS_DB"),
		ProfileCacheTTL:  v.GetDuration("PROFILE_CACHE_TTL"),
		AllowedOrigins:   splitList(v.GetString("ALLOWED_ORIGINS")),
		AllowCredentials: v.GetBool("ALLOW_CREDENTIALS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	switch cfg.PasswordHasher {
	case HasherBcrypt, HasherArgon2id:
	default:
		return nil, fmt.Errorf("PASSWORD_HASHER %q: want %s or %s", cfg.PasswordHasher, HasherBcrypt, HasherArgon2id)
	}
	if cfg.ProfileCacheTTL <= 0 {
		return nil, fmt.Errorf("PROFILE_CACHE_TTL must be positive, got %v", cfg.ProfileCacheTTL)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
