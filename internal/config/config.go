package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	SMTP      SMTPConfig
	Game      GameConfig
	RateLimit RateLimitConfig
	Secure    SecureConfig
}

type ServerConfig struct {
	Port string
	// CORSAllowedOrigins empty disables CORS headers entirely.
	CORSAllowedOrigins []string
}

type DatabaseConfig struct {
	// URL empty means in-memory storage (dev mode, no durability).
	URL string
}

type RedisConfig struct {
	// URL empty means notifications dispatch in-process instead of via Asynq.
	URL string
}

type SMTPConfig struct {
	// Host empty means assignment emails are logged, not sent.
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type GameConfig struct {
	CodeLength  int
	JoinBaseURL string
}

type RateLimitConfig struct {
	// Rate per IP ("100-M" = 100/min). Empty disables.
	RatePerIP string
}

type SecureConfig struct {
	IsDevelopment bool
}

func Load() (*Config, error) {
	viper.AutomaticEnv()
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		viper.SetConfigFile(p)
		_ = viper.ReadInConfig()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnvOrDefault("PORT", "8080"),
			CORSAllowedOrigins: splitCSV(os.Getenv("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnvOrDefault("SMTP_FROM", "no-reply@secret-santa.app"),
		},
		Game: GameConfig{
			CodeLength:  viper.GetInt("GAME_CODE_LENGTH"),
			JoinBaseURL: getEnvOrDefault("JOIN_BASE_URL", "https://secret-santa.app"),
		},
		RateLimit: RateLimitConfig{
			RatePerIP: os.Getenv("RATE_LIMIT_PER_IP"),
		},
		Secure: SecureConfig{
			IsDevelopment: viper.GetBool("SECURE_DEV_MODE"),
		},
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
	if cfg.Game.CodeLength <= 0 {
		cfg.Game.CodeLength = 8
	}
	return cfg, nil
}

func splitCSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
