package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	ServerPort    string
	JWTSecret     string
	ReceptionHash string
	DatabaseURL   string
	Timezone      string
	Env           string
}

// Load lê um .env local (quando existir) e depois o ambiente.
// DATABASE_URL vazia desliga a trilha de auditoria persistida.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		TelegramToken: getEnv("TELEGRAM_API_KEY", ""),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		ReceptionHash: getEnv("RECEPTION_PASSWORD_HASH", ""),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		Timezone:      getEnv("TIMEZONE", "America/Sao_Paulo"),
		Env:           getEnv("ENV", "development"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
