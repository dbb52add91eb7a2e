package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultDBPath        = "database.db"
	defaultCompanyName   = "Timesheet Generator"
	defaultExportWorkers = 2
)

type Config struct {
	TelegramToken string
	DBPath        string
	CompanyName   string
	AdminChatIDs  []int64
	ExportWorkers int
}

// LoadConfig reads .env when present and then the process environment.
// The Telegram token is only checked by RequireToken.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DBPath:        getenv("DB_PATH", defaultDBPath),
		CompanyName:   getenv("COMPANY_NAME", defaultCompanyName),
		ExportWorkers: defaultExportWorkers,
	}

	if v := strings.TrimSpace(os.Getenv("EXPORT_WORKERS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("EXPORT_WORKERS must be a positive integer, got %q", v)
		}
		cfg.ExportWorkers = n
	}

	for _, part := range strings.Split(os.Getenv("ADMIN_CHAT_IDS"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_CHAT_IDS: invalid chat id %q", part)
		}
		cfg.AdminChatIDs = append(cfg.AdminChatIDs, id)
	}
	return cfg, nil
}

func (c *Config) RequireToken() error {
	if c.TelegramToken == "" {
		return ErrNoToken{}
	}
	return nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

type ErrNoToken struct{}

func (e ErrNoToken) Error() string {
	return "TELEGRAM_TOKEN is not set in the environment"
}
