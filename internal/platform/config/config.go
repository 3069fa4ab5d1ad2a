package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr          string
	StoreDriver   string // postgres or sqlite
	DatabaseURL   string
	SQLitePath    string
	StoreURL      string // desk side: base URL of the record store
	PayslipDir    string
	MigrationsDir string
	RunMigrations bool
}

func Load() Config {
	return Config{
		Addr:          getEnv("APP_ADDR", ":8080"),
		StoreDriver:   getEnv("STORE_DRIVER", "sqlite"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		SQLitePath:    getEnv("SQLITE_PATH", "payrolldesk.db"),
		StoreURL:      getEnv("STORE_URL", "http://localhost:8080"),
		PayslipDir:    getEnv("PAYSLIP_DIR", "."),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
		RunMigrations: getEnvBool("RUN_MIGRATIONS", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case "postgres":
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER is postgres")
		}
	case "sqlite":
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("SQLITE_PATH is required when STORE_DRIVER is sqlite")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}
