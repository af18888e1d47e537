package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Storage  StorageConfig
	Salon    SalonConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

// SalonConfig holds attendance-related settings. The salon operates in a
// single fixed timezone; device timestamps further than MaxClockSkew from
// server time are rejected.
type SalonConfig struct {
	Timezone          string
	MaxClockSkew      time.Duration
	DefaultShiftStart string // "08:00"
	DefaultShiftEnd   string // "17:00"
	NoteMaxLength     int
}

// PayrollConfig holds the fixed monetary rates used by attendance
// penalties and monthly payroll. All amounts are VND.
type PayrollConfig struct {
	PenaltyPerMinute    decimal.Decimal
	OvertimeRatePerHour decimal.Decimal
	MissedCheckPenalty  decimal.Decimal
	DefaultBaseSalary   decimal.Decimal
}

func Load() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "salon"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Storage configuration
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	// Salon configuration
	maxSkew, err := time.ParseDuration(getEnv("MAX_DEVICE_CLOCK_SKEW", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_DEVICE_CLOCK_SKEW: %w", err)
	}
	noteMax, err := strconv.Atoi(getEnv("ATTENDANCE_NOTE_MAX_LENGTH", "500"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_NOTE_MAX_LENGTH: %w", err)
	}

	config.Salon = SalonConfig{
		Timezone:          getEnv("SALON_TIMEZONE", "Asia/Ho_Chi_Minh"),
		MaxClockSkew:      maxSkew,
		DefaultShiftStart: getEnv("DEFAULT_SHIFT_START", "08:00"),
		DefaultShiftEnd:   getEnv("DEFAULT_SHIFT_END", "17:00"),
		NoteMaxLength:     noteMax,
	}

	// Payroll rates
	config.Payroll, err = loadPayrollConfig()
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPayrollConfig() (PayrollConfig, error) {
	cfg := PayrollConfig{}

	for _, item := range []struct {
		key      string
		fallback string
		dst      *decimal.Decimal
	}{
		{"PENALTY_PER_MINUTE", "5000", &cfg.PenaltyPerMinute},
		{"OVERTIME_RATE_PER_HOUR", "50000", &cfg.OvertimeRatePerHour},
		{"MISSED_CHECK_PENALTY", "100000", &cfg.MissedCheckPenalty},
		{"DEFAULT_BASE_SALARY", "5000000", &cfg.DefaultBaseSalary},
	} {
		value, err := decimal.NewFromString(getEnv(item.key, item.fallback))
		if err != nil {
			return PayrollConfig{}, fmt.Errorf("invalid %s: %w", item.key, err)
		}
		*item.dst = value
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Salon.NoteMaxLength <= 0 {
		return fmt.Errorf("ATTENDANCE_NOTE_MAX_LENGTH must be positive")
	}
	if _, err := time.LoadLocation(c.Salon.Timezone); err != nil {
		return fmt.Errorf("invalid SALON_TIMEZONE: %w", err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
