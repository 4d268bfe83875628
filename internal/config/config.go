package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
	"github.com/shopspring/decimal"
)

const defaultMinWithdrawal = "50"

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTSecret     string `env:"JWT_SECRET"`
	MinWithdrawal string `env:"MIN_WITHDRAWAL"`

	// Доступ к Google Sheets. Если не заданы, бухгалтерская выгрузка отключена.
	SheetID           string `env:"GOOGLE_SHEET_ID"`
	GoogleCredentials string `env:"GOOGLE_CREDENTIALS_JSON"`
}

// MinWithdrawalAmount возвращает минимальную сумму вывода средств.
func (c *Config) MinWithdrawalAmount() (decimal.Decimal, error) {
	min, err := decimal.NewFromString(c.MinWithdrawal)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse min withdrawal `%s`: %w", c.MinWithdrawal, err)
	}
	if min.IsNegative() {
		return decimal.Decimal{}, errors.New("min withdrawal must not be negative")
	}
	return min, nil
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	if _, err := conf.MinWithdrawalAmount(); err != nil {
		return nil, err
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTSecret, "j", "", "JWT signing secret")
	flag.StringVar(&flagConfig.MinWithdrawal, "w", defaultMinWithdrawal, "Minimal withdrawal amount")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:        defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:       defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:     defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:         defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		MinWithdrawal:     defaultIfBlank(envConfig.MinWithdrawal, flagsConfig.MinWithdrawal),
		SheetID:           envConfig.SheetID,
		GoogleCredentials: envConfig.GoogleCredentials,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
