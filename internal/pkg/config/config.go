package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: none. The rental core runs in-process and every value has a safe default
// - default: pricing policy numbers, log settings, optional fleet seed file
// -----------------------------------------------------------------------------

type Config struct {
	App     AppConfig
	Log     LogConfig
	Pricing PricingConfig
	Payment PaymentConfig
	Seed    SeedConfig
}

type AppConfig struct {
	Name string `envconfig:"APP_NAME" default:"crfms"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:"text"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Istanbul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

type PricingConfig struct {
	FirstOrderPercent int `envconfig:"PRICING_FIRST_ORDER_PERCENT" default:"15"`
	LoyaltyPercent    int `envconfig:"PRICING_LOYALTY_PERCENT" default:"10"`
	LoyaltyEvery      int `envconfig:"PRICING_LOYALTY_EVERY" default:"5"`
}

type PaymentConfig struct {
	// Zero disables throttling
	ChargesPerSecond float64 `envconfig:"PAYMENT_CHARGES_PER_SECOND" default:"20"`
	Burst            int     `envconfig:"PAYMENT_BURST" default:"5"`
}

type SeedConfig struct {
	// Empty means the embedded default fleet
	FleetFile string `envconfig:"FLEET_FILE"`
}

func (c PricingConfig) Validate() error {
	if c.FirstOrderPercent < 0 || c.FirstOrderPercent > 100 {
		return fmt.Errorf("PRICING_FIRST_ORDER_PERCENT must be between 0 and 100, got %d", c.FirstOrderPercent)
	}
	if c.LoyaltyPercent < 0 || c.LoyaltyPercent > 100 {
		return fmt.Errorf("PRICING_LOYALTY_PERCENT must be between 0 and 100, got %d", c.LoyaltyPercent)
	}
	if c.LoyaltyEvery < 1 {
		return fmt.Errorf("PRICING_LOYALTY_EVERY must be at least 1, got %d", c.LoyaltyEvery)
	}
	return nil
}

// DotEnvFile is read before the environment when present. Variables already set win.
const DotEnvFile = ".env"

func LoadConfig() (Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Pricing.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid pricing config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		App: AppConfig{
			Name: "crfms-test",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			Format:         "text",
			TimeZone:       "Europe/Istanbul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
		Pricing: PricingConfig{
			FirstOrderPercent: 15,
			LoyaltyPercent:    10,
			LoyaltyEvery:      5,
		},
		Payment: PaymentConfig{},
	}
}
