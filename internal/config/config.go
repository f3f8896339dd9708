package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Billing    BillingConfig    `validate:"required"`
}

type DeploymentConfig struct {
	Mode string `validate:"required"`
}

type LoggingConfig struct {
	Level string `validate:"required"`
}

// BillingConfig carries the knobs that are policy rather than plan data:
// how long after the invoice date payment is due, and the per-device
// backup allowance used when a plan does not specify one.
type BillingConfig struct {
	InvoiceDueDays          int     `mapstructure:"invoice_due_days" validate:"required,min=0"`
	DefaultBackupIncludedTB float64 `mapstructure:"default_backup_included_tb" validate:"min=0"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/billcraft")

	v.SetEnvPrefix("BILLCRAFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	v.SetDefault("deployment.mode", "local")
	v.SetDefault("logging.level", "info")
	v.SetDefault("billing.invoice_due_days", 30)
	v.SetDefault("billing.default_backup_included_tb", 1.0)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development.
// This is useful for running scripts or tests without a config file.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: "local"},
		Logging:    LoggingConfig{Level: "debug"},
		Billing: BillingConfig{
			InvoiceDueDays:          30,
			DefaultBackupIncludedTB: 1.0,
		},
	}
}
