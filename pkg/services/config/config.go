package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type StorageConfig struct {
	DbPath string `mapstructure:"db_path"`
}

type ExtractorConfig struct {
	Profile string `mapstructure:"profile"`
}

type TolerancesConfig struct {
	Money    float64 `mapstructure:"money"`
	Quantity float64 `mapstructure:"quantity"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Extractor  ExtractorConfig  `mapstructure:"extractor"`
	Tolerances TolerancesConfig `mapstructure:"tolerances"`
}

// LoadConfig reads the application config file. Unset tolerance values stay
// zero; callers fall back to the audit defaults for those.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("storage.db_path", "doc-audit.db")
	v.SetDefault("extractor.profile", "DEFAULT")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
