package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Roster input
	RosterPath string `mapstructure:"ROSTER_PATH"`

	// Search
	NumLineups      int   `mapstructure:"NUM_LINEUPS"`
	DurationSeconds int   `mapstructure:"DURATION_SECONDS"`
	SalaryCap       int   `mapstructure:"SALARY_CAP"`
	MinTeams        int   `mapstructure:"MIN_TEAMS"`
	MaxAttempts     int   `mapstructure:"MAX_ATTEMPTS"`
	RandomSeed      int64 `mapstructure:"RANDOM_SEED"`

	// Output
	LineupsPath string `mapstructure:"LINEUPS_PATH"`
	UploadPath  string `mapstructure:"UPLOAD_PATH"`

	// Logging
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8082")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("ROSTER_PATH", "./DKSalaries.csv")
	viper.SetDefault("NUM_LINEUPS", 100)
	viper.SetDefault("DURATION_SECONDS", 60)
	viper.SetDefault("SALARY_CAP", 50000)
	viper.SetDefault("MIN_TEAMS", 3)
	viper.SetDefault("MAX_ATTEMPTS", 10000)
	viper.SetDefault("RANDOM_SEED", 0) // 0 seeds from the wall clock
	viper.SetDefault("LINEUPS_PATH", "./lineups.csv")
	viper.SetDefault("UPLOAD_PATH", "./lineups_for_upload.csv")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	// Read config file if it exists (optional)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.NumLineups <= 0 {
		return fmt.Errorf("NUM_LINEUPS must be > 0, got %d", c.NumLineups)
	}
	if c.DurationSeconds <= 0 {
		return fmt.Errorf("DURATION_SECONDS must be > 0, got %d", c.DurationSeconds)
	}
	if c.SalaryCap <= 0 {
		return fmt.Errorf("SALARY_CAP must be > 0, got %d", c.SalaryCap)
	}
	if c.MinTeams <= 0 {
		return fmt.Errorf("MIN_TEAMS must be > 0, got %d", c.MinTeams)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("MAX_ATTEMPTS must be > 0, got %d", c.MaxAttempts)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
