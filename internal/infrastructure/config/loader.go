package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
}

// LoadConfig loads configuration for the current environment. A missing
// config file is fine, defaults plus MB_-prefixed environment variables are
// enough to run, but secrets and allowance amounts must come from somewhere.
func LoadConfig() (*Config, error) {
	loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("MB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadDotEnvFile loads the first .env file it finds; not having one is normal
// in production.
func loadDotEnvFile() {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if godotenv.Load(path) == nil {
				return
			}
		}
	}
}

// setDefaults sets default values for non-secret configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	v.SetDefault("database.path", "moneybot.db")

	v.SetDefault("logger.level", "info")

	v.SetDefault("allowance.timezone", "America/Los_Angeles")
	v.SetDefault("allowance.source", "phil")
}

// getEnvironment determines the environment from MB_ENV
func getEnvironment() string {
	env := os.Getenv("MB_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes the well-known environment variables win over
// file values. The allowance amounts keep their historical bare names.
func processEnvOverrides(v *viper.Viper) {
	if token := os.Getenv("MB_DISCORD_TOKEN"); token != "" {
		v.Set("discord.token", token)
	}
	if channel := os.Getenv("MB_DISCORD_CHANNEL_ID"); channel != "" {
		v.Set("discord.channelId", channel)
	}
	if path := os.Getenv("MB_DATABASE_PATH"); path != "" {
		v.Set("database.path", path)
	}
	if level := os.Getenv("MB_LOGGER_LEVEL"); level != "" {
		v.Set("logger.level", level)
	}

	// the original deployment configured these as CHASE and CHARLIE
	if chase := os.Getenv("CHASE"); chase != "" {
		v.Set("allowance.chase", chase)
	}
	if charlie := os.Getenv("CHARLIE"); charlie != "" {
		v.Set("allowance.charlie", charlie)
	}
}

// validate rejects configurations the bot cannot run with.
func validate(config *Config) error {
	if config.Discord.Token == "" {
		return fmt.Errorf("discord token is not set")
	}
	if config.Discord.ChannelID == "" {
		return fmt.Errorf("discord channel id is not set")
	}
	if config.Allowance.Chase <= 0 || config.Allowance.Charlie <= 0 {
		return fmt.Errorf("allowance amounts must be positive")
	}
	return nil
}
