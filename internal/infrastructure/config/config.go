package config

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Discord     DiscordConfig   `mapstructure:"discord"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Allowance   AllowanceConfig `mapstructure:"allowance"`
}

// DiscordConfig contains the chat transport settings
type DiscordConfig struct {
	Token     string `mapstructure:"token"`
	ChannelID string `mapstructure:"channelId"`
}

// ServerConfig contains the health endpoint settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DatabaseConfig points at the sqlite ledger file
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// AllowanceConfig drives the weekly disbursement: the reference timezone, the
// privileged source account, and the two recipients' amounts in minor units.
type AllowanceConfig struct {
	Timezone string `mapstructure:"timezone"`
	Source   string `mapstructure:"source"`
	Chase    int64  `mapstructure:"chase"`
	Charlie  int64  `mapstructure:"charlie"`
}
