package config

// Config represents the complete configuration structure
type Config struct {
	Sonarr  SonarrConfig  `mapstructure:"sonarr"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SonarrConfig holds Sonarr API connection details
type SonarrConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
