package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Admin   AdminConfig   `mapstructure:"admin"`
	Log     LogConfig     `mapstructure:"log"`
}

// StorageConfig holds the persistent store configuration.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// AdminConfig holds the admin gate configuration. The default password
// mirrors the prototype this replaces; override it even though the gate is
// not a real authentication mechanism.
type AdminConfig struct {
	Password string `mapstructure:"password"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // e.g., "debug", "info", "warn", "error"
	Format string `mapstructure:"format"` // e.g., "json", "console"
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	// Set default values
	viper.SetDefault("storage.path", "blog.db")
	viper.SetDefault("admin.password", "admin123")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")

	// Set up viper to read from config file
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("$HOME/.go-blog-app")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return nil, err
		}
		// Config file not found; proceed with defaults and env vars
	}

	// Set up viper to read from environment variables
	viper.SetEnvPrefix("BLOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Unmarshal the config into the Config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
