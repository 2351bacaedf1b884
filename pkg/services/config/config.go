package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the application configuration loaded from a YAML file,
// overridable through LEDGER_ATLAS_* environment variables.
type Config struct {
	Server    ServerConfig `mapstructure:"server"`
	Currency  string       `mapstructure:"currency"`
	Snapshot  string       `mapstructure:"snapshot"`
	ExportDir string       `mapstructure:"export_dir"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoadConfig reads configuration from the given path, applying
// defaults for anything the file leaves out.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("LEDGER_ATLAS")
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("currency", "Rs.")
	v.SetDefault("snapshot", "ledger-atlas.json")
	v.SetDefault("export_dir", ".")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Currency:  "Rs.",
		Snapshot:  "ledger-atlas.json",
		ExportDir: ".",
	}
}
