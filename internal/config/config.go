package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ContactsFile string `yaml:"contacts_file" mapstructure:"contacts_file"`
	Format       string `yaml:"format" mapstructure:"format"`
	Theme        string `yaml:"theme" mapstructure:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		ContactsFile: defaultContactsFile(),
		Format:       "pipe",
		Theme:        "green",
	}
}

func defaultContactsFile() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "rolodex", "contacts.txt")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "rolodex", "contacts.txt")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths
	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "rolodex"))
	}
	home, _ := os.UserHomeDir()
	viper.AddConfigPath(filepath.Join(home, ".config", "rolodex"))

	// Environment variables (ROLODEX_CONTACTS_FILE etc.)
	viper.SetEnvPrefix("ROLODEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error produced
			return nil, err
		}
		// Config file not found; ignore and use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.ContactsFile == "" {
		return fmt.Errorf("config: contacts_file is required")
	}
	switch c.Format {
	case "", "pipe", "yaml":
	default:
		return fmt.Errorf("config: format %q is invalid (must be pipe or yaml)", c.Format)
	}
	switch c.Theme {
	case "", "green", "amber", "mono":
	default:
		return fmt.Errorf("config: theme %q is invalid (must be green, amber, or mono)", c.Theme)
	}
	return nil
}
