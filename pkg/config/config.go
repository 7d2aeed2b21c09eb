// Package config loads tool configuration via viper: a .timekeep file in
// the working directory or values from TIMEKEEP_* environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the resolved settings every command shares.
type Config struct {
	// Vault is the root directory of the markdown vault.
	Vault string
	// Timezone is the IANA zone date ranges resolve against. Empty means
	// the system location.
	Timezone string
	// ExportFormat is the default artifact format for the export command.
	ExportFormat string
}

// Load reads configuration, expanding ~ in the vault path. Defaults keep
// the tool usable with no config file at all: the current directory is
// treated as the vault.
func Load() (Config, error) {
	viper.SetDefault("vault", ".")
	viper.SetDefault("timezone", "")
	viper.SetDefault("export_format", "md")
	viper.SetConfigName(".timekeep") // .yaml is implicit
	viper.SetEnvPrefix("TIMEKEEP")
	viper.AutomaticEnv()

	if override := os.Getenv("TIMEKEEP_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	vaultPath, err := homedir.Expand(viper.GetString("vault"))
	if err != nil {
		return Config{}, fmt.Errorf("expanding vault path: %w", err)
	}

	return Config{
		Vault:        vaultPath,
		Timezone:     viper.GetString("timezone"),
		ExportFormat: viper.GetString("export_format"),
	}, nil
}

// Location resolves the configured timezone, falling back to the system
// location when unset or unknown.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown timezone %q, using system location\n", c.Timezone)
		return time.Local
	}
	return loc
}
