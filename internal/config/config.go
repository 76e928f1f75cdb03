// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"crowbar-cli/internal/issue"
	"crowbar-cli/internal/manifest"
	"crowbar-cli/pkg/platform"
	"crowbar-cli/pkg/types"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "crowbar"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// PluginsDirName is the default plugins directory name under ConfigDir.
	PluginsDirName = "plugins"
)

type (
	// Config is crowbar's own configuration.
	Config struct {
		Plugins PluginsConfig `mapstructure:"plugins"`
		UI      UIConfig      `mapstructure:"ui"`
		Install InstallConfig `mapstructure:"install"`
	}

	// PluginsConfig configures where plugins are discovered.
	PluginsConfig struct {
		// Dir is the plugins root. Empty means <config-dir>/plugins.
		Dir string `mapstructure:"dir"`
	}

	// UIConfig holds user interface preferences.
	UIConfig struct {
		// Verbose enables verbose output by default.
		Verbose bool `mapstructure:"verbose"`
	}

	// InstallConfig configures the package-installation step run after a
	// manifest merge.
	InstallConfig struct {
		// Command is the installation command line (default: npm install).
		Command []string `mapstructure:"command"`
	}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Install: InstallConfig{Command: manifest.DefaultInstallCommand},
	}
}

// ConfigDir returns the crowbar configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// PluginsDir resolves the plugins root, falling back to <config-dir>/plugins
// when no explicit directory is configured.
func (c *Config) PluginsDir() (types.FilesystemPath, error) {
	if c.Plugins.Dir != "" {
		return types.FilesystemPath(c.Plugins.Dir), nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return types.FilesystemPath(filepath.Join(dir, PluginsDirName)), nil
}

// loadWithOptions builds a viper instance for the requested source, reads
// the file if it exists, and unmarshals over the defaults. A missing config
// file is not an error; a malformed one is.
func loadWithOptions(_ context.Context, opts LoadOptions) (*Config, error) {
	v := viper.New()
	v.SetDefault("plugins.dir", "")
	v.SetDefault("ui.verbose", false)
	v.SetDefault("install.command", manifest.DefaultInstallCommand)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case opts.ConfigFilePath != "":
		v.SetConfigFile(opts.ConfigFilePath)
	default:
		dir := opts.ConfigDirPath
		if dir == "" {
			var err error
			dir, err = ConfigDir()
			if err != nil {
				return nil, err
			}
		}
		v.AddConfigPath(dir)
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(v.ConfigFileUsed()).
				WithSuggestion("Check the TOML syntax of the file").
				WithSuggestion("Remove the file to fall back to defaults").
				Wrap(err).
				Build()
		}
		if opts.ConfigFilePath != "" {
			// An explicitly requested file must exist.
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the --config path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(err).
				Build()
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse configuration").
			WithResource(v.ConfigFileUsed()).
			WithSuggestion("Check that the values match the expected option types").
			Wrap(err).
			Build()
	}

	return cfg, nil
}
