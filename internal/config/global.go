// SPDX-License-Identifier: MPL-2.0

package config

var (
	// configDirOverride redirects ConfigDir for tests.
	configDirOverride string
	// configFilePathOverride forces a specific config file (--config flag).
	configFilePathOverride string
)

// SetConfigDirOverride overrides the config directory lookup. Pass "" to
// restore the platform default. Intended for tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride forces loading from a specific config file,
// as set by the --config flag.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// ConfigFilePathOverride returns the forced config file path, if any.
func ConfigFilePathOverride() string {
	return configFilePathOverride
}
