// SPDX-License-Identifier: MPL-2.0

// Package config loads crowbar's own configuration: the plugins directory,
// UI preferences, and the package-installation command. Configuration comes
// from a TOML file under the platform config directory, overridable via
// CROWBAR_* environment variables.
package config
