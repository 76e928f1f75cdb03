// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"crowbar-cli/internal/issue"
	"crowbar-cli/pkg/types"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.UI.Verbose {
		t.Error("default verbose should be false")
	}
	if want := []string{"npm", "install"}; !reflect.DeepEqual(cfg.Install.Command, want) {
		t.Errorf("Install.Command = %v, want %v", cfg.Install.Command, want)
	}
}

func TestLoadReadsTOMLFile(t *testing.T) {
	dir := t.TempDir()
	src := `
[plugins]
dir = "/opt/crowbar/plugins"

[ui]
verbose = true

[install]
command = ["pnpm", "install"]
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(src), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Plugins.Dir != "/opt/crowbar/plugins" {
		t.Errorf("Plugins.Dir = %q", cfg.Plugins.Dir)
	}
	if !cfg.UI.Verbose {
		t.Error("ui.verbose should be true")
	}
	if want := []string{"pnpm", "install"}; !reflect.DeepEqual(cfg.Install.Command, want) {
		t.Errorf("Install.Command = %v, want %v", cfg.Install.Command, want)
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`[plugins`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err == nil {
		t.Fatal("Load() should fail on malformed TOML")
	}

	// Load failures carry actionable context so the CLI can render hints.
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("error should be *issue.ActionableError, got %T", err)
	}
	if len(ae.Suggestions) == 0 {
		t.Error("ActionableError should carry suggestions")
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: missing})
	if err == nil {
		t.Fatal("Load() should fail when an explicitly requested file is missing")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("error should be *issue.ActionableError, got %T", err)
	}
	if ae.Resource != missing {
		t.Errorf("Resource = %q, want the requested config path", ae.Resource)
	}
}

func TestPluginsDirFallsBackToConfigDir(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(func() { SetConfigDirOverride("") })

	cfg := DefaultConfig()
	got, err := cfg.PluginsDir()
	if err != nil {
		t.Fatalf("PluginsDir() error: %v", err)
	}
	if want := types.FilesystemPath(filepath.Join(dir, PluginsDirName)); got != want {
		t.Errorf("PluginsDir() = %q, want %q", got, want)
	}

	cfg.Plugins.Dir = "/explicit"
	got, err = cfg.PluginsDir()
	if err != nil {
		t.Fatalf("PluginsDir() error: %v", err)
	}
	if got != "/explicit" {
		t.Errorf("PluginsDir() = %q, want explicit dir", got)
	}
}
