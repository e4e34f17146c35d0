// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"reposeed/internal/issue"
)

// These tests mutate package-level state (the config cache, directory
// overrides, the working directory), so none of them run in parallel.

// isolate points the package at a config directory under a fresh temp dir
// and moves the working directory there, so nothing from the host machine
// leaks into the test. All state is restored on cleanup.
func isolate(t *testing.T) (tmpDir, cfgDir string) {
	t.Helper()
	Reset()
	tmpDir = t.TempDir()
	cfgDir = filepath.Join(tmpDir, AppName)
	SetConfigDirOverride(cfgDir)
	t.Cleanup(Reset)
	t.Chdir(tmpDir)
	return tmpDir, cfgDir
}

// writeConfigFile materializes cfgDir and drops content into its config.cue.
func writeConfigFile(t *testing.T, cfgDir, content string) string {
	t.Helper()
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Repository != DefaultRepository {
		t.Errorf("Repository = %q, want %q", cfg.Repository, DefaultRepository)
	}
	if cfg.Layout != LayoutDefault {
		t.Errorf("Layout = %q, want %q", cfg.Layout, LayoutDefault)
	}
	if cfg.Recursive {
		t.Error("Recursive should default to false")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}
	if cfg.UI.Verbose {
		t.Error("UI.Verbose should default to false")
	}
}

func TestPackageConstants(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"AppName", AppName, "reposeed"},
		{"ConfigFileName", ConfigFileName, "config"},
		{"ConfigFileExt", ConfigFileExt, "cue"},
		{"DefaultRepository", string(DefaultRepository), "target/local_repo"},
		{"LayoutDefault", string(LayoutDefault), "default"},
		{"LayoutEnhanced", string(LayoutEnhanced), "enhanced"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME resolution is Linux-specific")
	}

	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-home")

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg-home", AppName); dir != want {
		t.Errorf("ConfigDir() = %q, want %q", dir, want)
	}

	// Empty counts as unset: fall back to ~/.config.
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".config", AppName); dir != want {
		t.Errorf("ConfigDir() = %q, want %q", dir, want)
	}
}

func TestStateManagement(t *testing.T) {
	t.Run("Reset clears all package state", func(t *testing.T) {
		globalConfig = &Config{Repository: "/somewhere"}
		configPath = "/somewhere/config.cue"
		configDirOverride = "/override/dir"
		configFilePathOverride = "/override/config.cue"
		errLastLoad = errors.New("stale")

		Reset()

		if globalConfig != nil {
			t.Error("globalConfig survived Reset")
		}
		if configPath != "" || configDirOverride != "" || configFilePathOverride != "" {
			t.Error("path state survived Reset")
		}
		if errLastLoad != nil {
			t.Error("errLastLoad survived Reset")
		}
	})

	t.Run("ConfigFilePath reports the last resolved path", func(t *testing.T) {
		Reset()
		t.Cleanup(Reset)

		if got := ConfigFilePath(); got != "" {
			t.Errorf("ConfigFilePath() = %q before any load, want empty", got)
		}

		configPath = "/resolved/config.cue"
		if got := ConfigFilePath(); got != "/resolved/config.cue" {
			t.Errorf("ConfigFilePath() = %q", got)
		}
	})

	t.Run("SetConfigFilePathOverride drops the cached config", func(t *testing.T) {
		Reset()
		t.Cleanup(Reset)

		globalConfig = &Config{Repository: "/cached"}
		configPath = "/cached/config.cue"

		SetConfigFilePathOverride("/explicit/config.cue")

		if configFilePathOverride != "/explicit/config.cue" {
			t.Errorf("configFilePathOverride = %q", configFilePathOverride)
		}
		if globalConfig != nil || configPath != "" {
			t.Error("stale cache survived the override")
		}
	})
}

func TestGet(t *testing.T) {
	t.Run("returns defaults when nothing is on disk", func(t *testing.T) {
		isolate(t)

		cfg := Get()
		if cfg == nil {
			t.Fatal("Get() returned nil")
		}
		if cfg.Repository != DefaultRepository {
			t.Errorf("Repository = %q, want the default", cfg.Repository)
		}
		if err := LastLoadError(); err != nil {
			t.Errorf("LastLoadError() = %v, want nil", err)
		}
	})

	t.Run("falls back to defaults and records the load error", func(t *testing.T) {
		_, cfgDir := isolate(t)
		writeConfigFile(t, cfgDir, `this is not valid CUE syntax`)

		cfg := Get()
		if cfg.Repository != DefaultRepository {
			t.Errorf("Repository = %q, want the default after a failed load", cfg.Repository)
		}

		err := LastLoadError()
		if err == nil {
			t.Fatal("LastLoadError() = nil, want the parse failure")
		}
		if !strings.Contains(err.Error(), "load configuration") {
			t.Errorf("LastLoadError() = %q, want the operation mentioned", err)
		}
	})

	t.Run("clean load leaves no residual error", func(t *testing.T) {
		_, cfgDir := isolate(t)
		writeConfigFile(t, cfgDir, `layout: "enhanced"`)

		if cfg := Get(); cfg.Layout != LayoutEnhanced {
			t.Errorf("Layout = %q, want %q", cfg.Layout, LayoutEnhanced)
		}
		if err := LastLoadError(); err != nil {
			t.Errorf("LastLoadError() = %v, want nil", err)
		}
	})
}

func TestEnsureConfigDir(t *testing.T) {
	_, cfgDir := isolate(t)

	if err := EnsureConfigDir(); err != nil {
		t.Fatalf("EnsureConfigDir() error: %v", err)
	}

	info, err := os.Stat(cfgDir)
	if err != nil {
		t.Fatalf("config dir was not created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", cfgDir)
	}
}

func TestSaveThenLoad(t *testing.T) {
	isolate(t)

	if err := EnsureConfigDir(); err != nil {
		t.Fatalf("EnsureConfigDir() error: %v", err)
	}

	want := &Config{
		Repository: "/srv/artifacts/repo",
		Layout:     LayoutEnhanced,
		Recursive:  true,
		UI: UIConfig{
			ColorScheme: ColorSchemeDark,
			Verbose:     true,
		},
	}

	if err := Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// Drop the cache but keep the directory override so Load rereads the file.
	ResetCache()

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *got != *want {
		t.Errorf("Load() = %+v, want %+v", *got, *want)
	}
}

func TestLoad(t *testing.T) {
	t.Run("no file anywhere yields defaults", func(t *testing.T) {
		isolate(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if def := DefaultConfig(); *cfg != *def {
			t.Errorf("Load() = %+v, want defaults %+v", *cfg, *def)
		}
	})

	t.Run("reads config.cue from the working directory", func(t *testing.T) {
		tmpDir, _ := isolate(t)

		local := filepath.Join(tmpDir, ConfigFileName+"."+ConfigFileExt)
		if err := os.WriteFile(local, []byte(`repository: "/cwd/repo"`), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.Repository != "/cwd/repo" {
			t.Errorf("Repository = %q, want %q", cfg.Repository, "/cwd/repo")
		}
		if got := ConfigFilePath(); got != ConfigFileName+"."+ConfigFileExt {
			t.Errorf("ConfigFilePath() = %q, want the relative local file", got)
		}
	})

	t.Run("serves the cached config without touching disk", func(t *testing.T) {
		Reset()
		t.Cleanup(Reset)

		globalConfig = &Config{Repository: "/cached/repo"}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.Repository != "/cached/repo" {
			t.Errorf("Repository = %q, want the cached value", cfg.Repository)
		}
	})

	t.Run("schema violation names the offending file", func(t *testing.T) {
		_, cfgDir := isolate(t)
		cfgPath := writeConfigFile(t, cfgDir, `repository: 123`)

		_, err := Load()
		if err == nil {
			t.Fatal("Load() accepted a repository of the wrong type")
		}
		for _, want := range []string{"load configuration", cfgPath} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("Load() error %q missing %q", err, want)
			}
		}
	})

	t.Run("unknown layout is rejected", func(t *testing.T) {
		_, cfgDir := isolate(t)
		writeConfigFile(t, cfgDir, `layout: "flat"`)

		if _, err := Load(); err == nil {
			t.Fatal("Load() accepted an unknown layout")
		}
	})

	t.Run("whitespace-only repository fails Go-level validation", func(t *testing.T) {
		// Satisfies the schema's length bounds, so only IsValid can catch it.
		_, cfgDir := isolate(t)
		writeConfigFile(t, cfgDir, `repository: "   "`)

		_, err := Load()
		if err == nil {
			t.Fatal("Load() accepted a whitespace-only repository")
		}
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Load() error = %v, want ErrInvalidConfig in the chain", err)
		}
	})
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Run("valid file wins over the config directory", func(t *testing.T) {
		tmpDir, _ := isolate(t)

		custom := filepath.Join(tmpDir, "custom-config.cue")
		content := "repository: \"/custom/repo\"\nrecursive: true\n"
		if err := os.WriteFile(custom, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		SetConfigFilePathOverride(custom)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.Repository != "/custom/repo" || !cfg.Recursive {
			t.Errorf("Load() = %+v, want the explicit file's values", *cfg)
		}
		if got := ConfigFilePath(); got != custom {
			t.Errorf("ConfigFilePath() = %q, want %q", got, custom)
		}
	})

	t.Run("missing file is an error, not a silent default", func(t *testing.T) {
		isolate(t)

		const missing = "/no/such/dir/config.cue"
		SetConfigFilePathOverride(missing)

		_, err := Load()
		if err == nil {
			t.Fatal("Load() ignored a missing explicit config file")
		}

		for _, want := range []string{"load configuration", missing, "config file not found"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("Load() error %q missing %q", err, want)
			}
		}

		ae, ok := errors.AsType[*issue.ActionableError](err)
		if !ok {
			t.Fatalf("Load() error is %T, want *issue.ActionableError", err)
		}
		hasPathHint := slices.ContainsFunc(ae.Suggestions, func(s string) bool {
			return strings.Contains(s, "Verify the file path is correct")
		})
		if !hasPathHint {
			t.Errorf("Suggestions = %v, want a path-check hint", ae.Suggestions)
		}
	})

	t.Run("malformed file reports the explicit path", func(t *testing.T) {
		tmpDir, _ := isolate(t)

		custom := filepath.Join(tmpDir, "broken.cue")
		if err := os.WriteFile(custom, []byte(`this is not valid CUE {{{`), 0o644); err != nil {
			t.Fatal(err)
		}
		SetConfigFilePathOverride(custom)

		_, err := Load()
		if err == nil {
			t.Fatal("Load() accepted a malformed explicit config file")
		}
		if !strings.Contains(err.Error(), custom) {
			t.Errorf("Load() error %q missing the file path %q", err, custom)
		}
	})
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Run("writes a loadable default file", func(t *testing.T) {
		_, cfgDir := isolate(t)

		if err := CreateDefaultConfig(); err != nil {
			t.Fatalf("CreateDefaultConfig() error: %v", err)
		}

		path := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("default config was not written: %v", err)
		}
		if len(content) == 0 {
			t.Error("default config file is empty")
		}

		ResetCache()
		cfg, err := Load()
		if err != nil {
			t.Fatalf("generated config does not load: %v", err)
		}
		if def := DefaultConfig(); *cfg != *def {
			t.Errorf("round-tripped config = %+v, want %+v", *cfg, *def)
		}
	})

	t.Run("leaves an existing file untouched", func(t *testing.T) {
		_, cfgDir := isolate(t)
		path := writeConfigFile(t, cfgDir, `layout: "enhanced"`)

		if err := CreateDefaultConfig(); err != nil {
			t.Fatalf("CreateDefaultConfig() error: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != `layout: "enhanced"` {
			t.Error("CreateDefaultConfig() overwrote an existing file")
		}
	})
}
