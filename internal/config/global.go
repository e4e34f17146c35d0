// SPDX-License-Identifier: MPL-2.0

package config

import "context"

var (
	// globalConfig caches the loaded configuration for package-level access.
	globalConfig *Config
	// configPath records where the cached configuration was loaded from
	// ("" when defaults were used).
	configPath string
	// errLastLoad stores the most recent load failure so callers of Get()
	// can surface it after falling back to defaults.
	errLastLoad error

	// configFilePathOverride forces loading from a specific config file
	// (set via the --config flag).
	configFilePathOverride string
	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string
)

// Load returns the cached configuration, loading it from disk on first use.
// Load honors SetConfigFilePathOverride and SetConfigDirOverride.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, resolvedPath, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: configFilePathOverride,
		ConfigDirPath:  configDirOverride,
	})
	if err != nil {
		return nil, err
	}

	globalConfig = cfg
	configPath = resolvedPath
	return cfg, nil
}

// Get returns the current configuration, falling back to defaults when
// loading fails. The load error, if any, is retrievable via LastLoadError.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		errLastLoad = err
		return DefaultConfig()
	}
	errLastLoad = nil
	return cfg
}

// LastLoadError returns the error from the most recent Get() that fell back
// to defaults, or nil if the last load succeeded.
func LastLoadError() error {
	return errLastLoad
}

// ConfigFilePath returns the path of the config file the cached configuration
// was loaded from, or "" when defaults are in effect.
//
//nolint:revive // ConfigFilePath is more descriptive than FilePath for external callers
func ConfigFilePath() string {
	return configPath
}

// SetConfigFilePathOverride forces subsequent loads to read the given config
// file exclusively. The cached configuration is cleared so the next Load()
// picks up the override.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
	ResetCache()
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
	ResetCache()
}

// ResetCache clears the cached configuration and last load error while
// preserving path overrides. The next Load() re-reads from disk.
func ResetCache() {
	globalConfig = nil
	configPath = ""
	errLastLoad = nil
}

// Reset clears the cached configuration and all overrides.
// Call from test cleanup to restore defaults.
func Reset() {
	ResetCache()
	configFilePathOverride = ""
	configDirOverride = ""
}
