// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// LayoutDefault is the standard Maven2 repository layout.
	// Defined locally to avoid coupling config to pkg/repo;
	// the command layer casts to repo.Layout at the boundary.
	LayoutDefault LayoutKind = "default"
	// LayoutEnhanced is a legacy alias for the default layout.
	LayoutEnhanced LayoutKind = "enhanced"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultRepository is the repository root used when neither the config
	// file nor the --repository flag provides one.
	DefaultRepository RepositoryPath = "target/local_repo"
)

var (
	// ErrInvalidLayoutKind is returned when a LayoutKind value is not recognized.
	ErrInvalidLayoutKind = errors.New("invalid layout kind")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidRepositoryPath is returned when a RepositoryPath value is whitespace-only.
	ErrInvalidRepositoryPath = errors.New("invalid repository path")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// LayoutKind specifies the directory layout convention of the target repository.
	LayoutKind string

	// InvalidLayoutKindError is returned when a LayoutKind value is not recognized.
	// It wraps ErrInvalidLayoutKind for errors.Is() compatibility.
	InvalidLayoutKindError struct {
		Value LayoutKind
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// RepositoryPath represents a filesystem path to the root of the target
	// repository. The zero value ("") is valid and means "use the default
	// repository root". Non-zero values must not be whitespace-only.
	RepositoryPath string

	// InvalidRepositoryPathError is returned when a RepositoryPath value is
	// non-empty but whitespace-only.
	InvalidRepositoryPathError struct {
		Value RepositoryPath
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Repository is the root directory of the target repository
		Repository RepositoryPath `json:"repository" mapstructure:"repository"`
		// Layout selects the repository directory layout
		Layout LayoutKind `json:"layout" mapstructure:"layout"`
		// Recursive controls whether directory scans descend into subdirectories
		Recursive bool `json:"recursive" mapstructure:"recursive"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// String returns the string representation of the LayoutKind.
func (k LayoutKind) String() string { return string(k) }

// IsValid returns whether the LayoutKind is one of the defined layout kinds,
// and a list of validation errors if it is not.
func (k LayoutKind) IsValid() (bool, []error) {
	switch k {
	case LayoutDefault, LayoutEnhanced:
		return true, nil
	default:
		return false, []error{&InvalidLayoutKindError{Value: k}}
	}
}

// Error implements the error interface for InvalidLayoutKindError.
func (e *InvalidLayoutKindError) Error() string {
	return fmt.Sprintf("invalid layout kind %q (valid: default, enhanced)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLayoutKindError) Unwrap() error {
	return ErrInvalidLayoutKind
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the RepositoryPath.
func (p RepositoryPath) String() string { return string(p) }

// IsValid returns whether the RepositoryPath is valid.
// The zero value ("") is valid (means "use the default repository root").
// Non-zero values must not be whitespace-only.
func (p RepositoryPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidRepositoryPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidRepositoryPathError.
func (e *InvalidRepositoryPathError) Error() string {
	return fmt.Sprintf("invalid repository path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidRepositoryPath for errors.Is() compatibility.
func (e *InvalidRepositoryPathError) Unwrap() error { return ErrInvalidRepositoryPath }

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to Repository.IsValid(), Layout.IsValid(), and UI.IsValid().
// Recursive is a bool field and needs no validation.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Repository.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Layout.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Repository: DefaultRepository,
		Layout:     LayoutDefault,
		Recursive:  false,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
