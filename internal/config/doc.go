// SPDX-License-Identifier: MPL-2.0

// Package config loads application settings from CUE files through Viper.
//
// Settings come from ~/.config/reposeed/config.cue (XDG equivalent on Linux,
// ~/Library/Application Support/reposeed/config.cue on macOS,
// %APPDATA%\reposeed\config.cue on Windows), from a config.cue in the working
// directory, or from an explicit --config path. They cover the target
// repository root, repository layout selection, recursive scanning, and UI
// settings.
//
// Every file is unified with the embedded CUE schema (config_schema.cue)
// before use, so type errors and unknown fields are rejected with the
// offending field named in the message.
package config
