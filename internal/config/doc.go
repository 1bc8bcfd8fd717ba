// SPDX-License-Identifier: MPL-2.0

// Package config loads the winepack preferences using Viper with CUE as the
// file format.
//
// The file lives at $XDG_CONFIG_HOME/winepack/config.cue on Linux (with the
// usual macOS and Windows equivalents), is validated against the embedded
// config_schema.cue, and every key can be overridden through a WINEPACK_
// environment variable, e.g. WINEPACK_REPORT_FORMAT=json.
package config
