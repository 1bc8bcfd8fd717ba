// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/winepack/winepack/internal/issue"
	"github.com/winepack/winepack/pkg/cueutil"
)

const (
	// AppName is the application name.
	AppName = "winepack"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes the environment overrides, e.g. WINEPACK_LOCALE.
	EnvPrefix = "WINEPACK"
)

// ErrConfigExists is returned by CreateDefaultConfig when the file is
// already present and force is false.
var ErrConfigExists = errors.New("config file already exists")

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the winepack configuration directory: %APPDATA% on
// Windows, ~/Library/Application Support on macOS and $XDG_CONFIG_HOME
// (defaulting to ~/.config) elsewhere.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
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

// FilePath returns the config file inside dir, or inside ConfigDir when dir
// is empty.
func FilePath(dir string) (string, error) {
	dir, err := configDirWithOverride(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// loadWithOptions performs option-driven config loading. The returned path
// is empty when no file was found and only defaults and environment
// overrides apply.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	fsys := opts.fs()
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("locale", defaults.Locale)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("report.format", defaults.Report.Format)
	v.SetDefault("runner.default_proton_version", defaults.Runner.DefaultProtonVersion)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath := ""

	if opts.ConfigFilePath != "" {
		if !fileExists(fsys, opts.ConfigFilePath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Use 'winepack config path' to see the default location").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		cuePath, err := FilePath(opts.ConfigDirPath)
		if err != nil {
			return nil, "", err
		}
		if fileExists(fsys, cuePath) {
			resolvedPath = cuePath
		}
	}

	if resolvedPath != "" {
		if err := loadCUEIntoViper(fsys, v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	// Environment overrides bypass the CUE schema.
	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithSuggestion("Check the WINEPACK_* environment variables").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// loadCUEIntoViper validates the file at path against #Config and merges it
// into v. Optional fields stay optional, so concreteness is not required.
func loadCUEIntoViper(fsys afero.Fs, v *viper.Viper, path string) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	result, err := cueutil.ParseAndDecodeString[map[string]any](configSchema, data, "#Config",
		cueutil.WithConcrete(false),
		cueutil.WithFilename(path),
	)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(*result.Value); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

func fileExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default configuration into dir (ConfigDir
// when empty) and returns the file path. An existing file is left untouched
// and ErrConfigExists returned unless force is set.
func CreateDefaultConfig(fsys afero.Fs, dir string, force bool) (string, error) {
	cfgPath, err := FilePath(dir)
	if err != nil {
		return "", err
	}

	if !force && fileExists(fsys, cfgPath) {
		return cfgPath, ErrConfigExists
	}

	return cfgPath, Save(fsys, cfgPath, DefaultConfig())
}

// Save writes cfg to path as CUE, creating parent directories.
func Save(fsys afero.Fs, path string, cfg *Config) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := afero.WriteFile(fsys, path, []byte(GenerateCUE(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// winepack configuration file\n\n")

	if cfg.Locale != "" {
		fmt.Fprintf(&sb, "locale: %q\n\n", cfg.Locale)
	} else {
		sb.WriteString("// locale: \"pt-BR\" // defaults to LC_ALL / LC_MESSAGES / LANG\n\n")
	}

	sb.WriteString("ui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	sb.WriteString("\nreport: {\n")
	fmt.Fprintf(&sb, "\tformat: %q\n", cfg.Report.Format)
	sb.WriteString("}\n")

	sb.WriteString("\nrunner: {\n")
	fmt.Fprintf(&sb, "\tdefault_proton_version: %q\n", cfg.Runner.DefaultProtonVersion)
	sb.WriteString("}\n")

	return sb.String()
}
