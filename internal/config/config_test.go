// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/winepack/winepack/internal/issue"
	"github.com/winepack/winepack/pkg/i18n"
)

const testDir = "/home/user/.config/winepack"

func writeConfig(t *testing.T, fsys afero.Fs, content string) string {
	t.Helper()
	path := filepath.Join(testDir, "config.cue")
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("ColorScheme = %q, want auto", cfg.UI.ColorScheme)
	}
	if cfg.Report.Format != ReportFormatText {
		t.Errorf("Report.Format = %q, want text", cfg.Report.Format)
	}
	if cfg.UI.Verbose || cfg.Locale != "" || cfg.Runner.DefaultProtonVersion != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Parallel()

	cfg, path, err := NewProvider().LoadWithPath(context.Background(), LoadOptions{
		ConfigDirPath: testDir,
		Fs:            afero.NewMemMapFs(),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want empty", path)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_FromFile(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	want := writeConfig(t, fsys, `
locale: "pt-BR"
ui: color_scheme: "dark"
report: format: "markdown"
runner: default_proton_version: "GE-Proton9-20"
`)

	cfg, path, err := NewProvider().LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: testDir, Fs: fsys})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if cfg.Locale != "pt-BR" || cfg.UI.ColorScheme != ColorSchemeDark || cfg.Report.Format != ReportFormatMarkdown {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Runner.DefaultProtonVersion != "GE-Proton9-20" {
		t.Errorf("DefaultProtonVersion = %q", cfg.Runner.DefaultProtonVersion)
	}
	// Unset keys keep their defaults.
	if cfg.UI.Verbose {
		t.Error("Verbose should default to false")
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/tmp/custom.cue", []byte(`ui: verbose: true`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: "/tmp/custom.cue", Fs: fsys})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.UI.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		opts    LoadOptions
		wantMsg string
	}{
		{
			name:    "missing explicit file",
			opts:    LoadOptions{ConfigFilePath: "/nope/config.cue"},
			wantMsg: "config file not found",
		},
		{
			name:    "syntax error",
			content: "ui: {",
			opts:    LoadOptions{ConfigDirPath: testDir},
		},
		{
			name:    "schema violation",
			content: `report: format: "html"`,
			opts:    LoadOptions{ConfigDirPath: testDir},
			wantMsg: "format",
		},
		{
			name:    "unknown key",
			content: `container_engine: "podman"`,
			opts:    LoadOptions{ConfigDirPath: testDir},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fsys := afero.NewMemMapFs()
			if tt.content != "" {
				writeConfig(t, fsys, tt.content)
			}
			opts := tt.opts
			opts.Fs = fsys

			_, err := NewProvider().Load(context.Background(), opts)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("error should be *issue.ActionableError, got %T", err)
			}
			if ae.IssueID != issue.ConfigLoadFailedId {
				t.Errorf("IssueID = %d, want ConfigLoadFailedId", ae.IssueID)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewProvider().Load(ctx, LoadOptions{Fs: afero.NewMemMapFs()}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

// Environment tests use t.Setenv and cannot run in parallel.
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WINEPACK_LOCALE", "pt_BR.UTF-8")
	t.Setenv("WINEPACK_REPORT_FORMAT", "json")
	t.Setenv("WINEPACK_UI_VERBOSE", "true")

	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, `report: format: "markdown"`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: testDir, Fs: fsys})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Report.Format != ReportFormatJSON {
		t.Errorf("Report.Format = %q, want json (env wins over file)", cfg.Report.Format)
	}
	if !cfg.UI.Verbose {
		t.Error("Verbose should come from WINEPACK_UI_VERBOSE")
	}
	if got := cfg.ResolveLocale(func(string) string { return "" }); got != i18n.PtBR {
		t.Errorf("ResolveLocale() = %q, want pt-BR", got)
	}
}

func TestLoad_InvalidEnvOverride(t *testing.T) {
	t.Setenv("WINEPACK_UI_COLOR_SCHEME", "neon")

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: testDir, Fs: afero.NewMemMapFs()})
	if !errors.Is(err, ErrInvalidColorScheme) {
		t.Errorf("err = %v, want ErrInvalidColorScheme", err)
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Locale: "pt-BR",
		UI:     UIConfig{ColorScheme: ColorSchemeLight, Verbose: true},
		Report: ReportConfig{Format: ReportFormatJSON},
		Runner: RunnerConfig{DefaultProtonVersion: "Proton 9.0"},
	}

	fsys := afero.NewMemMapFs()
	path := filepath.Join(testDir, "config.cue")
	if err := Save(fsys, path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path, Fs: fsys})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestGenerateCUE_DefaultsLoad(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, GenerateCUE(DefaultConfig()))

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: testDir, Fs: fsys})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	path, err := CreateDefaultConfig(fsys, testDir, false)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if path != filepath.Join(testDir, "config.cue") {
		t.Errorf("path = %q", path)
	}

	if _, err := CreateDefaultConfig(fsys, testDir, false); !errors.Is(err, ErrConfigExists) {
		t.Errorf("second call err = %v, want ErrConfigExists", err)
	}

	if err := afero.WriteFile(fsys, path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := CreateDefaultConfig(fsys, testDir, true); err != nil {
		t.Fatalf("forced call error = %v", err)
	}
	data, _ := afero.ReadFile(fsys, path)
	if string(data) != GenerateCUE(DefaultConfig()) {
		t.Errorf("forced call did not overwrite:\n%s", data)
	}
}

func TestConfigDir_Override(t *testing.T) {
	SetConfigDirOverride("/custom/dir")
	t.Cleanup(Reset)

	dir, err := ConfigDir()
	if err != nil || dir != "/custom/dir" {
		t.Errorf("ConfigDir() = %q, %v", dir, err)
	}

	path, err := FilePath("")
	if err != nil || path != "/custom/dir/config.cue" {
		t.Errorf("FilePath(\"\") = %q, %v", path, err)
	}
}
