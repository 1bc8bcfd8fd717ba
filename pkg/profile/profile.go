// SPDX-License-Identifier: MPL-2.0

package profile

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

const (
	// DefaultWindowsVersion is the Windows version a new prefix reports.
	DefaultWindowsVersion = "win10"
	// DefaultRuntime is the primary runtime of a new profile.
	DefaultRuntime = "proton"
)

// ErrInvalidProfile is the sentinel error wrapped by InvalidProfileError.
var ErrInvalidProfile = errors.New("invalid profile")

type (
	// Profile is the full configuration of one game.
	Profile struct {
		GameName string `json:"game_name,omitempty" yaml:"game_name,omitempty" toml:"game_name,omitempty"`
		// ExeHash is the SHA-256 of the main executable, lowercase hex.
		ExeHash string `json:"exe_hash,omitempty" yaml:"exe_hash,omitempty" toml:"exe_hash,omitempty"`
		// RelativeExePath locates the main executable under the game root,
		// e.g. "./bin/game.exe".
		RelativeExePath string `json:"relative_exe_path,omitempty" yaml:"relative_exe_path,omitempty" toml:"relative_exe_path,omitempty"`
		// IntegrityFiles must exist under the game root before launch.
		IntegrityFiles          []string           `json:"integrity_files,omitempty" yaml:"integrity_files,omitempty" toml:"integrity_files,omitempty"`
		FolderMounts            []FolderMount      `json:"folder_mounts,omitempty" yaml:"folder_mounts,omitempty" toml:"folder_mounts,omitempty"`
		Environment             Environment        `json:"environment" yaml:"environment" toml:"environment"`
		Compatibility           Compatibility      `json:"compatibility" yaml:"compatibility" toml:"compatibility"`
		RegistryKeys            []RegistryKey      `json:"registry_keys,omitempty" yaml:"registry_keys,omitempty" toml:"registry_keys,omitempty"`
		ExtraSystemDependencies []SystemDependency `json:"extra_system_dependencies,omitempty" yaml:"extra_system_dependencies,omitempty" toml:"extra_system_dependencies,omitempty"`
		Winecfg                 Winecfg            `json:"winecfg" yaml:"winecfg" toml:"winecfg"`
		Runner                  Runner             `json:"runner" yaml:"runner" toml:"runner"`
		Requirements            Requirements       `json:"requirements" yaml:"requirements" toml:"requirements"`
	}

	// FolderMount exposes a folder under the game root at a Windows path
	// inside the prefix.
	FolderMount struct {
		SourceRelativePath    string `json:"source_relative_path,omitempty" yaml:"source_relative_path,omitempty" toml:"source_relative_path,omitempty"`
		TargetWindowsPath     string `json:"target_windows_path,omitempty" yaml:"target_windows_path,omitempty" toml:"target_windows_path,omitempty"`
		CreateSourceIfMissing bool   `json:"create_source_if_missing,omitempty" yaml:"create_source_if_missing,omitempty" toml:"create_source_if_missing,omitempty"`
	}

	Environment struct {
		CustomVars map[string]string `json:"custom_vars,omitempty" yaml:"custom_vars,omitempty" toml:"custom_vars,omitempty"`
		Gamescope  Gamescope         `json:"gamescope" yaml:"gamescope" toml:"gamescope"`
	}

	// Gamescope holds the compositor settings. Numeric fields are kept as
	// typed text; blank means unset.
	Gamescope struct {
		State             FeatureState        `json:"state,omitempty" yaml:"state,omitempty" toml:"state,omitempty"`
		GameWidth         string              `json:"game_width,omitempty" yaml:"game_width,omitempty" toml:"game_width,omitempty"`
		GameHeight        string              `json:"game_height,omitempty" yaml:"game_height,omitempty" toml:"game_height,omitempty"`
		OutputWidth       string              `json:"output_width,omitempty" yaml:"output_width,omitempty" toml:"output_width,omitempty"`
		OutputHeight      string              `json:"output_height,omitempty" yaml:"output_height,omitempty" toml:"output_height,omitempty"`
		EnableLimiter     bool                `json:"enable_limiter,omitempty" yaml:"enable_limiter,omitempty" toml:"enable_limiter,omitempty"`
		FPSLimiter        string              `json:"fps_limiter,omitempty" yaml:"fps_limiter,omitempty" toml:"fps_limiter,omitempty"`
		FPSLimiterNoFocus string              `json:"fps_limiter_no_focus,omitempty" yaml:"fps_limiter_no_focus,omitempty" toml:"fps_limiter_no_focus,omitempty"`
		WindowType        GamescopeWindowType `json:"window_type,omitempty" yaml:"window_type,omitempty" toml:"window_type,omitempty"`
		UpscaleMethod     UpscaleMethod       `json:"upscale_method,omitempty" yaml:"upscale_method,omitempty" toml:"upscale_method,omitempty"`
		AdditionalOptions string              `json:"additional_options,omitempty" yaml:"additional_options,omitempty" toml:"additional_options,omitempty"`
		ForceGrabCursor   bool                `json:"force_grab_cursor,omitempty" yaml:"force_grab_cursor,omitempty" toml:"force_grab_cursor,omitempty"`
	}

	Compatibility struct {
		WrapperCommands []WrapperCommand `json:"wrapper_commands,omitempty" yaml:"wrapper_commands,omitempty" toml:"wrapper_commands,omitempty"`
	}

	// WrapperCommand runs in front of the game, e.g. "mangohud".
	WrapperCommand struct {
		State      FeatureState `json:"state,omitempty" yaml:"state,omitempty" toml:"state,omitempty"`
		Executable string       `json:"executable,omitempty" yaml:"executable,omitempty" toml:"executable,omitempty"`
		Args       string       `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
	}

	// RegistryKey is one value written into the prefix registry.
	RegistryKey struct {
		Path      string `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`
		Name      string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
		ValueType string `json:"value_type,omitempty" yaml:"value_type,omitempty" toml:"value_type,omitempty"`
		Value     string `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	}

	// SystemDependency is a host requirement probed before launch by
	// commands on PATH, environment variables and paths.
	SystemDependency struct {
		Name          string       `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
		CheckCommands []string     `json:"check_commands,omitempty" yaml:"check_commands,omitempty" toml:"check_commands,omitempty"`
		CheckEnvVars  []string     `json:"check_env_vars,omitempty" yaml:"check_env_vars,omitempty" toml:"check_env_vars,omitempty"`
		CheckPaths    []string     `json:"check_paths,omitempty" yaml:"check_paths,omitempty" toml:"check_paths,omitempty"`
		State         FeatureState `json:"state,omitempty" yaml:"state,omitempty" toml:"state,omitempty"`
	}

	Winecfg struct {
		DLLOverrides   []DLLOverride   `json:"dll_overrides,omitempty" yaml:"dll_overrides,omitempty" toml:"dll_overrides,omitempty"`
		DesktopFolders []DesktopFolder `json:"desktop_folders,omitempty" yaml:"desktop_folders,omitempty" toml:"desktop_folders,omitempty"`
		Drives         []Drive         `json:"drives,omitempty" yaml:"drives,omitempty" toml:"drives,omitempty"`
		VirtualDesktop VirtualDesktop  `json:"virtual_desktop" yaml:"virtual_desktop" toml:"virtual_desktop"`
		WindowsVersion string          `json:"windows_version,omitempty" yaml:"windows_version,omitempty" toml:"windows_version,omitempty"`
	}

	DLLOverride struct {
		DLL  string  `json:"dll,omitempty" yaml:"dll,omitempty" toml:"dll,omitempty"`
		Mode DLLMode `json:"mode,omitempty" yaml:"mode,omitempty" toml:"mode,omitempty"`
	}

	// DesktopFolder redirects a Windows shell folder (FolderKey, e.g.
	// "Documents") to a host directory.
	DesktopFolder struct {
		FolderKey    string `json:"folder_key,omitempty" yaml:"folder_key,omitempty" toml:"folder_key,omitempty"`
		ShortcutName string `json:"shortcut_name,omitempty" yaml:"shortcut_name,omitempty" toml:"shortcut_name,omitempty"`
		LinuxPath    string `json:"linux_path,omitempty" yaml:"linux_path,omitempty" toml:"linux_path,omitempty"`
	}

	// Drive is an extra Wine drive letter. Blank optional fields are unset.
	Drive struct {
		Letter    string    `json:"letter,omitempty" yaml:"letter,omitempty" toml:"letter,omitempty"`
		HostPath  string    `json:"host_path,omitempty" yaml:"host_path,omitempty" toml:"host_path,omitempty"`
		DriveType DriveType `json:"drive_type,omitempty" yaml:"drive_type,omitempty" toml:"drive_type,omitempty"`
		Label     string    `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
		Serial    string    `json:"serial,omitempty" yaml:"serial,omitempty" toml:"serial,omitempty"`
	}

	VirtualDesktop struct {
		State VirtualDesktopState `json:"state" yaml:"state" toml:"state"`
		// Resolution is "WIDTHxHEIGHT"; nil leaves the choice to Wine.
		Resolution *string `json:"resolution,omitempty" yaml:"resolution,omitempty" toml:"resolution,omitempty"`
	}

	VirtualDesktopState struct {
		State          FeatureState `json:"state,omitempty" yaml:"state,omitempty" toml:"state,omitempty"`
		UseWineDefault bool         `json:"use_wine_default,omitempty" yaml:"use_wine_default,omitempty" toml:"use_wine_default,omitempty"`
	}

	Runner struct {
		ProtonVersion string `json:"proton_version,omitempty" yaml:"proton_version,omitempty" toml:"proton_version,omitempty"`
	}

	// Requirements mirrors parts of the profile for consumers that only
	// read requirements. WithGamescopeState keeps Gamescope in sync.
	Requirements struct {
		Runtime    RuntimeRequirements `json:"runtime" yaml:"runtime" toml:"runtime"`
		Winetricks []string            `json:"winetricks,omitempty" yaml:"winetricks,omitempty" toml:"winetricks,omitempty"`
		Gamescope  FeatureState        `json:"gamescope,omitempty" yaml:"gamescope,omitempty" toml:"gamescope,omitempty"`
	}

	RuntimeRequirements struct {
		Primary       string   `json:"primary,omitempty" yaml:"primary,omitempty" toml:"primary,omitempty"`
		FallbackOrder []string `json:"fallback_order,omitempty" yaml:"fallback_order,omitempty" toml:"fallback_order,omitempty"`
	}

	// InvalidProfileError aggregates the structural problems of a profile.
	InvalidProfileError struct {
		FieldErrors []error
	}
)

// Default returns the profile a new session starts from: every collection
// empty, Gamescope and the virtual desktop off.
func Default() Profile {
	return Profile{
		Environment: Environment{
			Gamescope: Gamescope{
				State:         FeatureOptionalOff,
				WindowType:    WindowFullscreen,
				UpscaleMethod: UpscaleFSR,
			},
		},
		Winecfg: Winecfg{
			VirtualDesktop: VirtualDesktop{
				State: VirtualDesktopState{State: FeatureOptionalOff, UseWineDefault: true},
			},
			WindowsVersion: DefaultWindowsVersion,
		},
		Requirements: Requirements{
			Runtime:   RuntimeRequirements{Primary: DefaultRuntime},
			Gamescope: FeatureOptionalOff,
		},
	}
}

// Clone returns a deep copy of p.
func (p Profile) Clone() Profile {
	c := p
	c.IntegrityFiles = slices.Clone(p.IntegrityFiles)
	c.FolderMounts = slices.Clone(p.FolderMounts)
	c.Environment.CustomVars = maps.Clone(p.Environment.CustomVars)
	c.Compatibility.WrapperCommands = slices.Clone(p.Compatibility.WrapperCommands)
	c.RegistryKeys = slices.Clone(p.RegistryKeys)

	if p.ExtraSystemDependencies != nil {
		c.ExtraSystemDependencies = make([]SystemDependency, len(p.ExtraSystemDependencies))
		for i, dep := range p.ExtraSystemDependencies {
			c.ExtraSystemDependencies[i] = dep.clone()
		}
	}

	c.Winecfg.DLLOverrides = slices.Clone(p.Winecfg.DLLOverrides)
	c.Winecfg.DesktopFolders = slices.Clone(p.Winecfg.DesktopFolders)
	c.Winecfg.Drives = slices.Clone(p.Winecfg.Drives)
	if p.Winecfg.VirtualDesktop.Resolution != nil {
		res := *p.Winecfg.VirtualDesktop.Resolution
		c.Winecfg.VirtualDesktop.Resolution = &res
	}

	c.Requirements.Runtime.FallbackOrder = slices.Clone(p.Requirements.Runtime.FallbackOrder)
	c.Requirements.Winetricks = slices.Clone(p.Requirements.Winetricks)
	return c
}

// Validate checks the enumerated fields of p. It does not judge whether the
// profile is ready to package.
func (p Profile) Validate() error {
	var errs []error
	check := func(field string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	gs := p.Environment.Gamescope
	check("environment.gamescope.state", gs.State.Validate())
	check("environment.gamescope.window_type", gs.WindowType.Validate())
	check("environment.gamescope.upscale_method", gs.UpscaleMethod.Validate())

	for i, w := range p.Compatibility.WrapperCommands {
		check(fmt.Sprintf("compatibility.wrapper_commands[%d].state", i), w.State.Validate())
	}
	for i, dep := range p.ExtraSystemDependencies {
		check(fmt.Sprintf("extra_system_dependencies[%d].state", i), dep.State.Validate())
	}
	for i, o := range p.Winecfg.DLLOverrides {
		check(fmt.Sprintf("winecfg.dll_overrides[%d].mode", i), o.Mode.Validate())
	}
	for i, d := range p.Winecfg.Drives {
		check(fmt.Sprintf("winecfg.drives[%d].drive_type", i), d.DriveType.Validate())
	}
	check("winecfg.virtual_desktop.state.state", p.Winecfg.VirtualDesktop.State.State.Validate())
	check("requirements.gamescope", p.Requirements.Gamescope.Validate())

	if len(errs) > 0 {
		return &InvalidProfileError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidProfileError.
func (e *InvalidProfileError) Error() string {
	if len(e.FieldErrors) == 1 {
		return "invalid profile: " + e.FieldErrors[0].Error()
	}
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid profile: %d field errors:\n  %s", len(e.FieldErrors), strings.Join(msgs, "\n  "))
}

// Unwrap exposes ErrInvalidProfile and every field error to errors.Is().
func (e *InvalidProfileError) Unwrap() []error {
	return append([]error{ErrInvalidProfile}, e.FieldErrors...)
}
