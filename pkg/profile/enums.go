// SPDX-License-Identifier: MPL-2.0

package profile

import (
	"errors"
	"fmt"
)

const (
	// FeatureMandatoryOn is enabled and cannot be turned off by the player.
	FeatureMandatoryOn FeatureState = "MandatoryOn"
	// FeatureMandatoryOff is disabled and cannot be turned on by the player.
	FeatureMandatoryOff FeatureState = "MandatoryOff"
	// FeatureOptionalOn is enabled by default; the player may turn it off.
	FeatureOptionalOn FeatureState = "OptionalOn"
	// FeatureOptionalOff is disabled by default; the player may turn it on.
	FeatureOptionalOff FeatureState = "OptionalOff"

	DLLModeBuiltin       DLLMode = "builtin"
	DLLModeNative        DLLMode = "native"
	DLLModeBuiltinNative DLLMode = "builtin,native"
	DLLModeNativeBuiltin DLLMode = "native,builtin"
	DLLModeDisabled      DLLMode = "disabled"

	DriveTypeHD      DriveType = "hd"
	DriveTypeNetwork DriveType = "network"
	DriveTypeCDROM   DriveType = "cdrom"
	DriveTypeFloppy  DriveType = "floppy"

	WindowFullscreen GamescopeWindowType = "fullscreen"
	WindowBorderless GamescopeWindowType = "borderless"
	WindowWindowed   GamescopeWindowType = "windowed"

	UpscaleFSR     UpscaleMethod = "fsr"
	UpscaleNIS     UpscaleMethod = "nis"
	UpscaleInteger UpscaleMethod = "integer"
	UpscaleStretch UpscaleMethod = "stretch"
)

var (
	// ErrInvalidFeatureState is the sentinel error wrapped by InvalidFeatureStateError.
	ErrInvalidFeatureState = errors.New("invalid feature state")
	// ErrInvalidDLLMode is the sentinel error wrapped by InvalidDLLModeError.
	ErrInvalidDLLMode = errors.New("invalid dll override mode")
	// ErrInvalidDriveType is the sentinel error wrapped by InvalidDriveTypeError.
	ErrInvalidDriveType = errors.New("invalid drive type")
	// ErrInvalidWindowType is the sentinel error wrapped by InvalidWindowTypeError.
	ErrInvalidWindowType = errors.New("invalid gamescope window type")
	// ErrInvalidUpscaleMethod is the sentinel error wrapped by InvalidUpscaleMethodError.
	ErrInvalidUpscaleMethod = errors.New("invalid upscale method")
)

type (
	// FeatureState combines on/off with whether the player may change it.
	// The zero value means unset and behaves as off.
	FeatureState string

	// DLLMode is the load order Wine uses for an overridden DLL.
	DLLMode string

	// DriveType is the kind Wine reports for an extra drive.
	DriveType string

	// GamescopeWindowType selects how Gamescope presents its window.
	GamescopeWindowType string

	// UpscaleMethod selects the Gamescope upscaler.
	UpscaleMethod string

	// InvalidFeatureStateError is returned when a FeatureState value is not recognized.
	InvalidFeatureStateError struct {
		Value FeatureState
	}

	// InvalidDLLModeError is returned when a DLLMode value is not recognized.
	InvalidDLLModeError struct {
		Value DLLMode
	}

	// InvalidDriveTypeError is returned when a DriveType value is not recognized.
	InvalidDriveTypeError struct {
		Value DriveType
	}

	// InvalidWindowTypeError is returned when a GamescopeWindowType value is not recognized.
	InvalidWindowTypeError struct {
		Value GamescopeWindowType
	}

	// InvalidUpscaleMethodError is returned when an UpscaleMethod value is not recognized.
	InvalidUpscaleMethodError struct {
		Value UpscaleMethod
	}
)

// FeatureStates lists every non-zero FeatureState.
func FeatureStates() []FeatureState {
	return []FeatureState{FeatureMandatoryOn, FeatureMandatoryOff, FeatureOptionalOn, FeatureOptionalOff}
}

func (s FeatureState) String() string { return string(s) }

// IsEnabled reports whether the feature is on.
func (s FeatureState) IsEnabled() bool {
	return s == FeatureMandatoryOn || s == FeatureOptionalOn
}

// IsMandatory reports whether the player is locked out of changing it.
func (s FeatureState) IsMandatory() bool {
	return s == FeatureMandatoryOn || s == FeatureMandatoryOff
}

// Validate returns nil for a known state or the zero value.
func (s FeatureState) Validate() error {
	switch s {
	case "", FeatureMandatoryOn, FeatureMandatoryOff, FeatureOptionalOn, FeatureOptionalOff:
		return nil
	default:
		return &InvalidFeatureStateError{Value: s}
	}
}

func (m DLLMode) String() string { return string(m) }

// Validate returns nil for a known mode or the zero value.
func (m DLLMode) Validate() error {
	switch m {
	case "", DLLModeBuiltin, DLLModeNative, DLLModeBuiltinNative, DLLModeNativeBuiltin, DLLModeDisabled:
		return nil
	default:
		return &InvalidDLLModeError{Value: m}
	}
}

func (t DriveType) String() string { return string(t) }

// Validate returns nil for a known drive type or the zero value.
func (t DriveType) Validate() error {
	switch t {
	case "", DriveTypeHD, DriveTypeNetwork, DriveTypeCDROM, DriveTypeFloppy:
		return nil
	default:
		return &InvalidDriveTypeError{Value: t}
	}
}

func (w GamescopeWindowType) String() string { return string(w) }

// Validate returns nil for a known window type or the zero value.
func (w GamescopeWindowType) Validate() error {
	switch w {
	case "", WindowFullscreen, WindowBorderless, WindowWindowed:
		return nil
	default:
		return &InvalidWindowTypeError{Value: w}
	}
}

func (u UpscaleMethod) String() string { return string(u) }

// Validate returns nil for a known upscaler or the zero value.
func (u UpscaleMethod) Validate() error {
	switch u {
	case "", UpscaleFSR, UpscaleNIS, UpscaleInteger, UpscaleStretch:
		return nil
	default:
		return &InvalidUpscaleMethodError{Value: u}
	}
}

func (e *InvalidFeatureStateError) Error() string {
	return fmt.Sprintf("invalid feature state %q (valid: MandatoryOn, MandatoryOff, OptionalOn, OptionalOff)", e.Value)
}

// Unwrap returns ErrInvalidFeatureState for errors.Is() compatibility.
func (e *InvalidFeatureStateError) Unwrap() error { return ErrInvalidFeatureState }

func (e *InvalidDLLModeError) Error() string {
	return fmt.Sprintf("invalid dll override mode %q (valid: builtin, native, builtin,native, native,builtin, disabled)", e.Value)
}

// Unwrap returns ErrInvalidDLLMode for errors.Is() compatibility.
func (e *InvalidDLLModeError) Unwrap() error { return ErrInvalidDLLMode }

func (e *InvalidDriveTypeError) Error() string {
	return fmt.Sprintf("invalid drive type %q (valid: hd, network, cdrom, floppy)", e.Value)
}

// Unwrap returns ErrInvalidDriveType for errors.Is() compatibility.
func (e *InvalidDriveTypeError) Unwrap() error { return ErrInvalidDriveType }

func (e *InvalidWindowTypeError) Error() string {
	return fmt.Sprintf("invalid gamescope window type %q (valid: fullscreen, borderless, windowed)", e.Value)
}

// Unwrap returns ErrInvalidWindowType for errors.Is() compatibility.
func (e *InvalidWindowTypeError) Unwrap() error { return ErrInvalidWindowType }

func (e *InvalidUpscaleMethodError) Error() string {
	return fmt.Sprintf("invalid upscale method %q (valid: fsr, nis, integer, stretch)", e.Value)
}

// Unwrap returns ErrInvalidUpscaleMethod for errors.Is() compatibility.
func (e *InvalidUpscaleMethodError) Unwrap() error { return ErrInvalidUpscaleMethod }
