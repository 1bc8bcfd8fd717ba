// SPDX-License-Identifier: MPL-2.0

package profile

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/winepack/winepack/pkg/cueutil"
)

func sampleProfile() Profile {
	res := "1920x1080"
	p := Default()
	p.GameName = "Demo"
	p.ExeHash = strings.Repeat("ab", 32)
	p.RelativeExePath = "./bin/game.exe"
	p.IntegrityFiles = []string{"./data/base.pak"}
	p.FolderMounts = []FolderMount{{SourceRelativePath: "./saves", TargetWindowsPath: `C:\users\steamuser\Documents\Demo`, CreateSourceIfMissing: true}}
	p.Environment.CustomVars = map[string]string{"DXVK_HUD": "fps"}
	p.Environment.Gamescope.GameWidth = "1280"
	p.Environment.Gamescope.GameHeight = "720"
	p.Compatibility.WrapperCommands = []WrapperCommand{{State: FeatureOptionalOn, Executable: "mangohud", Args: "--dlsym"}}
	p.RegistryKeys = []RegistryKey{{Path: `HKCU\Software\Demo`, Name: "Lang", ValueType: "REG_SZ", Value: "en"}}
	p.ExtraSystemDependencies = []SystemDependency{{Name: "vulkan", CheckCommands: []string{"vulkaninfo"}, State: FeatureMandatoryOn}}
	p.Winecfg.DLLOverrides = []DLLOverride{{DLL: "d3d11", Mode: DLLModeNativeBuiltin}}
	p.Winecfg.DesktopFolders = []DesktopFolder{{FolderKey: "Documents", ShortcutName: "Documents", LinuxPath: "/home/user/Documents"}}
	p.Winecfg.Drives = []Drive{{Letter: "D", HostPath: "/mnt/cdrom", DriveType: DriveTypeCDROM, Label: "DEMO", Serial: "1234ABCD"}}
	p.Winecfg.VirtualDesktop = VirtualDesktop{State: VirtualDesktopState{State: FeatureOptionalOn}, Resolution: &res}
	p.Runner.ProtonVersion = "GE-Proton9-20"
	p.Requirements.Winetricks = []string{"vcrun2019"}
	return p
}

func TestLoader_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"demo.cue", "demo.json", "demo.toml", "demo.yaml", "demo.yml"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			loader := NewLoader(afero.NewMemMapFs())
			want := sampleProfile()
			path := "/profiles/" + name
			if err := loader.Save(path, want); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			if !loader.Exists(path) {
				t.Fatal("Exists() = false after Save")
			}

			got, err := loader.Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("round trip mismatch\n got: %+v\nwant: %+v", got, want)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	t.Parallel()

	tests := map[string]Format{
		"a.cue":     FormatCUE,
		"a.JSON":    FormatJSON,
		"a.toml":    FormatTOML,
		"a.yaml":    FormatYAML,
		"dir/a.yml": FormatYAML,
	}
	for path, want := range tests {
		got, err := FormatForPath(path)
		if err != nil || got != want {
			t.Errorf("FormatForPath(%q) = %q, %v; want %q", path, got, err, want)
		}
	}

	if _, err := FormatForPath("profile.ini"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatForPath(.ini) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   Format
		data     string
		sentinel error
	}{
		{"json unknown field", FormatJSON, `{"game_name": "x", "gamename": "y"}`, nil},
		{"json bad enum", FormatJSON, `{"environment": {"gamescope": {"state": "On"}}}`, ErrInvalidFeatureState},
		{"toml unknown field", FormatTOML, "game_name = \"x\"\nfoo = 1\n", nil},
		{"toml bad drive type", FormatTOML, "[[winecfg.drives]]\nletter = \"D\"\ndrive_type = \"usb\"\n", ErrInvalidDriveType},
		{"yaml unknown field", FormatYAML, "game_name: x\nbogus: true\n", nil},
		{"yaml bad dll mode", FormatYAML, "winecfg:\n  dll_overrides:\n    - dll: d3d11\n      mode: auto\n", ErrInvalidDLLMode},
		{"cue closed definition", FormatCUE, `game_name: "x"` + "\n" + `unknown: 1`, nil},
		{"cue bad state", FormatCUE, `environment: gamescope: state: "On"`, nil},
		{"cue syntax", FormatCUE, `game_name: "x`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode([]byte(tt.data), tt.format, "demo")
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("error = %v, want wrapping %v", err, tt.sentinel)
			}
			if !strings.Contains(err.Error(), "demo") {
				t.Errorf("error should name the file, got %v", err)
			}
		})
	}
}

func TestDecode_EmptyYAMLIsZeroProfile(t *testing.T) {
	t.Parallel()

	p, err := Decode(nil, FormatYAML, "empty.yaml")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !reflect.DeepEqual(p, Profile{}) {
		t.Errorf("Decode(empty) = %+v", p)
	}
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	loader := NewLoader(fs)

	if _, err := loader.Load("/missing.json"); err == nil {
		t.Error("expected error for missing file")
	}

	big := make([]byte, MaxFileSize+1)
	if err := afero.WriteFile(fs, "/big.json", big, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loader.Load("/big.json"); !errors.Is(err, cueutil.ErrFileTooLarge) {
		t.Errorf("Load(big) error = %v, want ErrFileTooLarge", err)
	}

	if err := loader.Save("/x.ini", Default()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.ini) error = %v, want ErrUnsupportedFormat", err)
	}
}
