// SPDX-License-Identifier: MPL-2.0

package profile

import (
	"errors"
	"testing"
)

func TestWithHelpers_RejectDuplicates(t *testing.T) {
	t.Parallel()

	base := Default()
	base.IntegrityFiles = []string{"./data/a.pak"}
	base.FolderMounts = []FolderMount{{SourceRelativePath: "./saves", TargetWindowsPath: `C:\users\steamuser\Saved Games`}}
	base.Compatibility.WrapperCommands = []WrapperCommand{{State: FeatureOptionalOn, Executable: "mangohud"}}
	base.RegistryKeys = []RegistryKey{{Path: `HKCU\Software\Game`, Name: "Lang", ValueType: "REG_SZ"}}
	base.ExtraSystemDependencies = []SystemDependency{{Name: "Vulkan"}}
	base.Winecfg.DLLOverrides = []DLLOverride{{DLL: "d3d11", Mode: DLLModeNative}}
	base.Winecfg.DesktopFolders = []DesktopFolder{{FolderKey: "Documents"}}
	base.Winecfg.Drives = []Drive{{Letter: "D"}}
	base.Environment.CustomVars = map[string]string{"DXVK_HUD": "1"}

	tests := []struct {
		name string
		add  func(Profile) (Profile, error)
		kind DuplicateKind
	}{
		{"integrity file", func(p Profile) (Profile, error) { return p.WithIntegrityFile(" ./data/a.pak ") }, DuplicateIntegrityFile},
		{"mount pair", func(p Profile) (Profile, error) {
			return p.WithFolderMount(FolderMount{SourceRelativePath: "./saves", TargetWindowsPath: `C:/users/steamuser/Saved Games`})
		}, DuplicateMountPair},
		{"mount target", func(p Profile) (Profile, error) {
			return p.WithFolderMount(FolderMount{SourceRelativePath: "./other", TargetWindowsPath: `c:\Users\steamuser\saved games`})
		}, DuplicateMountTarget},
		{"wrapper", func(p Profile) (Profile, error) {
			return p.WithWrapperCommand(WrapperCommand{Executable: "mangohud", Args: " "})
		}, DuplicateWrapper},
		{"registry key", func(p Profile) (Profile, error) {
			return p.WithRegistryKey(RegistryKey{Path: "hkcu/software/game", Name: "LANG", ValueType: "REG_DWORD"})
		}, DuplicateRegistryKey},
		{"dependency", func(p Profile) (Profile, error) { return p.WithSystemDependency(SystemDependency{Name: "vulkan"}) }, DuplicateDependency},
		{"dll", func(p Profile) (Profile, error) { return p.WithDLLOverride(DLLOverride{DLL: "D3D11"}) }, DuplicateDLLOverride},
		{"desktop folder", func(p Profile) (Profile, error) {
			return p.WithDesktopFolder(DesktopFolder{FolderKey: "Documents", ShortcutName: "Docs"})
		}, DuplicateDesktopFolder},
		{"drive", func(p Profile) (Profile, error) { return p.WithDrive(Drive{Letter: "d:"}) }, DuplicateDrive},
		{"custom var", func(p Profile) (Profile, error) { return p.WithCustomVar("DXVK_HUD", "0") }, DuplicateCustomVar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.add(base)
			var dup *DuplicateError
			if !errors.As(err, &dup) || !errors.Is(err, ErrDuplicate) {
				t.Fatalf("error = %v, want *DuplicateError", err)
			}
			if dup.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", dup.Kind, tt.kind)
			}
			if len(got.Duplicates()) != 0 {
				t.Errorf("rejected insertion leaked into the profile: %v", got.Duplicates())
			}
		})
	}
}

func TestWithHelpers_AppendWithoutMutatingReceiver(t *testing.T) {
	t.Parallel()

	p := Default()
	p1, err := p.WithDrive(Drive{Letter: "E", HostPath: "/mnt/media"})
	if err != nil {
		t.Fatal(err)
	}
	p2, err := p1.WithDrive(Drive{Letter: "F"})
	if err != nil {
		t.Fatal(err)
	}
	p3, err := p2.WithCustomVar("PROTON_LOG", "1")
	if err != nil {
		t.Fatal(err)
	}

	if len(p.Winecfg.Drives) != 0 || len(p1.Winecfg.Drives) != 1 || len(p2.Winecfg.Drives) != 2 {
		t.Errorf("drive counts = %d, %d, %d; want 0, 1, 2", len(p.Winecfg.Drives), len(p1.Winecfg.Drives), len(p2.Winecfg.Drives))
	}
	if p2.Environment.CustomVars != nil || p3.Environment.CustomVars["PROTON_LOG"] != "1" {
		t.Error("WithCustomVar should only affect the returned copy")
	}
	if got := p3.WithoutCustomVar("PROTON_LOG"); len(got.Environment.CustomVars) != 0 {
		t.Error("WithoutCustomVar did not remove the variable")
	}
}

func TestWithHelpers_BlankIdentitiesAreNotDuplicates(t *testing.T) {
	t.Parallel()

	p := Default()
	var err error
	for range 2 {
		if p, err = p.WithRegistryKey(RegistryKey{}); err != nil {
			t.Fatalf("blank registry key rejected: %v", err)
		}
		if p, err = p.WithDLLOverride(DLLOverride{}); err != nil {
			t.Fatalf("blank dll override rejected: %v", err)
		}
		if p, err = p.WithFolderMount(FolderMount{}); err != nil {
			t.Fatalf("blank mount rejected: %v", err)
		}
	}
	if dups := p.Duplicates(); len(dups) != 0 {
		t.Errorf("Duplicates() = %v, want none", dups)
	}
}

func TestWithGamescopeState_MirrorsRequirements(t *testing.T) {
	t.Parallel()

	p := Default().WithGamescopeState(FeatureMandatoryOn)
	if p.Environment.Gamescope.State != FeatureMandatoryOn || p.Requirements.Gamescope != FeatureMandatoryOn {
		t.Errorf("state = %s, mirror = %s", p.Environment.Gamescope.State, p.Requirements.Gamescope)
	}
}

func TestDuplicates(t *testing.T) {
	t.Parallel()

	p := Default()
	p.IntegrityFiles = []string{"./a", "./b", "./a"}
	p.FolderMounts = []FolderMount{
		{SourceRelativePath: "./s", TargetWindowsPath: `C:\t`},
		{SourceRelativePath: "./s", TargetWindowsPath: `c:/T`},
		{SourceRelativePath: "./x", TargetWindowsPath: `C:\t`},
	}
	p.Winecfg.Drives = []Drive{{Letter: "D"}, {Letter: "E"}, {Letter: "d:"}}

	want := []DuplicateError{
		{Kind: DuplicateIntegrityFile, Value: "./a", Index: 2},
		{Kind: DuplicateMountPair, Value: `./s -> c:/T`, Index: 1},
		{Kind: DuplicateMountTarget, Value: `C:\t`, Index: 2},
		{Kind: DuplicateDrive, Value: "D:", Index: 2},
	}

	got := p.Duplicates()
	if len(got) != len(want) {
		t.Fatalf("Duplicates() = %v, want %d entries", got, len(want))
	}
	for i := range want {
		if *got[i] != want[i] {
			t.Errorf("Duplicates()[%d] = %+v, want %+v", i, *got[i], want[i])
		}
	}
}
