// SPDX-License-Identifier: MPL-2.0

package launchplan

import (
	"errors"
	"slices"
	"testing"

	"github.com/winepack/winepack/pkg/profile"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*profile.Profile)
		wantArgv []string
	}{
		{
			name:     "proton only",
			mutate:   func(*profile.Profile) {},
			wantArgv: []string{"proton", "run", "/games/demo/game.exe"},
		},
		{
			name: "enabled wrappers in order",
			mutate: func(p *profile.Profile) {
				p.Compatibility.WrapperCommands = []profile.WrapperCommand{
					{State: profile.FeatureOptionalOn, Executable: "gamemoderun"},
					{State: profile.FeatureOptionalOff, Executable: "strace", Args: "-f"},
					{State: profile.FeatureMandatoryOn, Executable: "mangohud", Args: `--dlsym "a b"`},
				}
			},
			wantArgv: []string{"gamemoderun", "mangohud", "--dlsym", "a b", "proton", "run", "/games/demo/game.exe"},
		},
		{
			name: "gamescope",
			mutate: func(p *profile.Profile) {
				*p = p.WithGamescopeState(profile.FeatureMandatoryOn)
				gs := &p.Environment.Gamescope
				gs.GameWidth, gs.GameHeight = "1280", "720"
				gs.OutputWidth, gs.OutputHeight = "2560", "1440"
				gs.EnableLimiter = true
				gs.FPSLimiter, gs.FPSLimiterNoFocus = "60", "15"
				gs.WindowType = profile.WindowBorderless
				gs.UpscaleMethod = profile.UpscaleInteger
				gs.ForceGrabCursor = true
				gs.AdditionalOptions = "--mangoapp"
			},
			wantArgv: []string{
				"gamescope", "-w", "1280", "-h", "720", "-W", "2560", "-H", "1440", "-r", "60", "-o", "15",
				"-b", "-S", "integer", "--force-grab-cursor", "--mangoapp", "--",
				"proton", "run", "/games/demo/game.exe",
			},
		},
		{
			name: "gamescope limiter off and windowed",
			mutate: func(p *profile.Profile) {
				*p = p.WithGamescopeState(profile.FeatureOptionalOn)
				gs := &p.Environment.Gamescope
				gs.GameWidth, gs.GameHeight = "1280", "720"
				gs.FPSLimiter = "60"
				gs.WindowType = profile.WindowWindowed
			},
			wantArgv: []string{"gamescope", "-w", "1280", "-h", "720", "-F", "fsr", "--", "proton", "run", "/games/demo/game.exe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := profile.Default()
			tt.mutate(&p)
			plan, err := Build(p, "/games/demo/game.exe")
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if !slices.Equal(plan.Argv, tt.wantArgv) {
				t.Errorf("Argv\n got: %q\nwant: %q", plan.Argv, tt.wantArgv)
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Build(profile.Default(), "  "); !errors.Is(err, ErrMissingExecutable) {
		t.Errorf("blank exe: err = %v, want ErrMissingExecutable", err)
	}

	p := profile.Default()
	p.Compatibility.WrapperCommands = []profile.WrapperCommand{
		{State: profile.FeatureOptionalOn, Executable: "mangohud", Args: `"unterminated`},
	}
	_, err := Build(p, "/g/game.exe")
	if !errors.Is(err, ErrInvalidArgs) {
		t.Fatalf("err = %v, want ErrInvalidArgs", err)
	}
	var argsErr *InvalidArgsError
	if !errors.As(err, &argsErr) || argsErr.Source != "wrapper #1" {
		t.Errorf("err = %#v", err)
	}
}

func TestPlan_String(t *testing.T) {
	t.Parallel()

	p := profile.Default()
	p.Environment.CustomVars = map[string]string{"DXVK_HUD": "fps", "A_EMPTY": ""}
	p.Compatibility.WrapperCommands = []profile.WrapperCommand{
		{State: profile.FeatureOptionalOn, Executable: "mangohud"},
	}

	plan, err := Build(p, "/games/My Game/game.exe")
	if err != nil {
		t.Fatal(err)
	}

	want := `A_EMPTY='' DXVK_HUD=fps mangohud proton run '/games/My Game/game.exe'`
	if got := plan.String(); got != want {
		t.Errorf("String()\n got: %s\nwant: %s", got, want)
	}
}
