// SPDX-License-Identifier: MPL-2.0

package launchplan

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"
	"mvdan.cc/sh/v3/syntax"

	"github.com/winepack/winepack/pkg/profile"
)

// ProtonCommand is the launcher invoked after the wrapper chain.
const ProtonCommand = "proton"

var (
	// ErrMissingExecutable is returned when no executable path was given.
	ErrMissingExecutable = errors.New("missing executable path")

	// ErrInvalidArgs is the sentinel error wrapped by InvalidArgsError.
	ErrInvalidArgs = errors.New("invalid argument string")
)

type (
	// EnvVar is one environment assignment of the plan.
	EnvVar struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}

	// Plan is the previewed launch.
	Plan struct {
		Env  []EnvVar `json:"env"`
		Argv []string `json:"argv"`
	}

	// InvalidArgsError reports an argument string that cannot be split with
	// shell rules, e.g. an unterminated quote.
	InvalidArgsError struct {
		Source string
		Value  string
		Err    error
	}
)

// Error implements the error interface.
func (e *InvalidArgsError) Error() string {
	return fmt.Sprintf("%s: invalid arguments %q: %v", e.Source, e.Value, e.Err)
}

// Unwrap returns ErrInvalidArgs for errors.Is() compatibility.
func (e *InvalidArgsError) Unwrap() error { return ErrInvalidArgs }

// Build assembles the launch plan of p for the executable at exePath.
func Build(p profile.Profile, exePath string) (Plan, error) {
	exe := strings.TrimSpace(exePath)
	if exe == "" {
		return Plan{}, ErrMissingExecutable
	}

	var argv []string
	for i, w := range p.Compatibility.WrapperCommands {
		if !w.State.IsEnabled() || strings.TrimSpace(w.Executable) == "" {
			continue
		}
		args, err := split(fmt.Sprintf("wrapper #%d", i+1), w.Args)
		if err != nil {
			return Plan{}, err
		}
		argv = append(argv, strings.TrimSpace(w.Executable))
		argv = append(argv, args...)
	}

	if gs := p.Environment.Gamescope; gs.State.IsEnabled() {
		flags, err := gamescopeFlags(gs)
		if err != nil {
			return Plan{}, err
		}
		argv = append(argv, "gamescope")
		argv = append(argv, flags...)
		argv = append(argv, "--")
	}

	argv = append(argv, ProtonCommand, "run", exe)

	return Plan{Env: envVars(p.Environment.CustomVars), Argv: argv}, nil
}

// String renders the plan as a single shell line.
func (p Plan) String() string {
	parts := make([]string, 0, len(p.Env)+len(p.Argv))
	for _, e := range p.Env {
		parts = append(parts, e.Name+"="+quote(e.Value))
	}
	for _, arg := range p.Argv {
		parts = append(parts, quote(arg))
	}
	return strings.Join(parts, " ")
}

func gamescopeFlags(gs profile.Gamescope) ([]string, error) {
	var flags []string
	add := func(flag, value string) {
		if v := strings.TrimSpace(value); v != "" {
			flags = append(flags, flag, v)
		}
	}

	add("-w", gs.GameWidth)
	add("-h", gs.GameHeight)
	add("-W", gs.OutputWidth)
	add("-H", gs.OutputHeight)
	if gs.EnableLimiter {
		add("-r", gs.FPSLimiter)
		add("-o", gs.FPSLimiterNoFocus)
	}

	switch gs.WindowType {
	case profile.WindowFullscreen:
		flags = append(flags, "-f")
	case profile.WindowBorderless:
		flags = append(flags, "-b")
	}

	switch gs.UpscaleMethod {
	case profile.UpscaleFSR, profile.UpscaleNIS:
		flags = append(flags, "-F", string(gs.UpscaleMethod))
	case profile.UpscaleInteger, profile.UpscaleStretch:
		flags = append(flags, "-S", string(gs.UpscaleMethod))
	}

	if gs.ForceGrabCursor {
		flags = append(flags, "--force-grab-cursor")
	}

	extra, err := split("gamescope", gs.AdditionalOptions)
	if err != nil {
		return nil, err
	}
	return append(flags, extra...), nil
}

func split(source, raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	words, err := shellquote.Split(raw)
	if err != nil {
		return nil, &InvalidArgsError{Source: source, Value: raw, Err: err}
	}
	return words, nil
}

func envVars(vars map[string]string) []EnvVar {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	slices.Sort(names)

	env := make([]EnvVar, 0, len(names))
	for _, name := range names {
		env = append(env, EnvVar{Name: name, Value: vars[name]})
	}
	return env
}

// quote shell-quotes s for bash, falling back to shellquote for strings
// bash cannot represent, such as ones holding NUL bytes.
func quote(s string) string {
	q, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		return shellquote.Join(s)
	}
	return q
}
