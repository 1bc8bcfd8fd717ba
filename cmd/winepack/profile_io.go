// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/winepack/winepack/internal/issue"
	"github.com/winepack/winepack/pkg/profile"
)

// loadProfile reads the profile at path, mapping failures to issue pages.
func (a *App) loadProfile(path string) (profile.Profile, error) {
	a.logger.Debug("loading profile", "path", path)

	p, err := profile.NewLoader(a.Fs).Load(path)
	if err == nil {
		return p, nil
	}

	ctx := issue.NewErrorContext().
		WithOperation("load profile").
		WithResource(path).
		Wrap(err)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		ctx.WithIssue(issue.ProfileNotFoundId).
			WithSuggestion("Check the path for typos").
			WithSuggestion("Run 'winepack init " + path + "' to create a default profile")
	case errors.Is(err, profile.ErrUnsupportedFormat):
		ctx.WithIssue(issue.UnsupportedFormatId).
			WithSuggestion("Use one of the extensions: " + extensionList())
	default:
		ctx.WithIssue(issue.ProfileParseErrorId).
			WithSuggestion("Fix the reported field and try again")
	}
	return profile.Profile{}, ctx.BuildError()
}

// resolvePaths fills in whichever of exePath and gameRoot is missing from
// the other and the profile's relative executable path.
func resolvePaths(p profile.Profile, exePath, gameRoot string) (string, string) {
	if exePath != "" {
		exePath = filepath.ToSlash(filepath.Clean(exePath))
	}
	if gameRoot != "" {
		gameRoot = filepath.ToSlash(filepath.Clean(gameRoot))
	}

	switch {
	case exePath == "" && gameRoot != "" && strings.HasPrefix(p.RelativeExePath, "./"):
		exePath = strings.TrimRight(gameRoot, "/") + "/" + strings.TrimPrefix(p.RelativeExePath, "./")
	case exePath != "" && gameRoot == "":
		gameRoot = profile.DetectGameRoot(exePath, p.RelativeExePath)
	}
	return exePath, gameRoot
}

func extensionList() string {
	var exts []string
	for _, f := range profile.Formats() {
		exts = append(exts, "."+string(f))
	}
	return strings.Join(exts, ", ")
}
