// SPDX-License-Identifier: MPL-2.0

package profile

import (
	"path"
	"strings"
)

// Contains reports whether target is root itself or lies below it. Both are
// slash-separated host paths; a trailing slash on root is ignored, so "/"
// contains every absolute path.
func Contains(root, target string) bool {
	root = strings.TrimRight(root, "/")
	if root == "" {
		return strings.HasPrefix(target, "/")
	}
	return target == root || strings.HasPrefix(target, root+"/")
}

// DetectGameRoot derives the game root from the selected executable. When
// relativeExePath ("./bin/game.exe") matches the tail of exePath, the root
// is what precedes it; otherwise it is the executable's directory.
// An empty exePath yields "".
func DetectGameRoot(exePath, relativeExePath string) string {
	exePath = strings.TrimSpace(exePath)
	if exePath == "" {
		return ""
	}

	rel := strings.TrimPrefix(strings.TrimSpace(relativeExePath), "./")
	if rel != "" && !strings.HasPrefix(rel, "/") && strings.HasSuffix(exePath, "/"+rel) {
		root := strings.TrimSuffix(exePath, "/"+rel)
		if root == "" {
			return "/"
		}
		return root
	}
	return path.Dir(exePath)
}

// RelativeExePath expresses exePath relative to gameRoot in the "./"
// form profiles store. ok is false when exePath is not below gameRoot.
func RelativeExePath(gameRoot, exePath string) (rel string, ok bool) {
	exePath = path.Clean(strings.TrimSpace(exePath))
	gameRoot = strings.TrimSpace(gameRoot)
	if gameRoot == "" || !Contains(gameRoot, exePath) {
		return "", false
	}
	rest := strings.TrimPrefix(exePath, strings.TrimRight(gameRoot, "/"))
	rest = strings.TrimPrefix(rest, "/")
	if rest == "" {
		return "", false
	}
	return "./" + rest, true
}
