// SPDX-License-Identifier: MPL-2.0

// Package guard decides whether a profile can be packaged into a launcher.
//
// CreateExecutableErrors runs every field validator over the profile plus
// the cross-field rules (executable extension, hash format, game root
// containment, Gamescope requirements) and returns localized blocking
// messages in a fixed order. An empty result is the only "ready" signal.
// Warnings returns advisories that never block.
//
// Both are pure: they read the snapshot in Context and nothing else, so
// callers may memoize them on every edit.
package guard
