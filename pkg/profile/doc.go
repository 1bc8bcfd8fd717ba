// SPDX-License-Identifier: MPL-2.0

// Package profile models a game launcher profile: the game identity, the
// files and folders it needs, the Wine prefix setup (registry, DLL
// overrides, drives, desktop folders, virtual desktop), the runner and
// optional wrappers such as Gamescope.
//
// Profiles are plain values. Mutation helpers return a modified copy and
// never touch the receiver, so a snapshot handed to the guard package stays
// stable while the caller keeps editing.
//
// Files are read and written by Loader in CUE, JSON, TOML or YAML, picked by
// extension. Loading checks structure only (known enum values, closed
// fields); readiness for packaging is the guard package's job.
package profile
