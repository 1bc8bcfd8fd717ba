// SPDX-License-Identifier: MPL-2.0

// Package fieldcheck validates single profile field values.
//
// There is one function per semantic value kind (relative game path, Windows
// path, Linux path, registry path and value type, environment variable name,
// DLL name, wrapper executable, command token, Windows friendly name, drive
// serial and letter, ranged positive integer). Each takes the raw text typed
// by the user, the display locale and kind-specific options, and returns a
// Result carrying an optional blocking Error and an optional non-blocking Hint.
//
// Validators are pure and total: they never panic, never perform I/O, keep
// no state between calls and run in time linear in the input length. The
// shape checks are locale-independent; the locale only selects message text.
package fieldcheck
