// SPDX-License-Identifier: MPL-2.0

// Package launchplan previews the Linux command line a profile would run:
// the enabled wrapper chain, Gamescope when enabled and finally Proton with
// the main executable. Nothing is executed.
package launchplan
