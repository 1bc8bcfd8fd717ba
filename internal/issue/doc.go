// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors for the CLI and the Markdown
// issue pages they link to, rendered with glamour.
package issue
