// SPDX-License-Identifier: MPL-2.0

// Package i18n holds the localized message catalog used by the validators.
//
// Messages are addressed by a stable Key and stored as flat templates per
// Locale with {placeholder} interpolation. Lookup never fails: a key missing
// from the requested locale falls back to en-US, and a key missing there
// falls back to the key string itself.
//
// The catalog is a read-only, process-wide table; every function in this
// package is safe for concurrent use.
package i18n
