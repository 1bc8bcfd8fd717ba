// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// ErrFileTooLarge is wrapped by the error CheckFileSize returns.
var ErrFileTooLarge = errors.New("file too large")

// FileTooLargeError reports a document over the configured size limit.
type FileTooLargeError struct {
	Filename string
	Size     int64
	Max      int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("%s: file size %d bytes exceeds maximum %d bytes", e.Filename, e.Size, e.Max)
}

// Unwrap returns ErrFileTooLarge for errors.Is() compatibility.
func (e *FileTooLargeError) Unwrap() error { return ErrFileTooLarge }

// FormatError flattens a CUE error into "<file>: <path>: <message>" lines,
// with list indices rendered as "drives[0].letter".
func FormatError(err error, filename string) error {
	if err == nil {
		return nil
	}

	// cueerrors.Errors promotes any error to a one-element list, which
	// would drop the cause chain of plain errors.
	var ce cueerrors.Error
	if !errors.As(err, &ce) {
		return fmt.Errorf("%s: %w", filename, err)
	}

	list := cueerrors.Errors(err)

	lines := make([]string, 0, len(list))
	for _, e := range list {
		pathStr := formatPath(cueerrors.Path(e))
		msg := e.Error()

		// CUE sometimes repeats the path at the start of the message.
		if pathStr != "" && strings.HasPrefix(msg, pathStr) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, pathStr), ":"))
		}

		if pathStr != "" {
			lines = append(lines, pathStr+": "+msg)
		} else {
			lines = append(lines, msg)
		}
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filename, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filename, strings.Join(lines, "\n  "))
}

// formatPath turns ["drives", "0", "letter"] into "drives[0].letter".
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		switch {
		case i > 0 && isIndex(part):
			b.WriteString("[" + part + "]")
		case i > 0:
			b.WriteString("." + part)
		default:
			b.WriteString(part)
		}
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize returns a *FileTooLargeError when data exceeds maxSize.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if size := int64(len(data)); size > maxSize {
		return &FileTooLargeError{Filename: filename, Size: size, Max: maxSize}
	}
	return nil
}
