// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"cuelang.org/go/cue/cuecontext"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "demo.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with filename", func(t *testing.T) {
		t.Parallel()

		original := errors.New("boom")
		err := FormatError(original, "demo.cue")
		if !errors.Is(err, original) {
			t.Errorf("FormatError should wrap the original error, got %v", err)
		}
		if !strings.HasPrefix(err.Error(), "demo.cue: ") {
			t.Errorf("error should start with the filename, got %q", err)
		}
	})

	t.Run("wrapped plain error keeps its chain", func(t *testing.T) {
		t.Parallel()

		original := errors.New("boom")
		err := FormatError(fmt.Errorf("read: %w", original), "demo.cue")
		if !errors.Is(err, original) {
			t.Errorf("FormatError should keep the cause chain, got %v", err)
		}
	})

	t.Run("CUE error is flattened with its path", func(t *testing.T) {
		t.Parallel()

		cueErr := cuecontext.New().CompileString("game_name: 1 & 2").Validate()
		if cueErr == nil {
			t.Fatal("expected a CUE conflict error")
		}
		err := FormatError(cueErr, "demo.cue")
		if !strings.HasPrefix(err.Error(), "demo.cue: game_name: ") {
			t.Errorf("FormatError() = %q, want filename and path prefix", err)
		}
		if !strings.Contains(err.Error(), "conflicting values") {
			t.Errorf("FormatError() = %q, want the CUE message", err)
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []string
		want string
	}{
		{"empty", nil, ""},
		{"single", []string{"game_name"}, "game_name"},
		{"nested", []string{"runner", "proton_version"}, "runner.proton_version"},
		{"index", []string{"drives", "0", "letter"}, "drives[0].letter"},
		{"nested indices", []string{"extra_system_dependencies", "2", "check_paths", "10"}, "extra_system_dependencies[2].check_paths[10]"},
		{"leading number is not an index", []string{"0", "name"}, "0.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 10), 10, "ok.cue"); err != nil {
		t.Errorf("size at limit should pass, got %v", err)
	}

	err := CheckFileSize(make([]byte, 11), 10, "big.cue")
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
	var tooLarge *FileTooLargeError
	if !errors.As(err, &tooLarge) || tooLarge.Size != 11 || tooLarge.Max != 10 {
		t.Errorf("unexpected error detail: %+v", tooLarge)
	}
}
