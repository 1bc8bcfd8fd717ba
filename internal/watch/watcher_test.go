// SPDX-License-Identifier: MPL-2.0

package watch

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestNew_NoFiles(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{}); !errors.Is(err, ErrNoFiles) {
		t.Errorf("New() error = %v, want ErrNoFiles", err)
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Files: []string{filepath.Join(t.TempDir(), "nope", "game.cue")}})
	if err == nil {
		t.Fatal("New() succeeded for a file in a missing directory")
	}
}

func TestWatcher_Files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	b := filepath.Join(dir, "b.cue")
	a := filepath.Join(dir, "a.cue")

	w, err := New(Config{Files: []string{b, a}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.fsw.Close()

	if got, want := w.Files(), []string{a, b}; !slices.Equal(got, want) {
		t.Errorf("Files() = %v, want %v", got, want)
	}
}

// TestWatcher_Debounce writes the watched file several times in quick
// succession and expects a single callback naming it once, while writes to
// a sibling file are ignored.
func TestWatcher_Debounce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	profile := filepath.Join(dir, "game.cue")
	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(profile, []byte("game_name: \"a\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan []string, 4)
	w, err := New(Config{
		Files:    []string{profile},
		Debounce: 100 * time.Millisecond,
		Stderr:   &bytes.Buffer{},
		OnChange: func(_ context.Context, changed []string) error {
			calls <- changed
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	for i := range 3 {
		if err := os.WriteFile(profile, []byte{byte('a' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(other, []byte{byte('a' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case changed := <-calls:
		if !slices.Equal(changed, []string{profile}) {
			t.Errorf("OnChange(%v), want only %s", changed, profile)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("OnChange was not called")
	}

	select {
	case changed := <-calls:
		t.Errorf("unexpected second callback with %v", changed)
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	if err := <-errCh; err != nil {
		t.Errorf("Run() error = %v", err)
	}
}

func TestWatcher_RunTwice(t *testing.T) {
	t.Parallel()

	w, err := New(Config{Files: []string{filepath.Join(t.TempDir(), "game.cue")}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.Run(ctx); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if err := w.Run(ctx); err == nil {
		t.Error("second Run() succeeded")
	}
}
