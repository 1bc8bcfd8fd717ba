// SPDX-License-Identifier: MPL-2.0

// Package watch re-runs a callback when any of a fixed set of files changes.
//
// Parent directories are watched rather than the files themselves, so
// editors that save by writing a temporary file and renaming it over the
// original keep triggering events. Events within the debounce window are
// coalesced into one callback.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when Config.Debounce is unset.
const DefaultDebounce = 300 * time.Millisecond

// ErrNoFiles is returned by New when Config.Files is empty.
var ErrNoFiles = errors.New("watch: no files to watch")

type (
	// Config holds the parameters for a Watcher.
	Config struct {
		// Files are the paths whose changes trigger OnChange. They need not
		// exist yet, but their directories must.
		Files []string

		// Debounce is the quiet period after the last event before OnChange
		// fires. Zero or negative values use DefaultDebounce.
		Debounce time.Duration

		// OnChange receives the changed files, sorted, as given in Files.
		OnChange func(ctx context.Context, changed []string) error

		// Stderr receives non-fatal watcher errors. nil means os.Stderr.
		Stderr io.Writer
	}

	// Watcher monitors Config.Files. Run must be called exactly once.
	Watcher struct {
		cfg      Config
		fsw      *fsnotify.Watcher
		stderr   io.Writer
		debounce time.Duration
		// targets maps cleaned absolute paths back to the caller's spelling.
		targets map[string]string
		started atomic.Bool
	}
)

// New resolves every file to an absolute path and registers its directory.
func New(cfg Config) (*Watcher, error) {
	if len(cfg.Files) == 0 {
		return nil, ErrNoFiles
	}

	targets := make(map[string]string, len(cfg.Files))
	dirs := make(map[string]struct{})
	for _, f := range cfg.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("watch: resolve %s: %w", f, err)
		}
		targets[abs] = f
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	for _, dir := range slices.Sorted(maps.Keys(dirs)) {
		if err := fsw.Add(dir); err != nil {
			fsw.Close() //nolint:errcheck // best-effort cleanup
			return nil, fmt.Errorf("watch: add directory %q: %w", dir, err)
		}
	}

	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		stderr:   stderr,
		debounce: debounce,
		targets:  targets,
	}, nil
}

// Run blocks until ctx is cancelled. It returns nil on cancellation and an
// error when the watcher breaks beyond recovery.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return fmt.Errorf("watch: Run called more than once")
	}

	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
		timer   *time.Timer
		running atomic.Bool
	)

	// fire may run after ctx is cancelled; the callback gets ctx to check.
	// A run still in progress defers the next one instead of overlapping.
	fire := func() {
		if ctx.Err() != nil {
			return
		}
		if !running.CompareAndSwap(false, true) {
			mu.Lock()
			if timer != nil {
				timer.Reset(w.debounce)
			}
			mu.Unlock()
			return
		}
		defer running.Store(false)

		mu.Lock()
		if len(pending) == 0 {
			mu.Unlock()
			return
		}
		changed := slices.Sorted(maps.Keys(pending))
		clear(pending)
		mu.Unlock()

		if w.cfg.OnChange != nil {
			if err := w.cfg.OnChange(ctx, changed); err != nil {
				fmt.Fprintf(w.stderr, "watch: callback error: %v\n", err)
			}
		}
	}

	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
		if err := w.fsw.Close(); err != nil {
			fmt.Fprintf(w.stderr, "watch: close fsnotify: %v\n", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watch: fsnotify event channel closed unexpectedly")
			}
			name, ok := w.target(evt)
			if !ok {
				continue
			}

			mu.Lock()
			pending[name] = struct{}{}
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watch: fsnotify error channel closed unexpectedly")
			}
			if isFatalFsnotifyError(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}
			fmt.Fprintf(w.stderr, "watch: fsnotify error: %v\n", err)
		}
	}
}

// target maps an event to the watched file it concerns. Chmod-only events
// are dropped; they fire on every save by some editors without a content
// change.
func (w *Watcher) target(evt fsnotify.Event) (string, bool) {
	if evt.Op == fsnotify.Chmod {
		return "", false
	}
	abs, err := filepath.Abs(evt.Name)
	if err != nil {
		return "", false
	}
	name, ok := w.targets[abs]
	return name, ok
}

// Files returns the watched files as given to New, sorted.
func (w *Watcher) Files() []string {
	return slices.Sorted(maps.Values(w.targets))
}
