// SPDX-License-Identifier: MPL-2.0

package profile

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DuplicateIntegrityFile DuplicateKind = "integrity_file"
	DuplicateMountTarget   DuplicateKind = "mount_target"
	DuplicateMountPair     DuplicateKind = "mount_pair"
	DuplicateWrapper       DuplicateKind = "wrapper_command"
	DuplicateRegistryKey   DuplicateKind = "registry_key"
	DuplicateDependency    DuplicateKind = "system_dependency"
	DuplicateDLLOverride   DuplicateKind = "dll_override"
	DuplicateDesktopFolder DuplicateKind = "desktop_folder"
	DuplicateDrive         DuplicateKind = "drive"
	DuplicateCustomVar     DuplicateKind = "custom_var"
)

// ErrDuplicate is the sentinel error wrapped by DuplicateError.
var ErrDuplicate = errors.New("duplicate entry")

type (
	// DuplicateKind names the uniqueness rule an entry broke.
	DuplicateKind string

	// DuplicateError reports an entry that collides with an existing one.
	// Value is the colliding identity as shown to the user.
	DuplicateError struct {
		Kind  DuplicateKind
		Value string
		// Index is the position of the offending entry (0-based). For
		// rejected insertions it is the index the entry would have taken.
		Index int
	}
)

func (k DuplicateKind) String() string { return string(k) }

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s: %s", strings.ReplaceAll(string(e.Kind), "_", " "), e.Value)
}

// Unwrap returns ErrDuplicate for errors.Is() compatibility.
func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// Identity keys. Windows paths, registry paths, DLL names, dependency names
// and drive letters compare case-insensitively; Linux-side strings do not.

func integrityFileKey(f string) string { return strings.TrimSpace(f) }

func windowsPathKey(p string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(p), "/", `\`))
}

func mountPairKey(m FolderMount) string {
	return strings.TrimSpace(m.SourceRelativePath) + "\x00" + windowsPathKey(m.TargetWindowsPath)
}

func mountPairValue(m FolderMount) string {
	return strings.TrimSpace(m.SourceRelativePath) + " -> " + strings.TrimSpace(m.TargetWindowsPath)
}

// Identity returns the key two wrapper commands share when they run the
// same executable with the same arguments.
func (w WrapperCommand) Identity() string {
	return strings.TrimSpace(w.Executable) + "\x00" + strings.TrimSpace(w.Args)
}

func wrapperValue(w WrapperCommand) string {
	return strings.TrimSpace(strings.TrimSpace(w.Executable) + " " + strings.TrimSpace(w.Args))
}

func registryKeyKey(k RegistryKey) string {
	return windowsPathKey(k.Path) + "\x00" + strings.ToLower(strings.TrimSpace(k.Name))
}

func registryKeyValue(k RegistryKey) string {
	return strings.ReplaceAll(strings.TrimSpace(k.Path), "/", `\`) + `\` + strings.TrimSpace(k.Name)
}

func foldKey(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func driveLetterKey(l string) string {
	return strings.ToUpper(strings.TrimSuffix(strings.TrimSpace(l), ":"))
}

// Duplicates reports every entry of p that repeats an earlier entry under
// the uniqueness rules applied by the With helpers, in profile order. A
// folder mount repeating a whole (source, target) pair is reported as a
// pair duplicate only.
func (p Profile) Duplicates() []*DuplicateError {
	var dups []*DuplicateError
	add := func(kind DuplicateKind, value string, index int) {
		dups = append(dups, &DuplicateError{Kind: kind, Value: value, Index: index})
	}

	scan(p.IntegrityFiles, integrityFileKey, func(i int) { add(DuplicateIntegrityFile, integrityFileKey(p.IntegrityFiles[i]), i) })

	pairs := make(map[string]bool)
	targets := make(map[string]bool)
	for i, m := range p.FolderMounts {
		pair, target := mountPairKey(m), windowsPathKey(m.TargetWindowsPath)
		if target == "" {
			continue
		}
		switch {
		case pairs[pair]:
			add(DuplicateMountPair, mountPairValue(m), i)
		case targets[target]:
			add(DuplicateMountTarget, strings.TrimSpace(m.TargetWindowsPath), i)
		}
		pairs[pair] = true
		targets[target] = true
	}

	wrappers := p.Compatibility.WrapperCommands
	scan(wrappers, WrapperCommand.Identity, func(i int) { add(DuplicateWrapper, wrapperValue(wrappers[i]), i) })
	scan(p.RegistryKeys, registryKeyKey, func(i int) { add(DuplicateRegistryKey, registryKeyValue(p.RegistryKeys[i]), i) })

	deps := p.ExtraSystemDependencies
	scan(deps, func(d SystemDependency) string { return foldKey(d.Name) }, func(i int) {
		add(DuplicateDependency, strings.TrimSpace(deps[i].Name), i)
	})

	dlls := p.Winecfg.DLLOverrides
	scan(dlls, func(o DLLOverride) string { return foldKey(o.DLL) }, func(i int) {
		add(DuplicateDLLOverride, strings.TrimSpace(dlls[i].DLL), i)
	})

	folders := p.Winecfg.DesktopFolders
	scan(folders, func(f DesktopFolder) string { return strings.TrimSpace(f.FolderKey) }, func(i int) {
		add(DuplicateDesktopFolder, strings.TrimSpace(folders[i].FolderKey), i)
	})

	drives := p.Winecfg.Drives
	scan(drives, func(d Drive) string { return driveLetterKey(d.Letter) }, func(i int) {
		add(DuplicateDrive, driveLetterKey(drives[i].Letter)+":", i)
	})

	return dups
}

// scan calls onDup for each element whose key was already seen. Blank keys
// are skipped: a missing value is the guard's concern, not a duplicate.
func scan[T any](items []T, key func(T) string, onDup func(int)) {
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		k := key(item)
		if strings.Trim(k, "\x00") == "" {
			continue
		}
		if seen[k] {
			onDup(i)
			continue
		}
		seen[k] = true
	}
}

// indexOf returns the index of the first item with the given key, or -1.
func indexOf[T any](items []T, key func(T) string, want string) int {
	for i, item := range items {
		if key(item) == want {
			return i
		}
	}
	return -1
}
