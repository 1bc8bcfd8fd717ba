// SPDX-License-Identifier: MPL-2.0

package profile

import (
	"strings"
)

// The With helpers return a copy of p with one entry appended. When the
// entry collides with an existing one they return p unchanged and a
// *DuplicateError. Entries with a blank identity are accepted; the guard
// reports them.

// WithIntegrityFile appends a required file.
func (p Profile) WithIntegrityFile(file string) (Profile, error) {
	key := integrityFileKey(file)
	if key != "" && indexOf(p.IntegrityFiles, integrityFileKey, key) >= 0 {
		return p, &DuplicateError{Kind: DuplicateIntegrityFile, Value: key, Index: len(p.IntegrityFiles)}
	}
	c := p.Clone()
	c.IntegrityFiles = append(c.IntegrityFiles, file)
	return c, nil
}

// WithFolderMount appends a mount. Both the target and the (source,
// target) pair must be new.
func (p Profile) WithFolderMount(m FolderMount) (Profile, error) {
	index := len(p.FolderMounts)
	if target := windowsPathKey(m.TargetWindowsPath); target != "" {
		if indexOf(p.FolderMounts, mountPairKey, mountPairKey(m)) >= 0 {
			return p, &DuplicateError{Kind: DuplicateMountPair, Value: mountPairValue(m), Index: index}
		}
		targetOf := func(x FolderMount) string { return windowsPathKey(x.TargetWindowsPath) }
		if indexOf(p.FolderMounts, targetOf, target) >= 0 {
			return p, &DuplicateError{Kind: DuplicateMountTarget, Value: strings.TrimSpace(m.TargetWindowsPath), Index: index}
		}
	}
	c := p.Clone()
	c.FolderMounts = append(c.FolderMounts, m)
	return c, nil
}

// WithWrapperCommand appends a wrapper; (executable, args) must be new.
func (p Profile) WithWrapperCommand(w WrapperCommand) (Profile, error) {
	wrappers := p.Compatibility.WrapperCommands
	if strings.TrimSpace(w.Executable) != "" && indexOf(wrappers, WrapperCommand.Identity, w.Identity()) >= 0 {
		return p, &DuplicateError{Kind: DuplicateWrapper, Value: wrapperValue(w), Index: len(wrappers)}
	}
	c := p.Clone()
	c.Compatibility.WrapperCommands = append(c.Compatibility.WrapperCommands, w)
	return c, nil
}

// WithRegistryKey appends a registry value; (path, name) must be new.
func (p Profile) WithRegistryKey(k RegistryKey) (Profile, error) {
	if strings.TrimSpace(k.Path) != "" && strings.TrimSpace(k.Name) != "" &&
		indexOf(p.RegistryKeys, registryKeyKey, registryKeyKey(k)) >= 0 {
		return p, &DuplicateError{Kind: DuplicateRegistryKey, Value: registryKeyValue(k), Index: len(p.RegistryKeys)}
	}
	c := p.Clone()
	c.RegistryKeys = append(c.RegistryKeys, k)
	return c, nil
}

// WithSystemDependency appends a host dependency; names are unique
// ignoring case.
func (p Profile) WithSystemDependency(d SystemDependency) (Profile, error) {
	nameOf := func(x SystemDependency) string { return foldKey(x.Name) }
	if key := nameOf(d); key != "" && indexOf(p.ExtraSystemDependencies, nameOf, key) >= 0 {
		return p, &DuplicateError{Kind: DuplicateDependency, Value: strings.TrimSpace(d.Name), Index: len(p.ExtraSystemDependencies)}
	}
	c := p.Clone()
	c.ExtraSystemDependencies = append(c.ExtraSystemDependencies, d.clone())
	return c, nil
}

// WithDLLOverride appends an override; DLL names are unique ignoring case.
func (p Profile) WithDLLOverride(o DLLOverride) (Profile, error) {
	dllOf := func(x DLLOverride) string { return foldKey(x.DLL) }
	if key := dllOf(o); key != "" && indexOf(p.Winecfg.DLLOverrides, dllOf, key) >= 0 {
		return p, &DuplicateError{Kind: DuplicateDLLOverride, Value: strings.TrimSpace(o.DLL), Index: len(p.Winecfg.DLLOverrides)}
	}
	c := p.Clone()
	c.Winecfg.DLLOverrides = append(c.Winecfg.DLLOverrides, o)
	return c, nil
}

// WithDesktopFolder appends a shell folder redirect; folder keys are unique.
func (p Profile) WithDesktopFolder(f DesktopFolder) (Profile, error) {
	keyOf := func(x DesktopFolder) string { return strings.TrimSpace(x.FolderKey) }
	if key := keyOf(f); key != "" && indexOf(p.Winecfg.DesktopFolders, keyOf, key) >= 0 {
		return p, &DuplicateError{Kind: DuplicateDesktopFolder, Value: key, Index: len(p.Winecfg.DesktopFolders)}
	}
	c := p.Clone()
	c.Winecfg.DesktopFolders = append(c.Winecfg.DesktopFolders, f)
	return c, nil
}

// WithDrive appends an extra drive; letters are unique ignoring case.
func (p Profile) WithDrive(d Drive) (Profile, error) {
	letterOf := func(x Drive) string { return driveLetterKey(x.Letter) }
	if key := letterOf(d); key != "" && indexOf(p.Winecfg.Drives, letterOf, key) >= 0 {
		return p, &DuplicateError{Kind: DuplicateDrive, Value: key + ":", Index: len(p.Winecfg.Drives)}
	}
	c := p.Clone()
	c.Winecfg.Drives = append(c.Winecfg.Drives, d)
	return c, nil
}

// WithCustomVar adds an environment variable. An existing name is a
// duplicate; use WithoutCustomVar first to replace a value.
func (p Profile) WithCustomVar(name, value string) (Profile, error) {
	if _, ok := p.Environment.CustomVars[name]; ok {
		return p, &DuplicateError{Kind: DuplicateCustomVar, Value: name, Index: len(p.Environment.CustomVars)}
	}
	c := p.Clone()
	if c.Environment.CustomVars == nil {
		c.Environment.CustomVars = make(map[string]string)
	}
	c.Environment.CustomVars[name] = value
	return c, nil
}

// WithoutCustomVar removes an environment variable if present.
func (p Profile) WithoutCustomVar(name string) Profile {
	c := p.Clone()
	delete(c.Environment.CustomVars, name)
	return c
}

// WithGamescopeState sets the Gamescope state and mirrors it into
// requirements.gamescope.
func (p Profile) WithGamescopeState(s FeatureState) Profile {
	c := p.Clone()
	c.Environment.Gamescope.State = s
	c.Requirements.Gamescope = s
	return c
}

func (d SystemDependency) clone() SystemDependency {
	d.CheckCommands = append([]string(nil), d.CheckCommands...)
	d.CheckEnvVars = append([]string(nil), d.CheckEnvVars...)
	d.CheckPaths = append([]string(nil), d.CheckPaths...)
	return d
}
