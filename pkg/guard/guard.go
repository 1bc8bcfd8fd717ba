// SPDX-License-Identifier: MPL-2.0

package guard

import (
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/winepack/winepack/pkg/fieldcheck"
	"github.com/winepack/winepack/pkg/i18n"
	"github.com/winepack/winepack/pkg/profile"
)

var (
	exeHashRegex = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

	// ExecutableExtensions are the launchable file types, lowercase.
	ExecutableExtensions = []string{".exe", ".bat", ".cmd", ".com"}

	relativeFile   = fieldcheck.RelativePathOptions{Kind: fieldcheck.KindFile, RequireDotPrefix: true}
	relativeFolder = fieldcheck.RelativePathOptions{Kind: fieldcheck.KindFolder, AllowDot: true}
	requiredLinux  = fieldcheck.LinuxPathOptions{Required: true}
)

type (
	// Context is everything a guard run looks at.
	Context struct {
		Profile profile.Profile
		Locale  i18n.Locale
		// ExePath is the absolute host path of the selected executable.
		ExePath string
		// GameRoot is the absolute host path of the game folder.
		GameRoot string
		// Translate resolves guard messages and labels. Nil uses the
		// built-in catalog for Locale.
		Translate i18n.Translator
	}

	// Report bundles a full guard run.
	Report struct {
		Ready    bool     `json:"ready"`
		Errors   []string `json:"errors"`
		Warnings []string `json:"warnings"`
	}

	collector struct {
		loc  i18n.Locale
		tr   i18n.Translator
		msgs []string
	}
)

// Evaluate runs CreateExecutableErrors and Warnings together.
func Evaluate(ctx Context) Report {
	errs := CreateExecutableErrors(ctx)
	return Report{
		Ready:    len(errs) == 0,
		Errors:   errs,
		Warnings: Warnings(ctx),
	}
}

// Ready reports whether ctx passes every blocking rule.
func Ready(ctx Context) bool {
	return len(CreateExecutableErrors(ctx)) == 0
}

// GetCreateExecutableValidationErrors is a stable name for
// CreateExecutableErrors.
func GetCreateExecutableValidationErrors(ctx Context) []string {
	return CreateExecutableErrors(ctx)
}

// CreateExecutableErrors returns the blocking messages for ctx, in rule
// order: game name, executable, hash, relative executable, root
// containment, required files, mounts, environment variables, wrappers,
// registry, dependencies, DLL overrides, desktop folders, drives, Proton,
// virtual desktop, Gamescope. The result is never nil.
func CreateExecutableErrors(ctx Context) []string {
	c := newCollector(ctx)
	p := ctx.Profile

	if strings.TrimSpace(p.GameName) == "" {
		c.add(i18n.KeyGuardGameNameRequired)
	}

	exe := strings.TrimSpace(ctx.ExePath)
	if exe == "" {
		c.add(i18n.KeyGuardExeRequired)
	} else if !slices.Contains(ExecutableExtensions, strings.ToLower(path.Ext(exe))) {
		c.add(i18n.KeyGuardExeExtension)
	}

	if !exeHashRegex.MatchString(p.ExeHash) {
		c.add(i18n.KeyGuardHashInvalid)
	}

	c.check(c.tr(i18n.KeyGuardRelativeExeLabel), fieldcheck.RelativeGamePath(p.RelativeExePath, c.loc, relativeFile))

	root := strings.TrimSpace(ctx.GameRoot)
	if strings.HasPrefix(exe, "/") && strings.HasPrefix(root, "/") && !profile.Contains(root, exe) {
		c.add(i18n.KeyGuardRootMustContainExe)
	}

	for i, file := range p.IntegrityFiles {
		c.check(c.label(i18n.KeyGuardIntegrityLabel, i, ""), fieldcheck.RelativeGamePath(file, c.loc, relativeFile))
	}

	for i, m := range p.FolderMounts {
		c.check(c.label(i18n.KeyGuardMountLabel, i, i18n.KeyPartSource), fieldcheck.RelativeGamePath(m.SourceRelativePath, c.loc, relativeFolder))
		c.check(c.label(i18n.KeyGuardMountLabel, i, i18n.KeyPartTarget), fieldcheck.WindowsPath(m.TargetWindowsPath, c.loc))
	}

	for _, name := range sortedKeys(p.Environment.CustomVars) {
		c.check(name, fieldcheck.EnvVarName(name, c.loc))
	}

	wrappers := make(map[string]bool, len(p.Compatibility.WrapperCommands))
	for i, w := range p.Compatibility.WrapperCommands {
		label := c.label(i18n.KeyGuardWrapperLabel, i, "")
		if strings.TrimSpace(w.Executable) == "" {
			c.addPrefixed(label, i18n.KeyGuardWrapperRequired)
			continue
		}
		c.check(label, fieldcheck.WrapperExecutable(w.Executable, c.loc))
		if wrappers[w.Identity()] {
			c.addPrefixed(label, i18n.KeyGuardWrapperDuplicate)
		}
		wrappers[w.Identity()] = true
	}

	for i, k := range p.RegistryKeys {
		c.checkRegistryKey(i, k)
	}

	for i, dep := range p.ExtraSystemDependencies {
		c.checkDependency(i, dep)
	}

	for i, o := range p.Winecfg.DLLOverrides {
		c.check(c.label(i18n.KeyGuardDLLLabel, i, ""), fieldcheck.DLLName(o.DLL, c.loc))
	}

	for i, f := range p.Winecfg.DesktopFolders {
		c.check(c.label(i18n.KeyGuardDesktopFolderLabel, i, i18n.KeyPartShortcut),
			fieldcheck.WindowsFriendlyName(f.ShortcutName, c.loc, c.fieldLabel(i18n.KeyLabelShortcutName)))
		c.check(c.label(i18n.KeyGuardDesktopFolderLabel, i, i18n.KeyPartPath), fieldcheck.LinuxPath(f.LinuxPath, c.loc, requiredLinux))
	}

	for i, d := range p.Winecfg.Drives {
		if d.HostPath != "" {
			c.check(c.label(i18n.KeyGuardDriveLabel, i, i18n.KeyPartPath), fieldcheck.LinuxPath(d.HostPath, c.loc, requiredLinux))
		}
		if d.Label != "" {
			c.check(c.label(i18n.KeyGuardDriveLabel, i, i18n.KeyPartLabel),
				fieldcheck.WindowsFriendlyName(d.Label, c.loc, c.fieldLabel(i18n.KeyLabelDriveLabel)))
		}
		if d.Serial != "" {
			c.check(c.label(i18n.KeyGuardDriveLabel, i, i18n.KeyPartSerial), fieldcheck.DriveSerial(d.Serial, c.loc))
		}
	}

	if strings.TrimSpace(p.Runner.ProtonVersion) == "" {
		c.add(i18n.KeyGuardProtonRequired)
	}

	c.checkVirtualDesktop(p.Winecfg.VirtualDesktop)
	c.checkGamescope(p.Environment.Gamescope)

	return c.msgs
}

func newCollector(ctx Context) *collector {
	tr := ctx.Translate
	if tr == nil {
		tr = i18n.TranslatorFor(ctx.Locale)
	}
	return &collector{loc: ctx.Locale, tr: tr, msgs: []string{}}
}

func (c *collector) add(key i18n.Key) {
	c.msgs = append(c.msgs, c.tr(key))
}

func (c *collector) addPrefixed(label string, key i18n.Key) {
	c.msgs = append(c.msgs, label+": "+c.tr(key))
}

// check records r's error under label.
func (c *collector) check(label string, r fieldcheck.Result) {
	if !r.OK() {
		c.msgs = append(c.msgs, label+": "+r.Error)
	}
}

// label formats an entity label such as "Mount #2 (target)". index is
// 0-based; part may be empty.
func (c *collector) label(key i18n.Key, index int, part i18n.Key) string {
	params := i18n.Params{"n": strconv.Itoa(index + 1)}
	if part != "" {
		params["part"] = c.tr(part)
	}
	return i18n.Format(c.tr(key), params)
}

// fieldLabel resolves a label through the caller's translator.
func (c *collector) fieldLabel(key i18n.Key) fieldcheck.Label {
	text := c.tr(key)
	return fieldcheck.Label{PT: text, EN: text}
}

func (c *collector) checkRegistryKey(i int, k profile.RegistryKey) {
	pathLabel := c.label(i18n.KeyGuardRegistryLabel, i, i18n.KeyPartPath)
	if strings.TrimSpace(k.Path) == "" {
		c.addPrefixed(pathLabel, i18n.KeyGuardRegistryPathRequired)
	} else {
		c.check(pathLabel, fieldcheck.RegistryPath(k.Path, c.loc))
	}

	if strings.TrimSpace(k.Name) == "" {
		c.addPrefixed(c.label(i18n.KeyGuardRegistryLabel, i, i18n.KeyPartName), i18n.KeyGuardRegistryNameRequired)
	}

	c.check(c.label(i18n.KeyGuardRegistryLabel, i, i18n.KeyPartType), fieldcheck.RegistryValueType(k.ValueType, c.loc))
}

func (c *collector) checkDependency(i int, dep profile.SystemDependency) {
	if strings.TrimSpace(dep.Name) == "" {
		c.addPrefixed(c.label(i18n.KeyGuardDependencyLabel, i, ""), i18n.KeyGuardDependencyNameRequired)
	}

	part := func(kind i18n.Key, j int) string {
		return i18n.Format(c.tr(i18n.KeyGuardDependencyPartLabel), i18n.Params{
			"n":    strconv.Itoa(i + 1),
			"part": c.tr(kind),
			"m":    strconv.Itoa(j + 1),
		})
	}
	for j, cmd := range dep.CheckCommands {
		c.check(part(i18n.KeyPartCommand, j), fieldcheck.CommandToken(cmd, c.loc))
	}
	for j, name := range dep.CheckEnvVars {
		c.check(part(i18n.KeyPartEnvVar, j), fieldcheck.EnvVarName(name, c.loc))
	}
	for j, p := range dep.CheckPaths {
		c.check(part(i18n.KeyPartPath, j), fieldcheck.LinuxPath(p, c.loc, requiredLinux))
	}
}

func (c *collector) checkVirtualDesktop(vd profile.VirtualDesktop) {
	if !vd.State.State.IsEnabled() || vd.State.UseWineDefault {
		return
	}

	var resolution string
	if vd.Resolution != nil {
		resolution = *vd.Resolution
	}
	parts := strings.Split(resolution, "x")
	width := strings.TrimSpace(parts[0])
	height := ""
	if len(parts) > 1 {
		height = strings.TrimSpace(parts[1])
	}

	label := c.tr(i18n.KeyGuardVirtualDesktopLabel)
	c.firstError(label,
		fieldcheck.PositiveInteger(width, c.loc, c.resolutionRange(i18n.KeyLabelWidth)),
		fieldcheck.PositiveInteger(height, c.loc, c.resolutionRange(i18n.KeyLabelHeight)),
	)
}

func (c *collector) checkGamescope(gs profile.Gamescope) {
	if !gs.State.IsEnabled() {
		return
	}
	label := c.tr(i18n.KeyGuardGamescopeLabel)

	c.pair(label, gs.GameWidth, gs.GameHeight, i18n.KeyGuardGamescopeGameResolutionRequired,
		c.resolutionRange(i18n.KeyLabelGameWidth), c.resolutionRange(i18n.KeyLabelGameHeight))

	usesMonitorResolution := strings.TrimSpace(gs.OutputWidth) == "" && strings.TrimSpace(gs.OutputHeight) == ""
	if !usesMonitorResolution {
		c.pair(label, gs.OutputWidth, gs.OutputHeight, i18n.KeyGuardGamescopeOutputResolutionRequired,
			c.resolutionRange(i18n.KeyLabelOutputWidth), c.resolutionRange(i18n.KeyLabelOutputHeight))
	}

	if gs.EnableLimiter {
		c.pair(label, gs.FPSLimiter, gs.FPSLimiterNoFocus, i18n.KeyGuardGamescopeFPSRequired,
			c.fpsRange(i18n.KeyLabelFPSLimiter), c.fpsRange(i18n.KeyLabelFPSLimiterNoFocus))
	}
}

// pair applies the two-tier policy to a pair of numeric fields: either one
// blank yields the fixed required message, otherwise the first range error
// is reported under label.
func (c *collector) pair(label, a, b string, required i18n.Key, ra, rb fieldcheck.IntRange) {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		c.add(required)
		return
	}
	c.firstError(label, fieldcheck.PositiveInteger(a, c.loc, ra), fieldcheck.PositiveInteger(b, c.loc, rb))
}

func (c *collector) firstError(label string, results ...fieldcheck.Result) {
	for _, r := range results {
		if !r.OK() {
			c.check(label, r)
			return
		}
	}
}

func (c *collector) resolutionRange(key i18n.Key) fieldcheck.IntRange {
	return fieldcheck.IntRange{Min: fieldcheck.MinResolution, Max: fieldcheck.MaxResolution, Label: c.fieldLabel(key)}
}

func (c *collector) fpsRange(key i18n.Key) fieldcheck.IntRange {
	return fieldcheck.IntRange{Min: fieldcheck.MinFPS, Max: fieldcheck.MaxFPS, Label: c.fieldLabel(key)}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
