// SPDX-License-Identifier: MPL-2.0

package i18n

// Key identifies a catalog message. Keys are stable; message text is not.
type Key string

// Field validator messages.
const (
	KeyHintSuggestion Key = "hint.suggestion"
	KeyControlChars   Key = "field.controlChars"

	KeyRelativePathRequired         Key = "path.relative.required"
	KeyRelativePathMustBeRelative   Key = "path.relative.mustBeRelative"
	KeyRelativePathForwardSlashes   Key = "path.relative.useForwardSlashes"
	KeyRelativePathDotPrefix        Key = "path.relative.requireDotPrefix"
	KeyRelativePathDoubleSlash      Key = "path.relative.doubleSlash"
	KeyRelativePathSpecificTarget   Key = "path.relative.specificTarget"
	KeyRelativePathTraversal        Key = "path.relative.traversal"
	KeyRelativePathInvalidChars     Key = "path.relative.invalidChars"
	KeyRelativePathFileTrailingSlash Key = "path.relative.trailingSlash"

	KeyWindowsPathRequired        Key = "path.windows.required"
	KeyWindowsPathExpectedWindows Key = "path.windows.expectedWindows"
	KeyWindowsPathInvalidFormat   Key = "path.windows.invalidFormat"
	KeyWindowsPathInvalidChars    Key = "path.windows.invalidChars"

	KeyLinuxPathRequired      Key = "path.linux.required"
	KeyLinuxPathExpectedLinux Key = "path.linux.expectedLinux"
	KeyLinuxPathUseHostPath   Key = "path.linux.useHostPath"
	KeyLinuxPathMustBeAbsolute Key = "path.linux.mustBeAbsolute"

	KeyRegistryPathRequired      Key = "registry.path.required"
	KeyRegistryPathNotFilesystem Key = "registry.path.notFilesystem"
	KeyRegistryPathInvalidHive   Key = "registry.path.invalidHive"
	KeyRegistryTypeInvalid       Key = "registry.type.invalid"
	KeyRegistryTypeDidYouMean    Key = "registry.type.didYouMean"

	KeyEnvNameRequired Key = "env.name.required"
	KeyEnvNameInvalid  Key = "env.name.invalid"
	KeyEnvNameReserved Key = "env.name.reserved"

	KeyDLLRequired Key = "dll.required"
	KeyDLLNoPath   Key = "dll.noPath"
	KeyDLLInvalid  Key = "dll.invalid"

	KeyWrapperRequired         Key = "wrapper.required"
	KeyWrapperWindowsPath      Key = "wrapper.windowsPath"
	KeyWrapperArgsInExecutable Key = "wrapper.argsInExecutable"

	KeyCommandWindowsPath Key = "command.windowsPath"

	KeyFriendlyNameRequired     Key = "friendlyName.required"
	KeyFriendlyNameInvalidChars Key = "friendlyName.invalidChars"
	KeyFriendlyNameTrailing     Key = "friendlyName.trailing"

	KeyDriveSerialInvalid Key = "drive.serial.invalid"
	KeyDriveLetterInvalid Key = "drive.letter.invalid"

	KeyNumberDigitsOnly Key = "number.digitsOnly"
	KeyNumberRange      Key = "number.range"
)

// Aggregate guard messages and prefix labels.
const (
	KeyGuardGameNameRequired     Key = "guard.gameName.required"
	KeyGuardExeRequired          Key = "guard.exe.required"
	KeyGuardExeExtension         Key = "guard.exe.extension"
	KeyGuardHashInvalid          Key = "guard.hash.invalid"
	KeyGuardRelativeExeLabel     Key = "guard.relativeExe.label"
	KeyGuardRootMustContainExe   Key = "guard.root.mustContainExe"
	KeyGuardIntegrityLabel       Key = "guard.integrity.label"
	KeyGuardMountLabel           Key = "guard.mount.label"
	KeyGuardWrapperLabel         Key = "guard.wrapper.label"
	KeyGuardWrapperRequired      Key = "guard.wrapper.required"
	KeyGuardWrapperDuplicate     Key = "guard.wrapper.duplicate"
	KeyGuardRegistryLabel        Key = "guard.registry.label"
	KeyGuardRegistryPathRequired Key = "guard.registry.pathRequired"
	KeyGuardRegistryNameRequired Key = "guard.registry.nameRequired"
	KeyGuardDependencyLabel      Key = "guard.dependency.label"
	KeyGuardDependencyPartLabel  Key = "guard.dependency.partLabel"
	KeyGuardDependencyNameRequired Key = "guard.dependency.nameRequired"
	KeyGuardDLLLabel             Key = "guard.dll.label"
	KeyGuardDesktopFolderLabel   Key = "guard.desktopFolder.label"
	KeyGuardDriveLabel           Key = "guard.drive.label"
	KeyGuardProtonRequired       Key = "guard.proton.required"
	KeyGuardVirtualDesktopLabel  Key = "guard.virtualDesktop.label"
	KeyGuardGamescopeLabel       Key = "guard.gamescope.label"

	KeyGuardGamescopeGameResolutionRequired   Key = "guard.gamescope.gameResolutionRequired"
	KeyGuardGamescopeOutputResolutionRequired Key = "guard.gamescope.outputResolutionRequired"
	KeyGuardGamescopeFPSRequired              Key = "guard.gamescope.fpsRequired"

	KeyPartSource   Key = "part.source"
	KeyPartTarget   Key = "part.target"
	KeyPartPath     Key = "part.path"
	KeyPartName     Key = "part.name"
	KeyPartType     Key = "part.type"
	KeyPartCommand  Key = "part.command"
	KeyPartEnvVar   Key = "part.envVar"
	KeyPartShortcut Key = "part.shortcut"
	KeyPartLabel    Key = "part.label"
	KeyPartSerial   Key = "part.serial"
	KeyPartLetter   Key = "part.letter"

	KeyLabelShortcutName     Key = "label.shortcutName"
	KeyLabelDriveLabel       Key = "label.driveLabel"
	KeyLabelWidth            Key = "label.width"
	KeyLabelHeight           Key = "label.height"
	KeyLabelGameWidth        Key = "label.gameWidth"
	KeyLabelGameHeight       Key = "label.gameHeight"
	KeyLabelOutputWidth      Key = "label.outputWidth"
	KeyLabelOutputHeight     Key = "label.outputHeight"
	KeyLabelFPSLimiter       Key = "label.fpsLimiter"
	KeyLabelFPSLimiterNoFocus Key = "label.fpsLimiterNoFocus"
)

// Non-blocking warnings.
const (
	KeyWarnDuplicateIntegrityFile Key = "warn.duplicate.integrityFile"
	KeyWarnDuplicateMountTarget   Key = "warn.duplicate.mountTarget"
	KeyWarnDuplicateMountPair     Key = "warn.duplicate.mountPair"
	KeyWarnDuplicateRegistryKey   Key = "warn.duplicate.registryKey"
	KeyWarnDuplicateDependency    Key = "warn.duplicate.dependency"
	KeyWarnDuplicateDLLOverride   Key = "warn.duplicate.dllOverride"
	KeyWarnDuplicateDesktopFolder Key = "warn.duplicate.desktopFolder"
	KeyWarnDuplicateDrive         Key = "warn.duplicate.drive"
)

// String returns the string representation of the Key.
func (k Key) String() string { return string(k) }
