// SPDX-License-Identifier: MPL-2.0

package i18n

var enUS = map[Key]string{
	KeyHintSuggestion: "Suggestion: {value}",
	KeyControlChars:   "The value contains control characters.",

	KeyRelativePathRequired:          "Enter a path relative to the game folder.",
	KeyRelativePathMustBeRelative:    "Use a path relative to the game folder (for example ./saves), not an absolute path.",
	KeyRelativePathForwardSlashes:    "Use forward slashes (/) in relative paths.",
	KeyRelativePathDotPrefix:         "The path must start with ./",
	KeyRelativePathDoubleSlash:       "The path must not contain //.",
	KeyRelativePathSpecificTarget:    "Point to a specific file or folder inside the game folder.",
	KeyRelativePathTraversal:         "The path must not contain . or .. segments.",
	KeyRelativePathInvalidChars:      `The path contains invalid characters (< > : " | ? *).`,
	KeyRelativePathFileTrailingSlash: "A file path must not end with /.",

	KeyWindowsPathRequired:        "Enter a Windows path.",
	KeyWindowsPathExpectedWindows: `Expected a Windows path (for example C:\Games\Game).`,
	KeyWindowsPathInvalidFormat:   `Invalid Windows path. Start with a drive letter (C:\...) or a network share (\\server\share).`,
	KeyWindowsPathInvalidChars:    `The Windows path contains invalid characters (< > : " | ? *).`,

	KeyLinuxPathRequired:       "Enter a Linux path.",
	KeyLinuxPathExpectedLinux:  "Expected a Linux path (for example /home/user/games).",
	KeyLinuxPathUseHostPath:    "Use the path on the Linux host, not the path as Wine sees it.",
	KeyLinuxPathMustBeAbsolute: "The Linux path must be absolute (start with /).",

	KeyRegistryPathRequired:      "Enter the registry key path.",
	KeyRegistryPathNotFilesystem: `Expected a registry path (for example HKCU\Software\Game), not a file path.`,
	KeyRegistryPathInvalidHive:   "The registry path must start with HKCU, HKLM, HKCR, HKU or HKCC.",
	KeyRegistryTypeInvalid:       "Invalid value type. Use REG_SZ, REG_EXPAND_SZ, REG_MULTI_SZ, REG_DWORD, REG_QWORD, REG_BINARY or REG_NONE.",
	KeyRegistryTypeDidYouMean:    "Did you mean {value}?",

	KeyEnvNameRequired: "Enter the variable name.",
	KeyEnvNameInvalid:  "Invalid variable name. Use letters, digits and _, and do not start with a digit.",
	KeyEnvNameReserved: "{name} is managed by the launcher and will be overridden.",

	KeyDLLRequired: "Enter the DLL name.",
	KeyDLLNoPath:   "Enter only the DLL name, without a folder.",
	KeyDLLInvalid:  "Invalid DLL name. Use letters, digits, _, . and -.",

	KeyWrapperRequired:         "Enter the wrapper executable.",
	KeyWrapperWindowsPath:      "Wrappers run on Linux. Use a Linux command or path, not a Windows path.",
	KeyWrapperArgsInExecutable: "Put only the executable here and use the arguments field for parameters.",

	KeyCommandWindowsPath: "Commands run on Linux. Use a Linux command or path, not a Windows path.",

	KeyFriendlyNameRequired:     "Enter {label}.",
	KeyFriendlyNameInvalidChars: `Invalid characters in {label} (< > : " / \ | ? *).`,
	KeyFriendlyNameTrailing:     "Remove the trailing space or dot from {label}.",

	KeyDriveSerialInvalid: "Invalid serial number. Use 1 to 16 hexadecimal digits, optionally prefixed with 0x.",
	KeyDriveLetterInvalid: "Invalid drive letter. Use a single letter from D to Y.",

	KeyNumberDigitsOnly: "{label} must contain digits only.",
	KeyNumberRange:      "{label} must be between {min} and {max}.",

	KeyGuardGameNameRequired:       "Enter the game name.",
	KeyGuardExeRequired:            "Select the main executable.",
	KeyGuardExeExtension:           "The main executable must be a .exe, .bat, .cmd or .com file.",
	KeyGuardHashInvalid:            "The executable hash is missing or invalid (expected 64 hexadecimal characters).",
	KeyGuardRelativeExeLabel:       "Relative executable",
	KeyGuardRootMustContainExe:     "The game root folder must contain the main executable.",
	KeyGuardIntegrityLabel:         "Required files #{n}",
	KeyGuardMountLabel:             "Mount #{n} ({part})",
	KeyGuardWrapperLabel:           "Wrapper #{n}",
	KeyGuardWrapperRequired:        "Provide the wrapper executable.",
	KeyGuardWrapperDuplicate:       "Duplicate wrapper command with the same arguments.",
	KeyGuardRegistryLabel:          "Registry #{n} ({part})",
	KeyGuardRegistryPathRequired:   "Enter the registry key path.",
	KeyGuardRegistryNameRequired:   "Enter the registry value name.",
	KeyGuardDependencyLabel:        "Dependency #{n}",
	KeyGuardDependencyPartLabel:    "Dependency #{n} ({part} {m})",
	KeyGuardDependencyNameRequired: "Enter the dependency name.",
	KeyGuardDLLLabel:               "DLL override #{n}",
	KeyGuardDesktopFolderLabel:     "Desktop folder #{n} ({part})",
	KeyGuardDriveLabel:             "Drive #{n} ({part})",
	KeyGuardProtonRequired:         "Select a Proton version.",
	KeyGuardVirtualDesktopLabel:    "Winecfg (virtual desktop)",
	KeyGuardGamescopeLabel:         "Gamescope",

	KeyGuardGamescopeGameResolutionRequired:   "Fill in the Gamescope game resolution before creating the executable.",
	KeyGuardGamescopeOutputResolutionRequired: "Fill in the Gamescope output resolution or enable automatic monitor resolution before creating the executable.",
	KeyGuardGamescopeFPSRequired:              "Fill in the Gamescope FPS limits before creating the executable.",

	KeyPartSource:   "source",
	KeyPartTarget:   "target",
	KeyPartPath:     "path",
	KeyPartName:     "name",
	KeyPartType:     "type",
	KeyPartCommand:  "command",
	KeyPartEnvVar:   "env var",
	KeyPartShortcut: "shortcut",
	KeyPartLabel:    "label",
	KeyPartSerial:   "serial",
	KeyPartLetter:   "letter",

	KeyLabelShortcutName:      "the shortcut name",
	KeyLabelDriveLabel:        "the label",
	KeyLabelWidth:             "Width",
	KeyLabelHeight:            "Height",
	KeyLabelGameWidth:         "Game width",
	KeyLabelGameHeight:        "Game height",
	KeyLabelOutputWidth:       "Output width",
	KeyLabelOutputHeight:      "Output height",
	KeyLabelFPSLimiter:        "FPS limit",
	KeyLabelFPSLimiterNoFocus: "FPS limit without focus",

	KeyWarnDuplicateIntegrityFile: "Required file {value} is listed more than once.",
	KeyWarnDuplicateMountTarget:   "Mount target {value} is used more than once.",
	KeyWarnDuplicateMountPair:     "The mount {value} is listed more than once.",
	KeyWarnDuplicateRegistryKey:   "Registry value {value} is defined more than once.",
	KeyWarnDuplicateDependency:    "Dependency {value} is listed more than once.",
	KeyWarnDuplicateDLLOverride:   "DLL {value} is overridden more than once.",
	KeyWarnDuplicateDesktopFolder: "Desktop folder {value} is configured more than once.",
	KeyWarnDuplicateDrive:         "Drive {value} is configured more than once.",
}
