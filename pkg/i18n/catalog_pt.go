// SPDX-License-Identifier: MPL-2.0

package i18n

var ptBR = map[Key]string{
	KeyHintSuggestion: "Sugestão: {value}",
	KeyControlChars:   "O valor contém caracteres de controle.",

	KeyRelativePathRequired:          "Informe um caminho relativo à pasta do jogo.",
	KeyRelativePathMustBeRelative:    "Use um caminho relativo à pasta do jogo (por exemplo ./saves), não um caminho absoluto.",
	KeyRelativePathForwardSlashes:    "Use barras normais (/) em caminhos relativos.",
	KeyRelativePathDotPrefix:         "O caminho deve começar com ./",
	KeyRelativePathDoubleSlash:       "O caminho não pode conter //.",
	KeyRelativePathSpecificTarget:    "Aponte para um arquivo ou pasta específico dentro da pasta do jogo.",
	KeyRelativePathTraversal:         "O caminho não pode conter segmentos . ou ..",
	KeyRelativePathInvalidChars:      `O caminho contém caracteres inválidos (< > : " | ? *).`,
	KeyRelativePathFileTrailingSlash: "Um caminho de arquivo não pode terminar com /.",

	KeyWindowsPathRequired:        "Informe um caminho do Windows.",
	KeyWindowsPathExpectedWindows: `Era esperado um caminho do Windows (por exemplo C:\Games\Jogo).`,
	KeyWindowsPathInvalidFormat:   `Caminho do Windows inválido. Comece com uma letra de unidade (C:\...) ou um compartilhamento de rede (\\servidor\compartilhamento).`,
	KeyWindowsPathInvalidChars:    `O caminho do Windows contém caracteres inválidos (< > : " | ? *).`,

	KeyLinuxPathRequired:       "Informe um caminho do Linux.",
	KeyLinuxPathExpectedLinux:  "Era esperado um caminho do Linux (por exemplo /home/usuario/jogos).",
	KeyLinuxPathUseHostPath:    "Use o caminho no Linux, não o caminho como o Wine o enxerga.",
	KeyLinuxPathMustBeAbsolute: "O caminho do Linux deve ser absoluto (começar com /).",

	KeyRegistryPathRequired:      "Informe o caminho da chave do registro.",
	KeyRegistryPathNotFilesystem: `Era esperado um caminho do registro (por exemplo HKCU\Software\Jogo), não um caminho de arquivo.`,
	KeyRegistryPathInvalidHive:   "O caminho do registro deve começar com HKCU, HKLM, HKCR, HKU ou HKCC.",
	KeyRegistryTypeInvalid:       "Tipo de valor inválido. Use REG_SZ, REG_EXPAND_SZ, REG_MULTI_SZ, REG_DWORD, REG_QWORD, REG_BINARY ou REG_NONE.",
	KeyRegistryTypeDidYouMean:    "Você quis dizer {value}?",

	KeyEnvNameRequired: "Informe o nome da variável.",
	KeyEnvNameInvalid:  "Nome de variável inválido. Use letras, dígitos e _, sem começar com dígito.",
	KeyEnvNameReserved: "{name} é gerenciada pelo lançador e será sobrescrita.",

	KeyDLLRequired: "Informe o nome da DLL.",
	KeyDLLNoPath:   "Informe apenas o nome da DLL, sem pasta.",
	KeyDLLInvalid:  "Nome de DLL inválido. Use letras, dígitos, _, . e -.",

	KeyWrapperRequired:         "Informe o executável do wrapper.",
	KeyWrapperWindowsPath:      "Wrappers rodam no Linux. Use um comando ou caminho do Linux, não um caminho do Windows.",
	KeyWrapperArgsInExecutable: "Coloque apenas o executável aqui e use o campo de argumentos para os parâmetros.",

	KeyCommandWindowsPath: "Comandos rodam no Linux. Use um comando ou caminho do Linux, não um caminho do Windows.",

	KeyFriendlyNameRequired:     "Informe {label}.",
	KeyFriendlyNameInvalidChars: `Caracteres inválidos em {label} (< > : " / \ | ? *).`,
	KeyFriendlyNameTrailing:     "Remova o espaço ou ponto no final de {label}.",

	KeyDriveSerialInvalid: "Número de série inválido. Use de 1 a 16 dígitos hexadecimais, opcionalmente com o prefixo 0x.",
	KeyDriveLetterInvalid: "Letra de unidade inválida. Use uma única letra de D a Y.",

	KeyNumberDigitsOnly: "{label} deve conter apenas dígitos.",
	KeyNumberRange:      "{label} deve estar entre {min} e {max}.",

	KeyGuardGameNameRequired:       "Informe o nome do jogo.",
	KeyGuardExeRequired:            "Selecione o executável principal.",
	KeyGuardExeExtension:           "O executável principal deve ser um arquivo .exe, .bat, .cmd ou .com.",
	KeyGuardHashInvalid:            "O hash do executável está ausente ou inválido (esperados 64 caracteres hexadecimais).",
	KeyGuardRelativeExeLabel:       "Executável relativo",
	KeyGuardRootMustContainExe:     "A pasta raiz do jogo deve conter o executável principal.",
	KeyGuardIntegrityLabel:         "Arquivos obrigatórios #{n}",
	KeyGuardMountLabel:             "Montagem #{n} ({part})",
	KeyGuardWrapperLabel:           "Wrapper #{n}",
	KeyGuardWrapperRequired:        "Informe o executável do wrapper.",
	KeyGuardWrapperDuplicate:       "Comando wrapper duplicado com os mesmos argumentos.",
	KeyGuardRegistryLabel:          "Registro #{n} ({part})",
	KeyGuardRegistryPathRequired:   "Informe o caminho da chave do registro.",
	KeyGuardRegistryNameRequired:   "Informe o nome do valor do registro.",
	KeyGuardDependencyLabel:        "Dependência #{n}",
	KeyGuardDependencyPartLabel:    "Dependência #{n} ({part} {m})",
	KeyGuardDependencyNameRequired: "Informe o nome da dependência.",
	KeyGuardDLLLabel:               "Override de DLL #{n}",
	KeyGuardDesktopFolderLabel:     "Pasta da área de trabalho #{n} ({part})",
	KeyGuardDriveLabel:             "Unidade #{n} ({part})",
	KeyGuardProtonRequired:         "Selecione uma versão do Proton.",
	KeyGuardVirtualDesktopLabel:    "Winecfg (área de trabalho virtual)",
	KeyGuardGamescopeLabel:         "Gamescope",

	KeyGuardGamescopeGameResolutionRequired:   "Preencha a resolução do jogo no Gamescope antes de criar o executável.",
	KeyGuardGamescopeOutputResolutionRequired: "Preencha a resolução de saída do Gamescope ou ative a resolução automática do monitor antes de criar o executável.",
	KeyGuardGamescopeFPSRequired:              "Preencha os limites de FPS do Gamescope antes de criar o executável.",

	KeyPartSource:   "origem",
	KeyPartTarget:   "destino",
	KeyPartPath:     "caminho",
	KeyPartName:     "nome",
	KeyPartType:     "tipo",
	KeyPartCommand:  "comando",
	KeyPartEnvVar:   "variável",
	KeyPartShortcut: "atalho",
	KeyPartLabel:    "rótulo",
	KeyPartSerial:   "série",
	KeyPartLetter:   "letra",

	KeyLabelShortcutName:      "o nome do atalho",
	KeyLabelDriveLabel:        "o rótulo",
	KeyLabelWidth:             "Largura",
	KeyLabelHeight:            "Altura",
	KeyLabelGameWidth:         "Largura do jogo",
	KeyLabelGameHeight:        "Altura do jogo",
	KeyLabelOutputWidth:       "Largura de saída",
	KeyLabelOutputHeight:      "Altura de saída",
	KeyLabelFPSLimiter:        "Limite de FPS",
	KeyLabelFPSLimiterNoFocus: "Limite de FPS sem foco",

	KeyWarnDuplicateIntegrityFile: "O arquivo obrigatório {value} aparece mais de uma vez.",
	KeyWarnDuplicateMountTarget:   "O destino de montagem {value} é usado mais de uma vez.",
	KeyWarnDuplicateMountPair:     "A montagem {value} aparece mais de uma vez.",
	KeyWarnDuplicateRegistryKey:   "O valor do registro {value} está definido mais de uma vez.",
	KeyWarnDuplicateDependency:    "A dependência {value} aparece mais de uma vez.",
	KeyWarnDuplicateDLLOverride:   "A DLL {value} tem override mais de uma vez.",
	KeyWarnDuplicateDesktopFolder: "A pasta da área de trabalho {value} está configurada mais de uma vez.",
	KeyWarnDuplicateDrive:         "A unidade {value} está configurada mais de uma vez.",
}
