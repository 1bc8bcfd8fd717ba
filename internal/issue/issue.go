// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

const (
	ProfileNotFoundId Id = iota + 1
	ProfileParseErrorId
	UnsupportedFormatId
	ProfileNotReadyId
	ConfigLoadFailedId
	InvalidLocaleId
	InvalidLaunchArgsId
	ProfileExistsId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to lookup the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink
		extLinks []HttpLink // external links that might be useful for the user
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Markdown returns the page source with the "See also" section appended.
func (i *Issue) Markdown() string {
	var sb strings.Builder
	sb.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		sb.WriteString("\n\n## See also\n")
		for _, link := range append(i.DocLinks(), i.extLinks...) {
			sb.WriteString("- <" + string(link) + ">\n")
		}
	}
	return sb.String()
}

// Render renders the page with the named glamour style ("dark", "light",
// "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	profileNotFoundIssue = &Issue{
		id: ProfileNotFoundId,
		mdMsg: `
# Profile not found!

The profile file you pointed at does not exist or cannot be read.

## Things you can try:
- Check the path for typos
- Create a new profile with the defaults:
~~~
$ winepack init game.cue
~~~`,
	}

	profileParseErrorIssue = &Issue{
		id: ProfileParseErrorId,
		mdMsg: `
# Failed to parse the profile!

The profile could not be decoded. Unknown keys, wrong value types and enum
values outside the allowed set are rejected.

## Common mistakes:
- Misspelled keys (keys are snake_case, e.g. ` + "`relative_exe_path`" + `)
- Numbers where text is expected: Gamescope sizes are written as text
- Feature states other than ` + "`MandatoryOn`, `MandatoryOff`, `OptionalOn`, `OptionalOff`" + `

## Things you can try:
- Compare with a fresh profile:
~~~
$ winepack init /tmp/example.cue
~~~`,
	}

	unsupportedFormatIssue = &Issue{
		id: UnsupportedFormatId,
		mdMsg: `
# Unsupported profile format!

Profiles are read and written as CUE, JSON, TOML or YAML, picked by the
file extension: ` + "`.cue`, `.json`, `.toml`, `.yaml`, `.yml`" + `.`,
	}

	profileNotReadyIssue = &Issue{
		id: ProfileNotReadyId,
		mdMsg: `
# The profile is not ready!

The executable cannot be created until every blocking message is fixed.
Each message starts with the entry it refers to, such as
` + "`Mount #2 (target)`" + `, numbered from 1 in the order the entries appear.

## Things you can try:
- Fix the entries one at a time and run ` + "`winepack validate`" + ` again
- Check a single value while editing:
~~~
$ winepack check windows-path 'C:\Games\Demo'
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The preferences file has a syntax error or a value outside the schema.

## Things you can try:
- Print the location of the file:
~~~
$ winepack config path
~~~
- Print the effective configuration:
~~~
$ winepack config show
~~~
- Write a fresh file with the defaults:
~~~
$ winepack config init --force
~~~`,
	}

	invalidLocaleIssue = &Issue{
		id: InvalidLocaleId,
		mdMsg: `
# Unsupported locale!

Messages are available in ` + "`en-US`" + ` and ` + "`pt-BR`" + `. Any other tag is
matched to the closest of the two, falling back to English.`,
	}

	invalidLaunchArgsIssue = &Issue{
		id: InvalidLaunchArgsId,
		mdMsg: `
# Invalid launch arguments!

Wrapper and Gamescope arguments are split with shell rules. An unterminated
quote or a trailing backslash cannot be split.

## Things you can try:
- Close every ` + "`\"`" + ` and ` + "`'`" + `
- Escape literal quotes with a backslash`,
	}

	profileExistsIssue = &Issue{
		id: ProfileExistsId,
		mdMsg: `
# The profile already exists!

` + "`winepack init`" + ` never overwrites a file unless asked to.

## Things you can try:
~~~
$ winepack init --force game.cue
~~~`,
	}

	issues = map[Id]*Issue{
		profileNotFoundIssue.Id():   profileNotFoundIssue,
		profileParseErrorIssue.Id(): profileParseErrorIssue,
		unsupportedFormatIssue.Id(): unsupportedFormatIssue,
		profileNotReadyIssue.Id():   profileNotReadyIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		invalidLocaleIssue.Id():     invalidLocaleIssue,
		invalidLaunchArgsIssue.Id(): invalidLaunchArgsIssue,
		profileExistsIssue.Id():     profileExistsIssue,
	}
)

// Values returns every registered issue ordered by Id.
func Values() []*Issue {
	values := slices.Collect(maps.Values(issues))
	slices.SortFunc(values, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
