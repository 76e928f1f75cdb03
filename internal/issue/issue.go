// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
)

type Id int

const (
	EjectAbortedId Id = iota + 1
	NothingToEjectId
	CommandNotFoundId
	CapabilityMissingId
	DestinationExistsId
	ProjectRootNotFoundId
	ConfigLoadFailedId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue's markdown help text with the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	ejectAbortedIssue = &Issue{
		id: EjectAbortedId,
		mdMsg: `
# Ejection aborted

Nothing was copied and nothing was removed. Ejection only proceeds after an
explicit confirmation, because it is irreversible.

Re-run the command and answer **yes** when you are ready:
~~~
$ crowbar eject
~~~`,
	}

	nothingToEjectIssue = &Issue{
		id: NothingToEjectId,
		mdMsg: `
# Nothing to eject

No registered command can be ejected. Either no plugins are installed, or
every installed plugin has already been ejected.

## Things you can try:
- List the registered commands:
~~~
$ crowbar list
~~~

- Check the plugins directory configured under ` + "`plugins.dir`" + `:
~~~
$ crowbar config show
~~~`,
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# Command not found

No registered command matches the group and command you asked for.

## Things you can try:
- List all registered commands and their groups:
~~~
$ crowbar list
~~~

- Check for typos in the --group and --command values
- Note that the built-in commands (eject, version) can never be ejected`,
	}

	capabilityMissingIssue = &Issue{
		id: CapabilityMissingId,
		mdMsg: `
# Command cannot be ejected

The command you targeted exists, but its plugin does not declare an eject
capability, so there is nothing to copy into your project.

## Things you can try:
- List commands with their ejectable marker:
~~~
$ crowbar list
~~~

- Run a broad ejection instead; commands without the capability are skipped
  with a warning:
~~~
$ crowbar eject
~~~`,
	}

	destinationExistsIssue = &Issue{
		id: DestinationExistsId,
		mdMsg: `
# Destination file already exists

A file the ejection would create already exists in your project. Nothing was
copied: relocation is all-or-nothing, so a single collision aborts the whole
batch before any write.

## Things you can try:
- Move or delete the colliding file named in the error above, then re-run:
~~~
$ crowbar eject
~~~

- Eject a narrower selection with --group/--command`,
	}

	projectRootNotFoundIssue = &Issue{
		id: ProjectRootNotFoundId,
		mdMsg: `
# No project root found

Ejection copies files into the nearest directory containing a package.json,
and none was found above the current directory.

## Things you can try:
- Run the command from inside your project:
~~~
$ cd /path/to/your/project
$ crowbar eject
~~~

- Create a manifest first:
~~~
$ npm init -y
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

Your crowbar configuration file exists but could not be read or parsed.

## Configuration file locations:
- Linux: ~/.config/crowbar/config.toml
- macOS: ~/Library/Application Support/crowbar/config.toml
- Windows: %APPDATA%\crowbar\config.toml

## Things you can try:
- Check the TOML syntax of the file
- Remove the config file to use defaults

## Example configuration:
~~~toml
[plugins]
dir = "/home/user/.config/crowbar/plugins"

[ui]
verbose = false

[install]
command = ["npm", "install"]
~~~`,
	}

	issues = map[Id]*Issue{
		ejectAbortedIssue.Id():        ejectAbortedIssue,
		nothingToEjectIssue.Id():      nothingToEjectIssue,
		commandNotFoundIssue.Id():     commandNotFoundIssue,
		capabilityMissingIssue.Id():   capabilityMissingIssue,
		destinationExistsIssue.Id():   destinationExistsIssue,
		projectRootNotFoundIssue.Id(): projectRootNotFoundIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
	}
)

// Get returns the catalog entry for id, or nil when the id is unknown.
func Get(id Id) *Issue {
	return issues[id]
}
