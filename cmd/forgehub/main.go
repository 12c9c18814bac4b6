// Package main provides the forgehub command-line tool, which abuses the
// GitHub activity calendar to draw patterns or write messages.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/joshmeranda/forgehub/internal/commands"
)

// Version information set by GoReleaser
var (
	version = "dev"
	commit  = "none"    //nolint:unused // Set by GoReleaser
	date    = "unknown" //nolint:unused // Set by GoReleaser
)

func main() {
	c := cli.NewCLI("forgehub", version)
	c.Args = os.Args[1:]
	c.HelpFunc = customHelpFunc
	c.Commands = map[string]cli.CommandFactory{
		"clean":    commands.CleanCommandFactory,
		"draw":     commands.DrawCommandFactory,
		"generate": commands.GenerateCommandFactory,
		"help":     commands.HelpCommandFactory,
		"render":   commands.RenderCommandFactory,
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitStatus)
}

// customHelpFunc formats the top-level help in an argparse-like layout
func customHelpFunc(cmdFactories map[string]cli.CommandFactory) string {
	var commandNames []string
	for name := range cmdFactories {
		if name != "help" {
			commandNames = append(commandNames, name)
		}
	}

	sort.Strings(commandNames)

	usageLine := "usage: forgehub [-h] [--version]\n"
	usageLine += "                {"
	usageLine += strings.Join(commandNames, ",")
	usageLine += "}\n                ...\n"

	helpText := usageLine + `
Abuse the github activity calendar to draw patterns or write messages.

positional arguments:
  {` + strings.Join(commandNames, ",") + `}
    clean       Remove cached cloned repositories
    draw        Draw text on the GitHub activity calendar by forging commits
    generate    Generate a glyph literal from a human readable drawing
    render      Preview text as an activity calendar

optional arguments:
  -h, --help      show this help message and exit
  --version       show program's version number and exit
`

	return helpText
}
