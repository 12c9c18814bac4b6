package commands

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"
)

// HelpCommand handles the help command functionality
type HelpCommand struct {
	UI cli.Ui // User interface for command output
}

// HelpOptions holds command-line options for the help command
type HelpOptions struct {
	Help bool `short:"h" long:"help" description:"Show this help message"`
}

// Help returns the help text for the help command
func (c *HelpCommand) Help() string {
	helpText := `
Show help for a specific command.

Usage: forgehub help [COMMAND]

If COMMAND is specified, shows detailed help for that command.
If no command is specified, shows general help.

Available commands:
  clean      Remove cached cloned repositories
  draw       Draw text on the GitHub activity calendar
  generate   Generate a glyph literal from calendar art
  render     Preview text as an activity calendar

`
	return helpText
}

// Synopsis returns a short description of the help command
func (c *HelpCommand) Synopsis() string {
	return "Show help for a specific command"
}

// Run executes the help command
func (c *HelpCommand) Run(args []string) int {
	var opts HelpOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[COMMAND]"

	remaining, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		fmt.Printf("Error parsing arguments: %v\n", err)
		return 1
	}

	if len(remaining) == 0 {
		fmt.Print(c.Help())
		return 0
	}

	command := remaining[0]

	commandHelp := map[string]string{
		"draw":     "Forge backdated commits spelling out a message and push them to GitHub.",
		"render":   "Preview how text will look on the activity calendar without touching a repository.",
		"generate": "Turn human readable calendar art into a glyph literal for new font characters.",
		"clean":    "Remove repositories forgehub cloned into its cache.",
		"help":     "Show help information for commands.",
	}

	if help, exists := commandHelp[command]; exists {
		fmt.Printf("Command: %s\n\n", command)
		fmt.Printf("Description: %s\n\n", help)
		fmt.Printf("For detailed usage information, run:\n")
		fmt.Printf("  forgehub %s --help\n", command)
	} else {
		fmt.Printf("Unknown command: %s\n\n", command)
		fmt.Println("Available commands:")
		for cmd := range commandHelp {
			fmt.Printf("  %s\n", cmd)
		}
		return 1
	}

	return 0
}

// HelpCommandFactory creates a new help command instance
func HelpCommandFactory() (cli.Command, error) {
	return &HelpCommand{}, nil
}
