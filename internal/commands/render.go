package commands

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/joshmeranda/forgehub/pkg/render"
)

// RenderCommand handles the render command functionality
type RenderCommand struct{}

// RenderOptions holds command-line options for the render command
type RenderOptions struct {
	Color  bool   `long:"color"  description:"Render the calendar with the GitHub color palette" short:"C"`
	Output string `long:"output" description:"Write the raw data level map to the given file"    short:"o"`
	Help   bool   `long:"help"   description:"Show this help message"                            short:"h"`
}

// Help returns the help text for the render command
func (c *RenderCommand) Help() string {
	var opts RenderOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "TEXT " + OptionsUsage

	formatter := &HelpFormatter{
		Command:     "render",
		Description: "Preview how TEXT will look on the activity calendar without touching any repository.",
		Examples: []Example{
			{Command: "forgehub render BOOCHIE", Description: "Preview as ASCII art"},
			{Command: "forgehub render HI --color", Description: "Preview with calendar colors"},
			{Command: "forgehub render HI -o hi.yaml", Description: "Dump the data level map"},
		},
		Notes: []string{
			"Dumped maps can be edited by hand and fed back through other tooling.",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the render command
func (c *RenderCommand) Synopsis() string {
	return "Preview text as an activity calendar"
}

// Run executes the render command
func (c *RenderCommand) Run(args []string) int {
	var opts RenderOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "TEXT " + OptionsUsage

	remaining, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		fmt.Printf("Error parsing arguments: %v\n", err)
		return 1
	}

	if len(remaining) != 1 {
		fmt.Println("Error: expected exactly one argument: TEXT")
		return 1
	}

	levelMap, err := render.TextRenderer{}.Render(remaining[0], render.LastWeekEnd())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	if opts.Output != "" {
		if err := levelMap.WriteFile(opts.Output); err != nil {
			fmt.Printf("Error: %v\n", err)
			return 1
		}
		fmt.Printf("Data level map written to %s\n", opts.Output)
	}

	if opts.Color {
		fmt.Println(levelMap.Styled())
	} else {
		fmt.Println(levelMap.String())
	}

	return 0
}

// RenderCommandFactory creates a new render command instance
func RenderCommandFactory() (cli.Command, error) {
	return &RenderCommand{}, nil
}
