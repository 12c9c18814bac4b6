package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/joshmeranda/forgehub/pkg/cache"
)

// CleanCommand handles the clean command functionality
type CleanCommand struct{}

// CleanOptions holds command-line options for the clean command
type CleanOptions struct {
	Verbose bool `short:"v" long:"verbose" description:"Verbose output showing what is being cleaned"`
	Help    bool `short:"h" long:"help"    description:"Show this help message"`
}

// Help returns the help text for the clean command
func (c *CleanCommand) Help() string {
	var opts CleanOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "clean",
		Description: "Remove repositories forgehub cloned into its cache.",
		Examples: []Example{
			{Command: "forgehub clean", Description: "Remove all cached repositories"},
			{Command: "forgehub clean --verbose", Description: "Show detailed output"},
		},
		Notes: []string{
			"Repositories kept with --no-clean live in the cache until cleaned.",
			"Local repositories passed to draw by path are never touched.",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the clean command
func (c *CleanCommand) Synopsis() string {
	return "Remove cached cloned repositories"
}

// Run executes the clean command
func (c *CleanCommand) Run(args []string) int {
	var opts CleanOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	_, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		fmt.Printf("Error parsing arguments: %v\n", err)
		return 1
	}

	cacheDir := cache.Dir()

	if _, err := os.Stat(cacheDir); err != nil {
		if opts.Verbose {
			fmt.Println("No cache directory found to clean.")
		}
		return 0
	}

	if opts.Verbose {
		fmt.Printf("Cleaning cache directory: %s\n", cacheDir)
	}

	if err := cache.Clean(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	fmt.Printf("Cleaned %s.\n", cacheDir)
	return 0
}

// CleanCommandFactory creates a new clean command instance
func CleanCommandFactory() (cli.Command, error) {
	return &CleanCommand{}, nil
}
