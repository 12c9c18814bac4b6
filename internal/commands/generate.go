package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/joshmeranda/forgehub/pkg/render"
)

// GenerateCommand handles the generate command functionality
type GenerateCommand struct{}

// GenerateOptions holds command-line options for the generate command
type GenerateOptions struct {
	Oneline bool `long:"oneline" description:"Print the glyph literal on one line rather than grouped by week"`
	Help    bool `long:"help"    description:"Show this help message"                                         short:"h"`
}

// Help returns the help text for the generate command
func (c *GenerateCommand) Help() string {
	var opts GenerateOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[SOURCE] " + OptionsUsage

	formatter := &HelpFormatter{
		Command:     "generate",
		Description: "Generate a glyph literal from a human readable calendar drawing.",
		Examples: []Example{
			{Command: `forgehub generate "$(cat glyph.txt)"`, Description: "Generate from a file"},
			{Command: "forgehub generate - < glyph.txt", Description: "Generate from stdin"},
		},
		Notes: []string{
			"SOURCE rows use ' ', '-', '=', 'H' and '#' for levels 0 through 4.",
			"SOURCE cannot contain more than 7 rows, one per weekday.",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the generate command
func (c *GenerateCommand) Synopsis() string {
	return "Generate a glyph literal from calendar art"
}

// Run executes the generate command
func (c *GenerateCommand) Run(args []string) int {
	var opts GenerateOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[SOURCE] " + OptionsUsage

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
		fmt.Println("Error: missing required source value")
		return 1
	}

	source := remaining[0]
	if source == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Printf("Error: failed to read stdin: %v\n", err)
			return 1
		}
		source = string(data)
	}

	levels, err := glyphLevels(source)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	fmt.Println(formatGlyph(levels, opts.Oneline))
	return 0
}

// glyphLevels transposes row-oriented calendar art into the column major
// level order glyphs use. Rows are truncated to the shortest row.
func glyphLevels(source string) ([]int, error) {
	rawLines := strings.Split(strings.TrimRight(source, "\n"), "\n")
	if len(rawLines) > 7 {
		return nil, errors.New("source cannot contain more than 7 lines")
	}

	lines := make([][]rune, len(rawLines))
	width := -1
	for i, line := range rawLines {
		lines[i] = []rune(line)
		if width < 0 || len(lines[i]) < width {
			width = len(lines[i])
		}
	}

	var levels []int
	for col := range width {
		for _, line := range lines {
			level, ok := render.LevelOf(line[col])
			if !ok {
				return nil, fmt.Errorf("invalid cell character '%c'", line[col])
			}
			levels = append(levels, level)
		}
	}

	return levels, nil
}

// formatGlyph renders levels as a Go composite literal, grouped seven per
// line unless oneline is set.
func formatGlyph(levels []int, oneline bool) string {
	cells := make([]string, len(levels))
	for i, level := range levels {
		cells[i] = fmt.Sprintf("%d", level)
	}

	if oneline {
		return "{" + strings.Join(cells, ", ") + "}"
	}

	var builder strings.Builder
	builder.WriteString("{\n")
	for i := 0; i < len(cells); i += 7 {
		end := min(i+7, len(cells))
		builder.WriteString("\t" + strings.Join(cells[i:end], ", ") + ",\n")
	}
	builder.WriteString("}")

	return builder.String()
}

// GenerateCommandFactory creates a new generate command instance
func GenerateCommandFactory() (cli.Command, error) {
	return &GenerateCommand{}, nil
}
