package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/joshmeranda/forgehub/pkg/cache"
	"github.com/joshmeranda/forgehub/pkg/config"
	"github.com/joshmeranda/forgehub/pkg/events"
	"github.com/joshmeranda/forgehub/pkg/git"
	"github.com/joshmeranda/forgehub/pkg/render"
)

// DrawCommand handles the draw command functionality
type DrawCommand struct{}

// DrawOptions holds command-line options for the draw command
type DrawOptions struct {
	Dilute      bool   `short:"d" long:"dilute"       description:"Dilute existing activity by generating even more commits"`
	User        string `          long:"user"         description:"Target user, defaults to the token's user or the global git config"`
	Token       string `short:"t" long:"token"        description:"GitHub access token"`
	TokenFile   string `short:"f" long:"token-file"   description:"Read the GitHub access token from the given file"`
	Public      string `          long:"public"       description:"Public ssh key for remote operations"`
	Private     string `          long:"private"      description:"Private ssh key for remote operations"`
	NoClean     bool   `          long:"no-clean"     description:"Do not remove cloned repositories after commits are pushed"`
	NoPush      bool   `short:"n" long:"no-push"      description:"Do not push the crafted commits (implies --no-clean)"`
	Create      bool   `          long:"create"       description:"Create a new repository named REPO instead of using an existing one"`
	Replace     bool   `          long:"replace"      description:"With --create, delete and recreate a repository that already exists"`
	PrivateRepo bool   `          long:"private-repo" description:"With --create, make the new repository private"`
	Config      string `short:"c" long:"config"       description:"Path to config file"`
	Help        bool   `short:"h" long:"help"         description:"Show this help message"`
}

// Help returns the help text for the draw command
func (c *DrawCommand) Help() string {
	var opts DrawOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "TEXT REPO " + OptionsUsage

	formatter := &HelpFormatter{
		Command:     "draw",
		Description: "Draw TEXT on the GitHub activity calendar by forging commits in REPO.",
		Examples: []Example{
			{Command: "forgehub draw BOOCHIE ./forgehub-test", Description: "Forge into a local repository"},
			{
				Command:     "forgehub draw HI git@github.com:user/canvas.git -f ~/.github-token",
				Description: "Clone, forge, and push",
			},
			{Command: "forgehub draw HI canvas --create -t TOKEN", Description: "Create the repository first"},
		},
		Notes: []string{
			"REPO is a local path, an upstream url, or with --create a repository name.",
			"Activity is sampled from the last 90 days of events, the most the API exposes.",
			"--no-push leaves the commits local so they can be inspected before pushing.",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the draw command
func (c *DrawCommand) Synopsis() string {
	return "Draw text on the GitHub activity calendar"
}

// Run executes the draw command
func (c *DrawCommand) Run(args []string) int {
	var opts DrawOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "TEXT REPO " + OptionsUsage

	remaining, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		fmt.Printf("Error parsing arguments: %v\n", err)
		return exitUsage
	}

	if len(remaining) != 2 {
		fmt.Println("Error: expected exactly two arguments: TEXT and REPO")
		return exitUsage
	}
	text, repoArg := remaining[0], remaining[1]

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return exitUsage
	}

	token, err := resolveToken(opts.Token, opts.TokenFile, cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return exitUsage
	}

	ctx := context.Background()
	client := events.NewClient(token)

	login, err := resolveLogin(ctx, client, opts.User, token)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return exitUsage
	}

	fmt.Printf("retrieving activity for user '%s'...\n", login)
	_, maxPerDay, err := client.MaxEventsPerDay(ctx, login)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return exitUsage
	}
	boundaries := events.GetBoundaries(maxPerDay, opts.Dilute)

	fmt.Println("rendering output...")
	levelMap, err := render.TextRenderer{}.Render(text, render.LastWeekEnd())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return exitUsage
	}

	plan, err := levelMap.Scale(boundaries)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return exitUsage
	}

	fmt.Println("initializing repository...")
	driver, err := c.initDriver(ctx, client, repoArg, &opts, cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return exitInit
	}

	fmt.Println("crafting commits...")
	if err := driver.ForgeCommits(plan); err != nil {
		fmt.Printf("Error: %v\n", err)
		return exitForge
	}

	if !opts.NoPush {
		fmt.Println("pushing to upstream...")

		auth, err := c.sshAuth(&opts, cfg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return exitPush
		}

		if err := driver.Push(ctx, cfg.Remote, nil, auth); err != nil {
			fmt.Printf("Error: %v\n", err)
			return exitPush
		}

		if !opts.NoClean {
			if err := driver.Cleanup(); err != nil {
				fmt.Printf("Warning: %v\n", err)
			}
		}
	}

	return 0
}

// sshAuth builds the transport auth from the flags or the config file.
func (c *DrawCommand) sshAuth(opts *DrawOptions, cfg *config.Config) (transport.AuthMethod, error) {
	private := opts.Private
	if private == "" {
		private = cfg.PrivateKey
	}

	return git.NewSSHAuth(private)
}

// initDriver opens, clones, or creates the repository named by repoArg.
func (c *DrawCommand) initDriver(
	ctx context.Context,
	client *events.Client,
	repoArg string,
	opts *DrawOptions,
	cfg *config.Config,
) (*git.Driver, error) {
	if opts.Create {
		upstream, err := client.CreateRepository(ctx, repoArg, events.CreateRepositoryOptions{
			Private: opts.PrivateRepo,
			Replace: opts.Replace,
		})
		if err != nil {
			return nil, err
		}

		return c.cloneDriver(repoArg, upstream, opts, cfg)
	}

	if _, err := os.Stat(repoArg); err == nil {
		return git.Open(repoArg)
	}

	return c.cloneDriver(repoNameFromURL(repoArg), repoArg, opts, cfg)
}

// cloneDriver clones upstream into the cache and wraps it in a driver.
func (c *DrawCommand) cloneDriver(
	name, upstream string,
	opts *DrawOptions,
	cfg *config.Config,
) (*git.Driver, error) {
	auth, err := c.sshAuth(opts, cfg)
	if err != nil {
		return nil, err
	}

	path, err := cache.RepoDir(name)
	if err != nil {
		return nil, err
	}

	return git.Clone(path, upstream, auth)
}

// DrawCommandFactory creates a new draw command instance
func DrawCommandFactory() (cli.Command, error) {
	return &DrawCommand{}, nil
}
