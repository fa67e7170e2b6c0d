// Package cli provides the command-line interface for issue-butler.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/issue-butler/internal/app"
	"github.com/runoshun/issue-butler/internal/infra/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Command group IDs.
const (
	groupReport = "report"
	groupSetup  = "setup"
)

// newContainerFunc builds the container from settings, allowing it to be replaced in tests.
var newContainerFunc = app.New

// runtime carries the settings source and the lazily built container to subcommands.
type runtime struct {
	v         *viper.Viper
	container *app.Container
	owned     bool // container was built here and must be closed
}

// Settings returns the current process settings.
func (rt *runtime) Settings() config.Settings {
	return config.LoadSettings(rt.v)
}

// close releases a container built by the root command. Injected containers are left open.
func (rt *runtime) close() error {
	if !rt.owned {
		return nil
	}
	err := rt.container.Close()
	rt.container = nil
	rt.owned = false
	return err
}

// Execute runs butler with the process arguments and releases the container afterwards,
// whether or not the command succeeded.
func Execute(ctx context.Context, version string) error {
	root, rt := newRootCommand(nil, version)
	return execute(ctx, root, rt)
}

func execute(ctx context.Context, root *cobra.Command, rt *runtime) error {
	err := root.ExecuteContext(ctx)
	if closeErr := rt.close(); closeErr != nil {
		err = errors.Join(err, fmt.Errorf("close container: %w", closeErr))
	}
	return err
}

// NewRootCommand creates the root command for butler.
// A nil container is built from flags and environment before a subcommand runs.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root, _ := newRootCommand(c, version)
	return root
}

func newRootCommand(c *app.Container, version string) (*cobra.Command, *runtime) {
	rt := &runtime{v: config.NewViper(), container: c}

	root := &cobra.Command{
		Use:   "butler",
		Short: "Render GitHub issues into a PDF report",
		Long: `butler fetches a configured list of GitHub issues, turns each one into a
card (title, labels, markdown body) and renders all cards into a single PDF
through a headless Chrome instance.

Settings come from flags, BUTLER_* environment variables (a .env file in the
working directory is loaded first) and the report config file.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if rt.container != nil || !needsContainer(cmd) {
				return nil
			}
			container, err := newContainerFunc(rt.Settings())
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			rt.container = container
			rt.owned = true
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "Report config file (default \"butler.toml\")")
	flags.String("token", "", "GitHub token (default from BUTLER_TOKEN, GITHUB_TOKEN or TOKEN)")
	flags.String("team", "", "Team name, overrides the config file")
	flags.String("owner", "", "Repository owner, overrides the config file and git remote")
	flags.String("output-dir", "", "Directory for the generated PDF (default \"files\")")
	flags.String("github-url", "", "GitHub API base URL (default \"https://api.github.com\")")
	flags.Duration("fetch-timeout", 0, "Timeout for each issue fetch (default 30s)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (default \"info\")")
	flags.String("log-format", "", "Log format: text or json (default \"text\")")
	flags.String("log-file", "", "Also append logs to this file")
	flags.String("chrome-bin", "", "Chrome or Chromium binary used for PDF rendering")
	flags.Bool("no-sandbox", false, "Run Chrome without its sandbox (needed in some containers)")

	for key, name := range map[string]string{
		config.KeyConfig:       "config",
		config.KeyToken:        "token",
		config.KeyTeam:         "team",
		config.KeyOwner:        "owner",
		config.KeyOutputDir:    "output-dir",
		config.KeyGitHubURL:    "github-url",
		config.KeyFetchTimeout: "fetch-timeout",
		config.KeyLogLevel:     "log-level",
		config.KeyLogFormat:    "log-format",
		config.KeyLogFile:      "log-file",
		config.KeyChromeBin:    "chrome-bin",
		config.KeyNoSandbox:    "no-sandbox",
	} {
		_ = rt.v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddGroup(
		&cobra.Group{ID: groupReport, Title: "Report Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	generateCmd := newGenerateCommand(rt)
	generateCmd.GroupID = groupReport
	checkCmd := newCheckCommand(rt)
	checkCmd.GroupID = groupReport
	initCmd := newInitCommand(rt)
	initCmd.GroupID = groupSetup
	templateCmd := newTemplateCommand()
	templateCmd.GroupID = groupSetup

	root.AddCommand(generateCmd, checkCmd, initCmd, templateCmd)
	return root, rt
}

// needsContainer reports whether cmd uses any port from the container.
func needsContainer(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "template", "help", "completion", "__complete":
		return false
	}
	return cmd.Runnable()
}
