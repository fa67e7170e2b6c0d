package cli

import (
	"fmt"

	"github.com/runoshun/issue-butler/internal/domain"
	"github.com/spf13/cobra"
)

// newCheckCommand creates the check command.
func newCheckCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the report config without fetching anything",
		Long: `Load and validate the report config and print what generate would use:
team, owner (and where it came from), output path, template and the list of
issue references. No network requests are made.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := resolveReport(cmd, rt, "")
			if err != nil {
				return err
			}
			cfg := resolved.Config
			w := cmd.OutOrStdout()

			template := cfg.TemplatePath
			if template == "" {
				template = "(default)"
			}

			_, _ = fmt.Fprintf(w, "%s %s\n", keyStyle.Render("Team:    "), cfg.Team)
			_, _ = fmt.Fprintf(w, "%s %s %s\n", keyStyle.Render("Owner:   "), cfg.Owner, mutedStyle.Render("("+resolved.OwnerSource+")"))
			_, _ = fmt.Fprintf(w, "%s %s\n", keyStyle.Render("Output:  "), cfg.OutputPath())
			_, _ = fmt.Fprintf(w, "%s %s\n", keyStyle.Render("Template:"), template)
			_, _ = fmt.Fprintf(w, "%s %s %s, margin %s/%s/%s/%s\n", keyStyle.Render("Page:    "),
				cfg.Render.Format, cfg.Render.Orientation,
				cfg.Render.Margin.Top, cfg.Render.Margin.Right, cfg.Render.Margin.Bottom, cfg.Render.Margin.Left)
			_, _ = fmt.Fprintf(w, "%s %d\n", keyStyle.Render("Issues:  "), len(cfg.References))
			for _, ref := range cfg.References {
				_, _ = fmt.Fprintf(w, "  - %s\n", ref)
			}

			printWarnings(cmd.ErrOrStderr(), cfg.Warnings)
			if err := cfg.Render.Validate(); err != nil {
				return fmt.Errorf("%w: pdf: %w", domain.ErrConfiguration, err)
			}
			_, _ = fmt.Fprintln(w, successStyle.Render("OK"))
			return nil
		},
	}
}
