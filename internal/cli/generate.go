package cli

import (
	"fmt"
	"io"

	"github.com/runoshun/issue-butler/internal/domain"
	"github.com/runoshun/issue-butler/internal/usecase"
	"github.com/spf13/cobra"
)

// stdoutPath selects streaming the PDF to stdout.
const stdoutPath = "-"

// newGenerateCommand creates the generate command.
func newGenerateCommand(rt *runtime) *cobra.Command {
	var opts struct {
		output   string
		template string
	}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Fetch the configured issues and render the PDF report",
		Long: `Fetch every issue listed in the report config, render each one as a card
and write all cards into a single PDF.

Issues that cannot be fetched are dropped from the report and listed in the
summary. The run fails only when no card could be built or the PDF could
not be rendered.

By default the PDF is written to <output_dir>/<team>.pdf. Use --output to
choose another file, or "--output -" to write the PDF to stdout.`,
		Example: `  butler generate
  butler gen --team platform --owner acme
  butler generate -o - > report.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := resolveReport(cmd, rt, opts.template)
			if err != nil {
				return err
			}
			printWarnings(cmd.ErrOrStderr(), resolved.Config.Warnings)

			in := usecase.GenerateReportInput{
				Config:     resolved.Config,
				OutputPath: opts.output,
				Mode:       domain.OutputFile,
			}
			if opts.output == stdoutPath {
				in.OutputPath = ""
				in.Mode = domain.OutputStream
			}

			out, err := rt.container.GenerateReportUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			summary := cmd.OutOrStdout()
			if in.Mode == domain.OutputStream {
				summary = cmd.ErrOrStderr()
				if err := copyStream(cmd.OutOrStdout(), out.Artifact); err != nil {
					return err
				}
			}
			printSummary(summary, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `Output file, or "-" for stdout (default "<output_dir>/<team>.pdf")`)
	cmd.Flags().StringVar(&opts.template, "template", "", "HTML template file, overrides the config file")
	return cmd
}

// copyStream drains a stream artifact into w and closes it.
func copyStream(w io.Writer, artifact *domain.Artifact) error {
	if artifact.Stream == nil {
		return fmt.Errorf("%w: no stream in artifact", domain.ErrRender)
	}
	n, err := io.Copy(w, artifact.Stream)
	closeErr := artifact.Stream.Close()
	if err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: %w", domain.ErrRender, closeErr)
	}
	artifact.BytesWritten = n
	return nil
}

func printSummary(w io.Writer, out *usecase.GenerateReportOutput) {
	_, _ = fmt.Fprintf(w, "%s %d card(s)\n", successStyle.Render("Rendered"), len(out.Cards))
	if len(out.Failures) > 0 {
		_, _ = fmt.Fprintf(w, "%s %d issue(s)\n", warningStyle.Render("Dropped"), len(out.Failures))
		for _, f := range out.Failures {
			_, _ = fmt.Fprintf(w, "  - %s\n", f.Error())
		}
	}

	switch out.Artifact.Mode {
	case domain.OutputStream:
		_, _ = fmt.Fprintf(w, "%s stdout (%d bytes)\n", keyStyle.Render("Output:"), out.Artifact.BytesWritten)
	default:
		_, _ = fmt.Fprintf(w, "%s %s\n", keyStyle.Render("Output:"), out.Artifact.Path)
	}
	_, _ = fmt.Fprintln(w, mutedStyle.Render("run "+out.RunID))
}

func printWarnings(w io.Writer, warnings []string) {
	for _, msg := range warnings {
		_, _ = fmt.Fprintln(w, formatWarning(msg))
	}
}

// resolveReport loads the report config with flag and environment overrides applied.
func resolveReport(cmd *cobra.Command, rt *runtime, templatePath string) (*usecase.ResolveReportOutput, error) {
	s := rt.Settings()
	return rt.container.ResolveReportUseCase().Execute(cmd.Context(), usecase.ResolveReportInput{
		ConfigPath:   s.ConfigPath,
		Team:         s.Team,
		Owner:        s.Owner,
		OutputDir:    s.OutputDir,
		TemplatePath: templatePath,
	})
}
