package cli

import (
	"fmt"

	"github.com/runoshun/issue-butler/internal/domain"
	"github.com/spf13/cobra"
)

// newTemplateCommand creates the template command.
func newTemplateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print the default HTML report template",
		Long: `Print the embedded HTML report template.

Redirect it to a file, edit it and point "template" in the report config
(or --template on generate) at the copy. The template is executed with
Go html/template and receives:

  .TeamName                 display name, e.g. "PLATFORM Team"
  .Cards                    one entry per fetched issue, in config order
    .ID .Number .Title .TeamName
    .Labels                 each with .Name and .Style (inline CSS)
    .Body                   sanitized HTML rendered from the issue markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), domain.DefaultReportTemplate())
			return nil
		},
	}
}
