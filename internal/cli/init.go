package cli

import (
	"fmt"

	"github.com/runoshun/issue-butler/internal/usecase"
	"github.com/spf13/cobra"
)

// newInitCommand creates the init command.
func newInitCommand(rt *runtime) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a starter report config",
		Long: `Create a starter report configuration file.

The file is written to the given path, the --config setting, or
"butler.toml" in the current directory.

Error conditions:
- File already exists and --force is not set: "config file already exists"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := rt.Settings().ConfigPath
			if len(args) == 1 {
				path = args[0]
			}

			uc := rt.container.InitConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitConfigInput{
				Path:  path,
				Force: force,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successStyle.Render("Created"), out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}
