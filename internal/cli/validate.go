package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (r *runner) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every module and manifest for metadata errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := r.app.Validate(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Validation failed."))
				return &ExitError{Code: 1, Message: err.Error()}
			}
			n := len(r.app.Registry().Modules())
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(fmt.Sprintf("All %d modules are valid.", n)))
			return nil
		},
	}
}
