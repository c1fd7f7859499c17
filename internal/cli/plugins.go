package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vk/modkit/internal/plugin"
)

func (r *runner) pluginsCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "List registered plugins, highest priority first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := r.app.Registry().Plugins(kind)
			if len(infos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("No plugins registered."))
				return nil
			}

			t := newTable("ID", "TITLE", "KIND", "PRIORITY", "MENU")
			for _, info := range infos {
				t.Row(info.ID, info.Title, info.Kind, formatPriority(info.Priority), info.MenuPath)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "only list plugins of this kind (module, command, service)")
	return cmd
}

// formatPriority shows the symbolic name of a well-known priority and the
// number otherwise.
func formatPriority(p float64) string {
	if name := plugin.PriorityName(p); name != "" {
		return name
	}
	return strconv.FormatFloat(p, 'g', -1, 64)
}
