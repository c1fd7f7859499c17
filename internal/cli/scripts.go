package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"
	"github.com/vk/modkit/internal/script"
)

func (r *runner) scriptsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scripts [dir...]",
		Short: "Discover scripts and show the menu they would appear in",
		Long: `Discover scripts and show the menu they would appear in.

Without arguments the directories listed under scripts.dirs in the
configuration are searched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scripts, err := r.app.Scripts(args...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(scripts) == 0 {
				fmt.Fprintln(out, SubtitleStyle.Render("No scripts found."))
				return nil
			}
			fmt.Fprintln(out, menuTree(scripts).String())
			return nil
		},
	}
}

// menuTree arranges scripts by their menu path. Sibling menus keep the order
// in which discovery first reached them.
func menuTree(scripts []*script.Info) *tree.Tree {
	root := tree.Root(TitleStyle.Render("Scripts"))
	menus := map[string]*tree.Tree{"": root}

	for _, s := range scripts {
		parent := root
		names := s.MenuPath.Names()
		for i := range len(names) - 1 {
			key := strings.Join(names[:i+1], script.MenuSeparator)
			sub, ok := menus[key]
			if !ok {
				sub = tree.Root(names[i])
				parent.Child(sub)
				menus[key] = sub
			}
			parent = sub
		}
		leaf := fmt.Sprintf("%s %s", leafStyle.Render(s.Title()), SubtitleStyle.Render("("+s.Language.Name+")"))
		parent.Child(leaf)
	}
	return root
}
