package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/vk/modkit/internal/module"
	"github.com/vk/modkit/internal/param"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (r *runner) paramsCmd() *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "params [module]",
		Short: "Show the parameters of one or all modules",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := r.app.Registry()

			infos := reg.Modules()
			if len(args) == 1 {
				mi, ok := reg.Module(args[0])
				if !ok {
					return &ExitError{Code: 1, Message: fmt.Sprintf("unknown module '%s'", args[0])}
				}
				infos = []*module.Info{mi}
			}

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			var failed []string
			for _, mi := range infos {
				// Items returns the parameters it could build alongside the
				// errors of the others.
				items, err := mi.Items()
				fmt.Fprintln(out, TitleStyle.Render(mi.Name)+" "+SubtitleStyle.Render(mi.Type.String()))
				if dump {
					dumpItems(out, items)
				} else {
					fmt.Fprintln(out, itemTable(items).String())
				}
				if err != nil {
					fmt.Fprintln(errOut, ErrorStyle.Render(err.Error()))
					failed = append(failed, mi.Name)
				}
			}
			if len(failed) > 0 {
				return &ExitError{Code: 1, Message: fmt.Sprintf("invalid parameters in: %s", strings.Join(failed, ", "))}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the full metadata of every parameter")
	return cmd
}

func itemTable(items []*module.Item) *table.Table {
	t := newTable("NAME", "TYPE", "IO", "LABEL", "MIN", "MAX", "STEP", "CHOICES", "FLAGS")
	for _, item := range items {
		minimum, err := item.MinimumValue()
		minCell := cell(minimum, err)
		maximum, err := item.MaximumValue()
		maxCell := cell(maximum, err)
		step, err := item.StepSize()
		stepCell := "-"
		if err != nil {
			stepCell = ErrorStyle.Render("invalid")
		} else if step != nil {
			stepCell = step.Text('g', -1)
		}
		choices, err := item.Choices()
		choiceCell := "-"
		if err != nil {
			choiceCell = ErrorStyle.Render("invalid")
		} else if len(choices) > 0 {
			parts := make([]string, len(choices))
			for i, c := range choices {
				parts[i] = fmt.Sprint(c)
			}
			choiceCell = strings.Join(parts, ", ")
		}

		t.Row(
			item.Name(),
			item.Type().String(),
			item.IOType().String(),
			item.Label(),
			minCell, maxCell, stepCell, choiceCell,
			itemFlags(item),
		)
	}
	return t
}

func cell(v any, err error) string {
	switch {
	case err != nil:
		return ErrorStyle.Render("invalid")
	case v == nil:
		return "-"
	}
	return fmt.Sprint(v)
}

func itemFlags(item *module.Item) string {
	var fs []string
	if item.IsRequired() {
		fs = append(fs, "required")
	}
	if item.IsPersisted() {
		fs = append(fs, "persist")
	}
	if item.Visibility() != param.Normal {
		fs = append(fs, item.Visibility().String())
	}
	if item.Callback() != "" {
		fs = append(fs, "callback="+item.Callback())
	}
	return strings.Join(fs, " ")
}

func dumpItems(w io.Writer, items []*module.Item) {
	for _, item := range items {
		fmt.Fprintf(w, "%s (%s):\n", item.Name(), item.Type())
		dumpConfig.Fdump(w, item.Metadata())
	}
}
