package cli

import (
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/histoscene/pkg/chart"
)

// demoCommand creates the demo command, which renders a built-in dataset.
func (c *CLI) demoCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "demo [name]",
		Short: "Render a built-in demo dataset",
		Long: `Render one of the built-in datasets (` + strings.Join(chart.DemoNames(), ", ") + `).

Without a name, an interactive picker is shown on a terminal; otherwise the
"` + chart.DefaultDemo + `" dataset is used. Outputs are named after the dataset.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: chart.DemoNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, c.Config.Render)
			if err != nil {
				return err
			}

			name := chart.DefaultDemo
			switch {
			case len(args) == 1:
				name = args[0]
			case isInteractive():
				picked, err := pickDemo()
				if err != nil {
					return err
				}
				if picked == "" {
					printDetail("No selection made")
					return nil
				}
				name = picked
			}

			spec, err := chart.Demo(name)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), spec, name, name, &flags, opts)
		},
	}
	flags.register(cmd)
	return cmd
}

// pickDemo runs the dataset picker. It returns "" when the user quits.
func pickDemo() (string, error) {
	finalModel, err := tea.NewProgram(NewDemoListModel(demoEntries())).Run()
	if err != nil {
		return "", err
	}
	m, ok := finalModel.(DemoListModel)
	if !ok || m.Selected == nil {
		return "", nil
	}
	return m.Selected.Name, nil
}

// isInteractive reports whether stdin and stdout are both terminals.
func isInteractive() bool {
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		fi, err := f.Stat()
		if err != nil || fi.Mode()&os.ModeCharDevice == 0 {
			return false
		}
	}
	return true
}
