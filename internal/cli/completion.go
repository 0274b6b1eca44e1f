package cli

import (
	"github.com/spf13/cobra"
)

const completionHelp = `Print a shell completion script for histoscene.

  bash:        source <(histoscene completion bash)
  zsh:         histoscene completion zsh > "${fpath[1]}/_histoscene"
  fish:        histoscene completion fish | source
  powershell:  histoscene completion powershell | Out-String | Invoke-Expression

Demo dataset names and format values complete as well.`

func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  completionHelp,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return root.GenBashCompletionV2(out, true)
		},
	}
}
