// Package completion provides the completion command.
package completion

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/omm/internal/cmd/completion"
)

// NewCommand creates the completion command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate completion script",
		Long: `To load completions:

Bash:

  $ source <(omm completion bash)

Zsh:

  $ omm completion zsh > "${fpath[1]}/_omm"

Fish:

  $ omm completion fish | source

PowerShell:

  PS> omm completion powershell | Out-String | Invoke-Expression

Version arguments complete from the versions found in the store file.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completion.Shells(),
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()
			switch args[0] {
			case completion.ShellBash:
				return root.GenBashCompletionV2(out, true)
			case completion.ShellZsh:
				return root.GenZshCompletion(out)
			case completion.ShellFish:
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
