package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/toolverse/pkg/catalog"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for toolverse.

Bash:
  $ source <(toolverse completion bash)

Zsh:
  $ toolverse completion zsh > "${fpath[1]}/_toolverse"

Fish:
  $ toolverse completion fish > ~/.config/fish/completions/toolverse.fish

PowerShell:
  PS> toolverse completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}

// completeCategoryIDs completes built-in category ids with their names as
// descriptions.
func completeCategoryIDs(_ *cobra.Command, _ []string, prefix string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, cat := range catalog.Builtin().Categories {
		if strings.HasPrefix(cat.ID, prefix) {
			out = append(out, cat.ID+"\t"+cat.Name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeToolIDs completes built-in tool ids.
func completeToolIDs(_ *cobra.Command, _ []string, prefix string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, cat := range catalog.Builtin().Categories {
		for _, t := range cat.Tools {
			if strings.HasPrefix(t.ID, prefix) {
				out = append(out, t.ID+"\t"+t.Name)
			}
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeThemes completes theme names.
func completeThemes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"light", "dark"}, cobra.ShellCompDirectiveNoFileComp
}
