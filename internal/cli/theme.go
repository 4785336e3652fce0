package cli

import (
	"github.com/spf13/cobra"
)

// themeCommand creates the theme command, which shows or persists the
// default chart theme used by render and explore.
func (c *CLI) themeCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or set the default chart theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.prefsStore()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				p, err := store.Load()
				if err != nil {
					return err
				}
				printKeyValue("Theme", p.ThemeValue().Name)
				printDetail("Preferences: %s", store.Path())
				return nil
			}
			p, err := store.SetTheme(args[0])
			if err != nil {
				return err
			}
			printSuccess("Theme set to %s", StyleHighlight.Render(p.Theme))
			return nil
		},
	}
}
