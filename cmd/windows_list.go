package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/gitshell/internal/desktop"
	"github.com/zjrosen/gitshell/internal/keys"
	"github.com/zjrosen/gitshell/internal/presentation"
	"github.com/zjrosen/gitshell/internal/views"
)

var (
	winPrefix   string
	winResolved bool
)

var windowsListCmd = &cobra.Command{
	Use:   "windows:list",
	Short: "List all registered windows",
	Long: `List all registered windows and configured aliases as JSON.

Aliases come from windows.aliases in the config file. An alias whose target
is not registered is listed with "resolved": false.

Examples:
  # List everything
  gitshell windows:list

  # Only names under a namespace
  gitshell windows:list --prefix plugins.

  # Hide broken aliases
  gitshell windows:list --resolved

  # Parse specific fields with jq
  gitshell windows:list | jq '.[].qualified_name'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		reg, err := views.Register(desktop.New(), cfg.Windows.Namespace, views.Deps{KeyMap: keys.DefaultKeyMap()})
		if err != nil {
			return fmt.Errorf("registering windows: %w", err)
		}

		dtos := presentation.FromRegistry(reg, cfg.Windows.AliasMap())
		if winPrefix != "" {
			dtos = presentation.FilterPrefix(dtos, winPrefix)
		}
		if winResolved {
			dtos = presentation.FilterResolved(dtos)
		}

		return presentation.NewFormatter(cmd.OutOrStdout()).FormatWindows(dtos)
	},
}

func init() {
	windowsListCmd.Flags().StringVarP(&winPrefix, "prefix", "p", "", "Filter by qualified name prefix (e.g., plugins.)")
	windowsListCmd.Flags().BoolVar(&winResolved, "resolved", false, "Only list windows that resolve to a registered kind")
	rootCmd.AddCommand(windowsListCmd)
}
