// ABOUTME: Configure command for the terra CLI
// ABOUTME: Launches the interactive configuration wizard

package cmd

import (
	"github.com/Atlas00000/terra-client/cli/internal/client"
	"github.com/Atlas00000/terra-client/cli/internal/tui"
	"github.com/spf13/cobra"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Interactive configuration wizard",
	Long: `Walk through the three configuration questions interactively and view the
recommended product stack.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(client.New(GetAPIURL()))
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)
}
