package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"

	"github.com/benrod3k/hostobj/commands"
	"github.com/benrod3k/hostobj/server"
)

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the hostobj version",
	Long:  `Shows the current version. With --check, also queries GitHub for the latest release.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// token is optional; ignore keyring misses
		token, _ := keyring.Get(server.KeyringService, server.KeyringUser)

		response := commands.VersionCommand(server.Version, versionCheck, token)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf(response.Error)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "check GitHub for a newer release")
}
