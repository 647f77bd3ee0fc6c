package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"

	"github.com/benrod3k/hostobj/server"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "API token management commands",
	Long:  `Commands for managing the GitHub API token used by release lookups.`,
}

var authSetTokenCmd = &cobra.Command{
	Use:   "set-token <token>",
	Short: "Store an API token",
	Long:  `Stores the given token in the system keyring.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := keyring.Set(server.KeyringService, server.KeyringUser, args[0]); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}

		fmt.Println("Token stored.")
		return nil
	},
}

var authTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Display the stored API token",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := keyring.Get(server.KeyringService, server.KeyringUser)
		if err != nil {
			return fmt.Errorf("no token found for hostobj")
		}

		fmt.Println(token)
		return nil
	},
}

var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := keyring.Delete(server.KeyringService, server.KeyringUser); err != nil {
			fmt.Println("no token is stored")
			return nil
		}

		fmt.Println("Token removed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetTokenCmd, authTokenCmd, authClearCmd)
}
