package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benrod3k/hostobj/commands"
)

var objectsCmd = &cobra.Command{
	Use:   "objects",
	Short: "List object documents in the store",
	Long:  `Lists the names of all JSON and plist object documents found in the store directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.ObjectsCommand()
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf(response.Error)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(objectsCmd)
}
