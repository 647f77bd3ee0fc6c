package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benrod3k/hostobj/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <object> <prop>",
	Short: "Remove a property from an object",
	Long:  `Removes a property from the named object. Reports whether the property existed.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := commands.DeleteRequest{
			Object: args[0],
			Prop:   args[1],
			Save:   saveAfter,
		}

		response := commands.DeleteCommand(req)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf(response.Error)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVar(&saveAfter, "save", false, "persist the document after the delete")
}
