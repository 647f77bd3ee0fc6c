package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benrod3k/hostobj/commands"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <object>",
	Short: "Dump an object as a plain document",
	Long:  `Materializes all properties of the named object into a plain JSON document.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.DumpCommand(args[0])
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf(response.Error)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
