package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benrod3k/hostobj/commands"
)

var getCmd = &cobra.Command{
	Use:   "get <object> <prop>",
	Short: "Read a property from an object",
	Long:  `Reads a property from the named object, optionally coercing it to a given type.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := commands.GetRequest{
			Object: args[0],
			Prop:   args[1],
			Type:   valueType,
			Try:    tryGet,
		}

		response := commands.GetCommand(req)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf(response.Error)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVarP(&valueType, "type", "t", "", "coerce to type (string, bool, u8, u16, u32, u64, f64, bytes, array, object)")
	getCmd.Flags().BoolVar(&tryGet, "try", false, "report absent properties instead of failing")
}
