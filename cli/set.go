package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benrod3k/hostobj/commands"
)

var setCmd = &cobra.Command{
	Use:   "set <object> <prop> <value>",
	Short: "Write a property on an object",
	Long:  `Writes a property on the named object. The value is parsed per --type, or taken as JSON when no type is given.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ := valueType
		if typ == "" {
			typ = "json"
		}

		req := commands.SetRequest{
			Object: args[0],
			Prop:   args[1],
			Value:  args[2],
			Type:   typ,
			Save:   saveAfter,
		}

		response := commands.SetCommand(req)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf(response.Error)
		}

		return nil
	},
}

var setPropsCmd = &cobra.Command{
	Use:   "set-props <object> <prop>=<value> [<prop>=<value>...]",
	Short: "Write several properties on an object",
	Long:  `Writes properties in argument order. Values are parsed as JSON. Writes before a failing one stay applied.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		props := make(map[string]interface{}, len(args)-1)
		for _, arg := range args[1:] {
			name, raw, ok := strings.Cut(arg, "=")
			if !ok || name == "" {
				return fmt.Errorf("expected <prop>=<value>, got %q", arg)
			}

			// JSON when it parses, plain string otherwise
			var value interface{}
			if err := json.Unmarshal([]byte(raw), &value); err != nil {
				value = raw
			}
			props[name] = value
		}

		req := commands.SetPropertiesRequest{
			Object: args[0],
			Props:  props,
			Save:   saveAfter,
		}

		response := commands.SetPropertiesCommand(req)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf(response.Error)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(setPropsCmd)

	setCmd.Flags().StringVarP(&valueType, "type", "t", "", "parse value as type (string, bool, u8, u16, u32, u64, f64, bytes, null, json)")
	setCmd.Flags().BoolVar(&saveAfter, "save", false, "persist the document after the write")
	setPropsCmd.Flags().BoolVar(&saveAfter, "save", false, "persist the document after the writes")
}
