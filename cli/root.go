package cli

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/benrod3k/hostobj/commands"
	"github.com/benrod3k/hostobj/server"
	"github.com/benrod3k/hostobj/utils"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hostobj",
	Short: "A typed property store for host object documents",
	Long:  `A tool for inspecting and mutating typed properties of JSON and plist object documents.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Version:       server.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func initConfig() {
	loadConfigFile()

	// flags win over the config file
	if verbose {
		utils.SetVerbose(true)
	}
	if storeDir != "" {
		commands.SetStoreDir(storeDir)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&storeDir, "store", "", "directory holding object documents (default: current directory)")
}

// Execute runs the root command
func Execute() error {
	// enable microseconds in logs
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	return rootCmd.Execute()
}

// printJson is a helper function to print JSON responses
func printJson(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(jsonData))
}
