package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// currentReleaseVersion is used to print the version the user currently has downloaded
const currentReleaseVersion = "v0.1.0"

// rootCmd is the base for all commands.
var rootCmd = &cobra.Command{
	Use:   "glitchbeat [command]",
	Short: "glitchbeat is a bytebeat-style stack-machine melody player",
	Long: "glitchbeat is a bytebeat-style stack-machine melody player.\n" +
		"A melody is a title plus up to 16 lines of hex literals and opcodes;\n" +
		"glitchbeat evaluates it once per sample and renders 8-bit PCM at 8kHz mono.",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("Requires at least 1 argument")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Unknown command. Try `glitchbeat help` for more information")
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs glitchbeat according to the user's command/subcommand/flags
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
