package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the binopt CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("binopt version %s\n", version)
		fmt.Println("A risk-managed session tracker for binary options trading")
		fmt.Println("https://github.com/rustyeddy/binopt")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
