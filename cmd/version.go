package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mevscan version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mevscan %s\n", Version)
	},
}
