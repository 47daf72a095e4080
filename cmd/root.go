// Package cmd contains the cobra command line setup
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mevscan",
	Short: "mevscan",
	Long:  `Analyze MEV result tables (blocks + bundles parquet exports)`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mevscan %s\n", Version)
		_ = cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
