/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lwaldron/repath/core/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of Repath",
	Long:  `Displays the version of Repath.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Repath %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
