/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lwaldron/repath/core/logger"
)

var rootCmd = &cobra.Command{
	Use:   "repath",
	Short: "A tool for keeping import paths canonical in tsconfig-style projects.",
	Long: `Repath resolves the canonical form of module import paths from a project's
tsconfig.json or jsconfig.json: path aliases where configured, baseUrl-relative
paths otherwise. It reports the replacement a correctly written import should
use, for a lint host or editor to apply.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		if logfile != "" {
			f, err := os.OpenFile(logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("failed to open logfile: %w", err)
			}
			logger.SetColored(false)
			logger.AddWriter(f)
		}
		return nil
	},
}

var logfile string
var verbose bool

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}
