/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lwaldron/repath/core/config"
	"github.com/lwaldron/repath/core/engine"
	"github.com/lwaldron/repath/core/logger"
)

var (
	resolveFile  string
	onlyAliases  bool
	onlyAbsolute bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <import>",
	Short: "Resolve the canonical form of one import",
	Long: `Checks a single import literal against the project configuration that
applies to --file and prints the canonical replacement, if any.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		absFile, err := filepath.Abs(resolveFile)
		if err != nil {
			return fmt.Errorf("failed to resolve --file: %w", err)
		}

		eng := engine.New(engine.Options{
			ProjectRoot:         cfg.ProjectRoot,
			OnlyPathAliases:     onlyAliases || cfg.OnlyPathAliases,
			OnlyAbsoluteImports: onlyAbsolute || cfg.OnlyAbsoluteImports,
		})

		result, err := eng.Check(absFile, args[0])
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}

		switch {
		case result == nil:
			fmt.Println("ok: import is acceptable as written")
		case result.Kind == engine.KindMalformedConfig:
			logger.Error("Malformed configuration: %s", result.ConfigPath)
			for _, perr := range result.ParseErrors {
				fmt.Printf("  %s\n", perr)
			}
		default:
			fmt.Printf("replace %s with %s\n", result.Original, result.Replacement)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&resolveFile, "file", "", "Source file containing the import")
	resolveCmd.Flags().BoolVar(&onlyAliases, "only-aliases", false, "Propose path aliases only")
	resolveCmd.Flags().BoolVar(&onlyAbsolute, "only-absolute", false, "Propose base-relative paths only")
	resolveCmd.MarkFlagRequired("file")
}
