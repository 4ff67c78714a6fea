package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lwaldron/repath/core/config"
	"github.com/lwaldron/repath/core/roots"
)

var rootsCmd = &cobra.Command{
	Use:   "roots [pattern...]",
	Short: "Expand project root patterns",
	Long: `Expands the given root glob patterns (or the configured project_root
setting when none are given) and prints the candidate root directories.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		patterns := args
		if len(patterns) == 0 {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			patterns = cfg.ProjectRoot
		}

		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		dirs, err := roots.Resolve(patterns, wd)
		if err != nil {
			return fmt.Errorf("failed to resolve roots: %w", err)
		}

		if len(dirs) == 0 {
			fmt.Println("no root candidates found")
			return nil
		}
		for _, dir := range dirs {
			fmt.Println(dir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rootsCmd)
}
