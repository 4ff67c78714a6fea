package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lwaldron/repath/core/cache"
	"github.com/lwaldron/repath/core/config"
	"github.com/lwaldron/repath/core/models"
	"github.com/lwaldron/repath/core/roots"
	"github.com/lwaldron/repath/core/tsconfig"
)

var (
	inspectFile string
	showStats   bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the project configuration that applies to a file",
	Long: `Locates the tsconfig.json or jsconfig.json governing --file (the working
directory by default) and prints its base URL and alias table, or its parse
errors when the file is malformed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		target := inspectFile
		if target == "" {
			target = "."
		}
		absFile, err := filepath.Abs(target)
		if err != nil {
			return fmt.Errorf("failed to resolve --file: %w", err)
		}

		rootDirs, err := roots.Resolve(cfg.ProjectRoot, filepath.Dir(absFile))
		if err != nil {
			return fmt.Errorf("failed to resolve project roots: %w", err)
		}
		if len(rootDirs) == 0 {
			fmt.Println("no project root candidates found")
			return nil
		}
		fmt.Printf("root candidates (%d):\n", len(rootDirs))
		for _, dir := range rootDirs {
			fmt.Printf("  %s\n", dir)
		}

		located, err := tsconfig.Locate(rootDirs, absFile)
		if err != nil {
			return fmt.Errorf("failed to locate config: %w", err)
		}

		switch res := located.(type) {
		case models.NotFound:
			fmt.Println("no project configuration found")
		case models.Malformed:
			fmt.Printf("malformed configuration: %s\n", res.Path)
			for _, perr := range res.Errors {
				fmt.Printf("  %s\n", perr)
			}
		case models.Found:
			fmt.Printf("config: %s\n", res.Config.Path)
			if res.Config.HasBase {
				fmt.Printf("baseUrl: %s\n", filepath.Join(res.Config.Dir, res.Config.BaseURL))
			} else {
				fmt.Println("baseUrl: (not declared, rule inapplicable)")
			}
			table := models.BuildAliasTable(res.Config.Paths)
			if len(table) > 0 {
				fmt.Printf("aliases (%d):\n", len(table))
				for _, entry := range table {
					fmt.Printf("  %-24s -> %s\n", entry.Prefix, entry.Alias)
				}
			}
		}

		if showStats {
			fmt.Println("cache stats:")
			for name, stats := range cache.GetGlobalCacheStats() {
				fmt.Printf("  %s: %d entries, %d hits, %d misses (%.1f%%)\n",
					name, stats.TotalEntries, stats.Hits, stats.Misses, stats.HitRate)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectFile, "file", "", "File to locate configuration for")
	inspectCmd.Flags().BoolVar(&showStats, "stats", false, "Print cache statistics")
}
