package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lwaldron/repath/core/config"
	"github.com/lwaldron/repath/core/logger"
	"github.com/lwaldron/repath/core/roots"
	"github.com/lwaldron/repath/core/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch project configuration files and reset caches on change",
	Long: `Watches the resolved project roots for changes to tsconfig.json,
jsconfig.json, package.json or repath.yaml. On a change the memoized root
sets and parsed configurations are discarded so subsequent checks see the
new configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		rootDirs, err := roots.Resolve(cfg.ProjectRoot, wd)
		if err != nil {
			return fmt.Errorf("failed to resolve roots: %w", err)
		}
		if len(rootDirs) == 0 {
			return fmt.Errorf("no project root candidates to watch")
		}

		excludes, err := cfg.CompileExcludes()
		if err != nil {
			return fmt.Errorf("failed to compile exclude patterns: %w", err)
		}

		cw, err := watcher.New(rootDirs, excludes, func() error {
			logger.Info("Configuration reloaded")
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		defer cw.Close()

		logger.Info("Watching %d root(s) for configuration changes", len(rootDirs))
		return cw.Watch()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
