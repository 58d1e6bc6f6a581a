package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simnotify/simnotify/internal/config"
	"github.com/simnotify/simnotify/internal/host"
)

var pathsOpts struct {
	systemRoot string
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print resolved config and install paths",
	RunE:  runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)

	pathsCmd.Flags().StringVar(&pathsOpts.systemRoot, "system-root", "",
		"Install root paths are shown relative to (default: home directory)")
}

func runPaths(cmd *cobra.Command, args []string) error {
	paths, err := host.NewPaths(pathsOpts.systemRoot)
	if err != nil {
		return fmt.Errorf("failed to resolve paths: %w", err)
	}

	configPath := globalOpts.configPath
	if configPath == "" {
		configPath = config.Path()
	}

	fmt.Printf("config:      %s\n", configPath)
	fmt.Printf("system root: %s\n", paths.SystemRoot())
	fmt.Printf("binary dir:  %s\n", paths.StripSystemRoot(paths.PluginDir()))

	if n, err := paths.CountFiles(paths.PluginDir()); err == nil {
		fmt.Printf("binary dir entries: %d\n", n)
	}
	return nil
}

// overlayConfigPath returns the default config path when the file exists,
// so the overlay's hot-reload watcher has something to watch. A missing
// file means nothing to reload.
func overlayConfigPath() string {
	path := config.Path()
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
