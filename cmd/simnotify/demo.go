package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simnotify/simnotify/internal/feed"
)

var demoOpts struct {
	script string
	loop   bool
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show the panel with a scripted message feed",
	Long: `Show the notification panel driven by a scripted feed instead of
stdin. Without --script a built-in arrival scenario plays once.

A script is a YAML list of steps:

  - after: 2s
    kind: radio
    text: "LSZH_TWR: cleared to land runway 14"
  - after: 500ms
    kind: error
    text: voice server connection lost

Each step waits its delay, then emits one message. Unknown kinds fall
back to info.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVar(&demoOpts.script, "script", "",
		"Path to a YAML script (default: built-in scenario)")
	demoCmd.Flags().BoolVar(&demoOpts.loop, "loop", false,
		"Replay the script when it finishes")
}

func runDemo(cmd *cobra.Command, args []string) error {
	steps := feed.DemoScript()
	if demoOpts.script != "" {
		var err error
		steps, err = feed.LoadScript(demoOpts.script)
		if err != nil {
			return fmt.Errorf("failed to load script: %w", err)
		}
	}

	var f feed.Feed = feed.NewScriptFeed(steps)
	if demoOpts.loop {
		f = feed.Loop(feed.NewScriptFeed(steps))
	}
	return runOverlay(f)
}
