package main

import (
	"os"

	"github.com/mlehtin/storykit/cmd"
	"github.com/mlehtin/storykit/internal/conf"
	"github.com/mlehtin/storykit/internal/logging"
)

func main() {
	// Initialize the logging system first so everything downstream has it.
	logging.Init()

	settings, err := conf.Load()
	if err != nil {
		logging.Fatal("Error loading configuration", "error", err)
	}

	rootCmd := cmd.RootCommand(settings)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
