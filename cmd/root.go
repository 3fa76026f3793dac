package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mlehtin/storykit/cmd/generate"
	"github.com/mlehtin/storykit/cmd/story"
	"github.com/mlehtin/storykit/internal/buildinfo"
	"github.com/mlehtin/storykit/internal/conf"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "storykit",
		Short:   "Storykit CLI",
		Long:    `Content resilience toolkit for headless CMS sites: schema code generation and safe story fetching.`,
		Version: buildinfo.Current().String(),
	}

	// Set up the global flags for the root command.
	setupFlags(rootCmd, settings)

	subcommands := []*cobra.Command{
		generate.Command(settings),
		story.Command(settings),
	}
	rootCmd.AddCommand(subcommands...)

	return rootCmd
}

// setupFlags configures the global flags for the root command.
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&settings.Environment, "environment", viper.GetString("environment"), "Build environment: development selects draft content")

	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		cobra.CheckErr(err)
	}
	if err := viper.BindPFlag("environment", rootCmd.PersistentFlags().Lookup("environment")); err != nil {
		cobra.CheckErr(err)
	}
}
