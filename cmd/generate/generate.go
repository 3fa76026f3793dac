// Package generate implements the schema code generation command.
package generate

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlehtin/storykit/internal/codegen"
	"github.com/mlehtin/storykit/internal/conf"
)

// Command creates the generate command: fetch component schemas from the
// management API and regenerate the schema package artifacts.
func Command(settings *conf.Settings) *cobra.Command {
	var force, dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate schema artifacts from the CMS component library",
		Long: `Fetch the space's component schemas from the management API, compare their
hash against the stored marker, and regenerate the component table, typed
declarations and mock factories when the schemas have drifted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer func() { _ = codegen.CloseLogger() }()
			return runGenerate(cmd, settings, force, dryRun)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Regenerate even when the schema hash is unchanged")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render artifacts without writing any files")

	return cmd
}

func runGenerate(cmd *cobra.Command, settings *conf.Settings, force, dryRun bool) error {
	client, err := codegen.NewManagementClient(codegen.ManagementConfig{
		Token:      settings.CMS.ManagementToken,
		SpaceID:    settings.CMS.SpaceID,
		BaseURL:    settings.CMS.ManagementURL,
		MaxRetries: settings.Codegen.MaxRetries,
		RetryBase:  time.Duration(settings.Codegen.RetryBaseMS) * time.Millisecond,
	})
	if err != nil {
		return err
	}
	defer client.Close()

	generator := codegen.NewGenerator(client, codegen.Options{
		OutputDir: settings.Codegen.OutputDir,
		HashFile:  settings.Codegen.HashFile,
		Force:     force,
		DryRun:    dryRun,
	})

	result, err := generator.Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Skipped {
		fmt.Fprintf(out, "Schemas unchanged (%d components, hash %s), nothing to do\n",
			result.Components, result.Hash)
		return nil
	}
	verb := "Wrote"
	if dryRun {
		verb = "Would write"
	}
	fmt.Fprintf(out, "Generated artifacts for %d components (hash %s)\n", result.Components, result.Hash)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s %s\n", verb, f)
	}
	return nil
}
