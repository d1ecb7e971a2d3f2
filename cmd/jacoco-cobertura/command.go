package main

import (
	"context"
	"io"

	"github.com/jenkins-x-apps/jacoco-cobertura/internal/config"
	"github.com/jenkins-x-apps/jacoco-cobertura/internal/convert"
	"github.com/jenkins-x-apps/jacoco-cobertura/internal/logging"
	"github.com/jenkins-x-apps/jacoco-cobertura/internal/summary"
	"github.com/spf13/cobra"
)

// newRootCommand creates the command converting a single report.
func newRootCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "jacoco-cobertura",
		Short: "Convert a JaCoCo XML coverage report into a Cobertura XML report.",
		Long: `jacoco-cobertura converts the XML report written by JaCoCo into the Cobertura format,
so that tools like GitLab can display the coverage of Java projects.

Settings are read from flags, environment variables and an optional config file,
in this order of precedence. Config files ending in .properties are read as Java
properties, other files as YAML.

Examples:
  # Convert the report of a Maven build
  jacoco-cobertura --source target/site/jacoco/jacoco.xml --result target/site/cobertura/cobertura.xml

  # Multi module build with two source roots
  jacoco-cobertura --path core/src/main/java/ --path web/src/main/java/

  # Read the settings from a properties file
  jacoco-cobertura --config cobertura.properties`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfiguration(cmd.Flags(), configFile)
			if err != nil {
				return err
			}

			// configure the Logger
			logging.SetLevel(cfg.Level())
			if cfg.LogFile() != "" {
				logging.AddFileHook(cfg.LogFile())
			}
			logger.Debugf("starting %s with config: %s", logging.AppName, cfg)

			return run(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "properties or YAML file with settings")
	config.AddFlags(cmd.Flags())

	return cmd
}

func run(ctx context.Context, out io.Writer, cfg config.ConvertConfig) error {
	options := convert.Options{
		SourcePaths: cfg.SourcePaths(),
		Extension:   cfg.Extension(),
	}
	result, err := convert.ConvertFile(ctx, cfg.Source(), cfg.Result(), options)
	if err != nil {
		return err
	}
	if !cfg.Summary() {
		return nil
	}
	return summary.Render(out, result.Summary)
}
