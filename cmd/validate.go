package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hooktools/hookcfg/cli"
	"github.com/hooktools/hookcfg/config"
	"github.com/hooktools/hookcfg/schema"
	"github.com/hooktools/hookcfg/watch"
	"github.com/spf13/cobra"
)

func NewValidateCmd() *cobra.Command {
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the hook configuration file",
		Long: `Validates the configuration against its JSON Schema and then checks the
semantic invariants: every entry names a repository, remote entries pin a
rev, hook ids are unique within their entry, and pattern fields compile as
regular expressions. Override files are merged in before validation.

Examples:
  # Validate the nearest .pre-commit-config.yaml
  hookcfg validate

  # Validate a specific file and revalidate on every save
  hookcfg validate -c ci/.pre-commit-config.yaml --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cli.ResolveConfigFile(cmd)
			if err != nil {
				return err
			}

			logger := cli.GetLogger(cmd)

			if err := validateFile(path); err != nil {
				if !watchMode {
					return err
				}
				logger.WithError(err).Error("Validation failed")
			} else {
				logger.WithField("path", path).Info("Configuration is valid")
			}

			if !watchMode {
				return nil
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			watcher, err := watch.New(path, 200, func(changed string) {
				if err := validateFile(changed); err != nil {
					logger.WithError(err).Error("Validation failed")
				} else {
					logger.WithField("path", changed).Info("Configuration is valid")
				}
			})
			if err != nil {
				return err
			}

			logger.WithField("path", path).Info("Watching for changes (ctrl-c to stop)")
			watcher.Start(ctx)
			return nil
		},
	}

	cmd.Flags().BoolVar(&watchMode, "watch", false, "Revalidate whenever the file changes")
	return cmd
}

// validateFile runs schema validation on the raw document, then semantic
// validation on the merged result.
func validateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return err
	}
	if err := validator.ValidateYAML(data); err != nil {
		return err
	}

	cfg, err := config.LoadWithOverrides(path)
	if err != nil {
		return err
	}

	return cfg.Validate()
}
