package cmd

import (
	"fmt"
	"os"

	"github.com/hooktools/hookcfg/cli"
	"github.com/hooktools/hookcfg/config"
	"github.com/spf13/cobra"
)

// starterConfig is the default config written by 'hookcfg init': the common
// hygiene hooks plus a Python formatter/linter pair.
const starterConfig = `repos:
  - repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v5.0.0
    hooks:
      - id: trailing-whitespace
      - id: end-of-file-fixer
      - id: check-yaml
      - id: check-added-large-files
  - repo: https://github.com/psf/black
    rev: 24.4.2
    hooks:
      - id: black
  - repo: https://github.com/astral-sh/ruff-pre-commit
    rev: v0.4.4
    hooks:
      - id: ruff
        args: [--fix]
`

func NewInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter hook configuration file",
		Long: `Writes a .pre-commit-config.yaml with a sensible starting set of hooks
into the current directory.

Examples:
  hookcfg init
  hookcfg init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ConfigFileNames[0]

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			// Parse the template through the loader so init can never
			// produce a file validate would reject.
			cfg, err := config.LoadFromBytes([]byte(starterConfig))
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := os.WriteFile(path, []byte(starterConfig), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			cli.GetLogger(cmd).WithField("path", path).Info("Wrote starter configuration")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
	return cmd
}
