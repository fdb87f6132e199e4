package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hooktools/hookcfg/cli"
	"github.com/hooktools/hookcfg/config"
	"github.com/spf13/cobra"
)

func NewFmtCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Rewrite the configuration file in canonical form",
		Long: `Parses the configuration and re-serializes it with canonical key order.
Entry order, every field, and unknown top-level blocks are preserved.

Examples:
  # Rewrite the file in place
  hookcfg fmt

  # Report drift without writing (for CI)
  hookcfg fmt --check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cli.ResolveConfigFile(cmd)
			if err != nil {
				return err
			}

			original, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			// Parse without ${VAR} expansion: fmt writes the document
			// back, and the references must survive as authored.
			cfg, err := config.ParseBytes(original)
			if err != nil {
				return err
			}

			formatted, err := cfg.Marshal()
			if err != nil {
				return err
			}

			if bytes.Equal(original, formatted) {
				return nil
			}

			if check {
				return fmt.Errorf("%s is not canonically formatted", path)
			}

			if err := os.WriteFile(path, formatted, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			cli.GetLogger(cmd).WithField("path", path).Info("Reformatted configuration")
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Exit non-zero if the file is not canonically formatted")
	return cmd
}
