package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/hooktools/hookcfg/manifest"
	"github.com/spf13/cobra"
)

func NewManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest [DIR]",
		Short: "Inspect the hook manifest of a checked-out hook repository",
		Long: `Reads the .pre-commit-hooks.yaml manifest from a hook repository working
copy, checks its invariants (unique ids, entry and language present), and
lists the hooks it provides.

Examples:
  # Inspect a locally checked-out hook repository
  hookcfg manifest ~/src/pre-commit-hooks
  hookcfg manifest ~/src/pre-commit-hooks --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			m, err := manifest.Load(dir)
			if err != nil {
				return err
			}
			if err := m.Validate(); err != nil {
				return err
			}

			if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
				data, err := json.MarshalIndent(m.Entries, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			for _, e := range m.Entries {
				fmt.Printf("%-30s %-10s %s\n", e.ID, e.Language, e.Name)
			}
			return nil
		},
	}
	return cmd
}
