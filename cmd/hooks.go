package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/hooktools/hookcfg/cli"
	"github.com/hooktools/hookcfg/config"
	"github.com/spf13/cobra"
)

type hookListing struct {
	Repo string `json:"repo"`
	Rev  string `json:"rev,omitempty"`
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

func NewHooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "List the configured hooks",
		Long: `Lists every hook in the configuration with its repository and pinned rev,
in execution order. Override files are merged in first.

Examples:
  hookcfg hooks
  hookcfg hooks --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cli.ResolveConfigFile(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.LoadWithOverrides(path)
			if err != nil {
				return err
			}

			var listings []hookListing
			for _, ch := range cfg.AllHooks() {
				listings = append(listings, hookListing{
					Repo: ch.Repo.Repo,
					Rev:  ch.Repo.Rev,
					ID:   ch.Hook.ID,
					Name: ch.Hook.Name,
				})
			}

			if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
				data, err := json.MarshalIndent(listings, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			for _, l := range listings {
				if l.Rev != "" {
					fmt.Printf("%-40s %-12s %s\n", l.Repo, l.Rev, l.ID)
				} else {
					fmt.Printf("%-40s %-12s %s\n", l.Repo, "-", l.ID)
				}
			}
			return nil
		},
	}
	return cmd
}
