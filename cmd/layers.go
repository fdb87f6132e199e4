package cmd

import (
	"fmt"

	"github.com/hooktools/hookcfg/cli"
	"github.com/hooktools/hookcfg/config"
	"github.com/spf13/cobra"
)

func NewLayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layers",
		Short: "Display the layered configuration documents",
		Long: `Shows how the final configuration is built by merging layers:
1. Base config (.pre-commit-config.yaml)
2. Override files (.pre-commit-config.override.yaml)
This is useful for debugging configuration issues.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cli.ResolveConfigFile(cmd)
			if err != nil {
				return err
			}

			layered, err := config.LoadLayered(path)
			if err != nil {
				return err
			}

			printLayer := func(title string, path string, cfg *config.Config) {
				if cfg == nil {
					return
				}
				fmt.Printf("--- # %s\n", title)
				if path != "" {
					fmt.Printf("# Source: %s\n", path)
				}
				data, _ := cfg.Marshal()
				fmt.Println(string(data))
			}

			printLayer("BASE CONFIG", layered.Base.Path, layered.Base.Config)
			for _, override := range layered.Overrides {
				printLayer("OVERRIDE CONFIG", override.Path, override.Config)
			}
			if len(layered.Overrides) > 0 {
				printLayer("FINAL MERGED CONFIG", "", layered.Final)
			}

			return nil
		},
	}
	return cmd
}
