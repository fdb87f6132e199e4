package cmd

import (
	"fmt"

	"github.com/hooktools/hookcfg/cli"
	"github.com/hooktools/hookcfg/config"
	"github.com/spf13/cobra"
)

func NewConvertCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Render the configuration in another format",
		Long: `Parses the configuration and renders it as JSON, TOML, or normalized
YAML on stdout. The file itself is not modified.

Examples:
  hookcfg convert --to json
  hookcfg convert --to toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cli.ResolveConfigFile(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			var data []byte
			switch to {
			case "json":
				data, err = cfg.ToJSON()
			case "toml":
				data, err = cfg.ToTOML()
			case "yaml":
				data, err = cfg.Marshal()
			default:
				return fmt.Errorf("unsupported output format '%s' (supported: yaml, json, toml)", to)
			}
			if err != nil {
				return err
			}

			fmt.Print(string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "json", "Output format: yaml, json, or toml")
	return cmd
}
