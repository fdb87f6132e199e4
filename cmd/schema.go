package cmd

import (
	"fmt"

	"github.com/hooktools/hookcfg/config"
	"github.com/spf13/cobra"
)

func NewSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the configuration file",
		Long: `Generates the JSON Schema from the typed configuration model and prints
it to stdout. Useful for wiring editor validation and IDE completion.

Examples:
  hookcfg schema > hookcfg.schema.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
	return cmd
}
