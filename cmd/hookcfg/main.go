package main

import (
	"os"

	"github.com/hooktools/hookcfg/cli"
	"github.com/hooktools/hookcfg/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"hookcfg",
		"Author, validate, and maintain pre-commit hook configuration files",
	)

	// Add subcommands
	rootCmd.AddCommand(cmd.NewValidateCmd())
	rootCmd.AddCommand(cmd.NewFmtCmd())
	rootCmd.AddCommand(cmd.NewHooksCmd())
	rootCmd.AddCommand(cmd.NewSchemaCmd())
	rootCmd.AddCommand(cmd.NewConvertCmd())
	rootCmd.AddCommand(cmd.NewBumpCmd())
	rootCmd.AddCommand(cmd.NewInitCmd())
	rootCmd.AddCommand(cmd.NewLayersCmd())
	rootCmd.AddCommand(cmd.NewManifestCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("hookcfg"))

	if err := rootCmd.Execute(); err != nil {
		verbose := false
		for _, arg := range os.Args[1:] {
			if arg == "-v" || arg == "--verbose" {
				verbose = true
			}
		}
		cli.NewErrorHandler(verbose).Handle(err)
		os.Exit(1)
	}
}
