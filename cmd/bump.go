package cmd

import (
	"github.com/hooktools/hookcfg/cli"
	"github.com/hooktools/hookcfg/config"
	"github.com/spf13/cobra"
)

func NewBumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bump REPO REV",
		Short: "Update the pinned revision of a repository entry",
		Long: `Sets the rev of the entry matching REPO and rewrites the file. This is
the edit automated dependency bumpers perform; running it by hand keeps
the same formatting they produce.

Examples:
  hookcfg bump https://github.com/psf/black 24.4.2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cli.ResolveConfigFile(cmd)
			if err != nil {
				return err
			}

			if err := config.BumpRev(path, args[0], args[1]); err != nil {
				return err
			}

			cli.GetLogger(cmd).WithFields(map[string]interface{}{
				"repo": args[0],
				"rev":  args[1],
			}).Info("Updated pinned revision")
			return nil
		},
	}
	return cmd
}
