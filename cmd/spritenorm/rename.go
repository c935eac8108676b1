package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/spritenorm/internal/config"
)

func newRenameCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <root>",
		Short: "Audit, then rename sprites to <Event>_<Category>_<index>",
		Long: `Run the audit, ask for confirmation, then rename every sprite zone under <root>.
Icons keep the index of their sprite and skin/evo continues the skin numbering.
Exits with status 1 when a file could not be renamed.`,
		Example: `  spritenorm rename ./Spring --event Spring
  spritenorm rename ./Spring -z skin -z pet --dry-run
  spritenorm rename ./Spring -y --report spring.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, done, err := a.start(cmd, args[0])
			if err != nil {
				return err
			}
			defer done()

			stats, err := runner.Rename()
			if err != nil {
				return err
			}
			if !stats.Cancelled && !stats.OK() {
				return &exitError{Code: exitFindings}
			}
			return nil
		},
	}
	config.BindRenameFlags(cmd.Flags(), &a.cfg)
	return cmd
}
