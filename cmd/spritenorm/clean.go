package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/spritenorm/internal/config"
)

func newCleanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean <root>",
		Short: "Delete folders that are not in the allow-list",
		Long: `Delete every folder under <root> that the folder check reports as extra.
A top-level "element" folder is never deleted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, done, err := a.start(cmd, args[0])
			if err != nil {
				return err
			}
			defer done()

			res, err := runner.Clean()
			if err != nil {
				return err
			}
			if n := len(res.Failed); n > 0 {
				return &exitError{Code: exitFindings, Err: fmt.Errorf("%d folders could not be deleted", n)}
			}
			return nil
		},
	}
	config.BindChangeFlags(cmd.Flags(), &a.cfg)
	return cmd
}
