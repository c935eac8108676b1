package main

import "github.com/spf13/cobra"

func newAuditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "audit <root>",
		Short: "Check folders and sprite names without changing anything",
		Long: `Compare the folders under <root> with the allow-list and check that every
sprite zone matches its icon zone. Exits with status 1 when anything is reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, done, err := a.start(cmd, args[0])
			if err != nil {
				return err
			}
			defer done()

			audit, err := runner.Audit()
			if err != nil {
				return err
			}
			if !audit.IsAllCorrect() {
				return &exitError{Code: exitFindings}
			}
			return nil
		},
	}
}
