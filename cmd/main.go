package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "timesheet",
		Short:         "Crew timesheets for a two week pay period",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot()
		},
	}
	root.AddCommand(newBotCmd(), newPeriodCmd(), newEmployeesCmd(), newExportCmd())
	return root
}
