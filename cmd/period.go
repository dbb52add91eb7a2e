package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timesheet-bot/internal/domain"
)

var errNotConfirmed = errors.New("refusing to continue without --yes")

func newPeriodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Show or roll the pay period",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the current pay period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			p, err := a.periods.Current()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	var yes bool
	roll := &cobra.Command{
		Use:   "roll YYYY-MM-DD",
		Short: "Start a new pay period and reset every timesheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse(domain.DateFormat, args[0])
			if err != nil {
				return fmt.Errorf("bad start date %q: want YYYY-MM-DD", args[0])
			}
			if !yes {
				return errNotConfirmed
			}
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			p, err := a.periods.Roll(start)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
	roll.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm resetting every timesheet")

	cmd.AddCommand(show, roll)
	return cmd
}
