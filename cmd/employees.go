package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"timesheet-bot/internal/domain"
)

func newEmployeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Manage employees",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			es, err := a.employees.List()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPOSITION\tCONTRACT")
			for _, e := range es {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.FullName(), e.Position, e.Contract)
			}
			return w.Flush()
		},
	}

	add := &cobra.Command{
		Use:   "add ID;FIRST;LAST;POSITION;CONTRACT...",
		Short: "Add employees with default shifts; all or none are added",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			es := make([]domain.Employee, 0, len(args))
			for _, arg := range args {
				e, err := domain.ParseEmployee(arg)
				if err != nil {
					return fmt.Errorf("%q: %w", arg, err)
				}
				es = append(es, e)
			}
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.employees.AddAll(es); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %d employees\n", len(es))
			return nil
		},
	}

	var yes bool
	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an employee and their timesheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errNotConfirmed
			}
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			if _, err := a.employees.Get(args[0]); err != nil {
				return err
			}
			if err := a.employees.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
	del.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the deletion")

	cmd.AddCommand(list, add, del)
	return cmd
}
