package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"timesheet-bot/internal/report"
)

func newExportCmd() *cobra.Command {
	var (
		formatStr string
		out       string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the timesheet report to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(formatStr)
			if err != nil {
				return err
			}
			if out == "" {
				out = format.FileName()
			}
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := a.reports.Export(context.Background(), f, format); err != nil {
				f.Close()
				os.Remove(out)
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatStr, "format", "f", "pdf", "Report format: pdf or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default timesheet.pdf or timesheet.xlsx)")
	return cmd
}
