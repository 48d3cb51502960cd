package main

import (
	"fmt"
	"time"

	"fyyur_app_go/services"

	"github.com/spf13/cobra"
)

func newParseDateCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse-date <timestamp>",
		Short: "Parse an ISO-like timestamp as UTC and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := services.ParseISOString(args[0])
			if err != nil {
				return err
			}
			if format == "" {
				fmt.Fprintln(cmd.OutOrStdout(), t.Format(time.RFC3339Nano))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), services.FormatDateTime(t, format))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", `output format: "full", "medium" or a Go layout (default RFC 3339)`)

	return cmd
}
