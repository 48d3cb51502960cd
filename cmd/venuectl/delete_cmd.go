package main

import (
	"context"
	"errors"
	"strings"

	"fyyur_app_go/services/venueui"

	"github.com/spf13/cobra"
)

func newDeleteCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <venue-id>",
		Short: "Delete a venue the way the venue page does, then load the home page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if id == "" {
				return errors.New("venue id is required")
			}

			base := root.baseURL()
			handler := venueui.Bind(
				[]venueui.Element{venueui.Attrs{venueui.IDAttribute: id}},
				venueui.NewHTTPRequester(base, nil),
				venueui.NewHTTPNavigator(base, nil),
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), root.Timeout)
			defer cancel()

			outcome := <-handler.Controls()[0].Click(ctx)
			printOutcome(cmd, outcome)
			return outcome.NavigateErr
		},
	}
}
