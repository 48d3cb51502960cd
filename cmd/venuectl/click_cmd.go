package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"fyyur_app_go/services/venueui"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newClickCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "click <page-path>",
		Short: "Load a page, bind its delete controls and click every one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := root.baseURL()
			path := "/" + strings.TrimLeft(args[0], "/")

			ctx, cancel := context.WithTimeout(cmd.Context(), root.Timeout)
			defer cancel()

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
			if err != nil {
				return err
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			defer resp.Body.Close()
			if resp.StatusCode/100 != 2 {
				return fmt.Errorf("loading %s: status=%d", path, resp.StatusCode)
			}

			handler, _, err := venueui.BindDocument(resp.Body, venueui.NewHTTPRequester(base, nil), venueui.NewHTTPNavigator(base, nil))
			if err != nil {
				return err
			}

			controls := handler.Controls()
			log.Info().Str("page", path).Int("controls", len(controls)).Msg("Bound delete controls")
			if len(controls) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no %s controls on %s\n", venueui.DeleteSelector, path)
				return nil
			}

			pending := make([]<-chan venueui.Outcome, 0, len(controls))
			for _, c := range controls {
				pending = append(pending, c.Click(ctx))
			}
			for _, ch := range pending {
				printOutcome(cmd, <-ch)
			}
			return nil
		},
	}
}
