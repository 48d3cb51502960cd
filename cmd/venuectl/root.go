package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"fyyur_app_go/config"
	"fyyur_app_go/logger"
	"fyyur_app_go/services/venueui"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	BaseURL  string
	Timeout  time.Duration
	LogLevel string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "venuectl",
		Short:         "Drive Fyyur venue operations from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.SetupWithWriter(opts.LogLevel, "development", cmd.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().StringVar(&opts.BaseURL, "base-url", "", "server base URL (defaults to APP_URL)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 30*time.Second, "overall time limit for requests")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level")

	cmd.AddCommand(newParseDateCmd())
	cmd.AddCommand(newDeleteCmd(&opts))
	cmd.AddCommand(newClickCmd(&opts))
	return cmd
}

func (o *rootOptions) baseURL() string {
	if strings.TrimSpace(o.BaseURL) != "" {
		return strings.TrimRight(o.BaseURL, "/")
	}
	return config.Load().AppURL
}

func printOutcome(cmd *cobra.Command, o venueui.Outcome) {
	deleteStatus := "ok"
	if o.DeleteErr != nil {
		deleteStatus = "failed: " + o.DeleteErr.Error()
	}
	navStatus := "ok"
	if o.NavigateErr != nil {
		navStatus = "failed: " + o.NavigateErr.Error()
	}
	fmt.Fprintf(cmd.OutOrStdout(), "venue=%s delete=%s (%s) navigate=%s (%s)\n",
		o.VenueID, o.Path, deleteStatus, venueui.RedirectLocation, navStatus)
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func main() {
	Execute()
}
