package main

import (
	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/poller"
	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/sink"
)

func newPrintCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Fetch the feed once and print every vehicle's route and position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, client, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			p := poller.New(client, cfg.Feed.VehiclePositionsURL, sink.NewPrinter(cmd.OutOrStdout()), log)
			_, err = p.Tick(cmd.Context())
			return err
		},
	}
}
