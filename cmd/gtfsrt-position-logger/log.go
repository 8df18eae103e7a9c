package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/config"
	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/health"
	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/poller"
	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/sink"
)

func newLogPositionDataCmd(opts *rootOptions) *cobra.Command {
	var (
		path       string
		interval   time.Duration
		healthAddr string
	)
	cmd := &cobra.Command{
		Use:   "log-position-data",
		Short: "Store the position data over time",
		Long: `log-position-data polls the feed immediately and then on a fixed interval,
writing each snapshot to <path>/<YYYY-MM-DDTHH:MM:SS>.json. It runs until
interrupted; failed polls are logged and retried on the next tick.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, client, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("path") {
				cfg.Logger.Path = path
			}
			if cmd.Flags().Changed("interval") {
				if interval < time.Second || interval%time.Second != 0 {
					return fmt.Errorf("--interval must be a whole number of seconds, got %s", interval)
				}
				cfg.Logger.IntervalSeconds = int(interval / time.Second)
			}
			if cmd.Flags().Changed("health-addr") {
				cfg.Health.Addr = healthAddr
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			fileSink, err := sink.NewFileSink(cfg.Logger.Path)
			if err != nil {
				return err
			}
			p := poller.New(client, cfg.Feed.VehiclePositionsURL, fileSink, log)

			if cfg.Health.Addr != "" {
				status := health.NewStatus()
				p.SetObserver(status)
				srv := health.NewServer(cfg.Health.Addr, status, log)
				if _, err := srv.Start(); err != nil {
					return fmt.Errorf("start health server: %w", err)
				}
				defer srv.Shutdown()
			}

			log.WithField("path", fileSink.Dir()).Info("writing snapshots")
			err = p.Run(cmd.Context(), time.Duration(cfg.Logger.IntervalSeconds)*time.Second)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				log.Info("shutdown signal received")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "directory to store the JSON snapshots in")
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "poll interval (whole seconds)")
	cmd.Flags().StringVar(&healthAddr, "health-addr", "", "serve /api/health on this address, e.g. :16181")
	return cmd
}
