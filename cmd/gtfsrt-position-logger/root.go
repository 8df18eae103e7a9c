package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/config"
	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/gtfsrt"
	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
	url        string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "gtfsrt-position-logger",
		Short: "Poll a GTFS-Realtime vehicle positions feed",
		Long: `gtfsrt-position-logger fetches a GTFS-Realtime vehicle positions feed,
extracts the route and position of every vehicle, and either prints them
or stores periodic JSON snapshots named after the feed timestamp.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config.yml (optional)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "DEBUG|INFO|WARN|ERROR (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.url, "url", "", "vehicle positions feed URL or local .pb path (overrides config)")

	cmd.AddCommand(newLogPositionDataCmd(opts), newPrintCmd(opts))
	return cmd
}

// setup loads config, applies the persistent flag overrides and builds the logger and client
func (o *rootOptions) setup(cmd *cobra.Command) (config.AppConfig, *logrus.Logger, *gtfsrt.Client, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, nil, nil, err
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.url != "" {
		cfg.Feed.VehiclePositionsURL = o.url
	}
	if err := config.Validate(cfg); err != nil {
		return cfg, nil, nil, err
	}

	log, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return cfg, nil, nil, err
	}
	client := gtfsrt.NewClient(time.Duration(cfg.Feed.TimeoutMS)*time.Millisecond, log)
	return cfg, log, client, nil
}
