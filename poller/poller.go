// Package poller drives the fetch, decode, extract and write pipeline.
package poller

import (
	"context"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/sirupsen/logrus"

	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/scheduler"
	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/sink"
	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/vehicle"
)

// FeedSource returns one decoded feed message per call
type FeedSource interface {
	FetchFeed(ctx context.Context, urlOrPath string) (*gtfsrtpb.FeedMessage, error)
}

// Observer is told about every tick outcome
type Observer interface {
	Observe(snap vehicle.Snapshot, err error)
}

// Poller runs ticks against a single feed location
type Poller struct {
	source   FeedSource
	url      string
	sink     sink.Sink
	log      logrus.FieldLogger
	observer Observer
}

// New creates a poller. A nil logger uses the logrus standard logger.
func New(source FeedSource, url string, s sink.Sink, logger logrus.FieldLogger) *Poller {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Poller{
		source: source,
		url:    url,
		sink:   s,
		log:    logger.WithField("feed", url),
	}
}

// SetObserver registers an observer for tick outcomes
func (p *Poller) SetObserver(o Observer) { p.observer = o }

// Tick fetches the feed once, extracts vehicle records and hands them to the sink
func (p *Poller) Tick(ctx context.Context) (vehicle.Snapshot, error) {
	snap, err := p.tick(ctx)
	if p.observer != nil {
		p.observer.Observe(snap, err)
	}
	return snap, err
}

func (p *Poller) tick(ctx context.Context) (vehicle.Snapshot, error) {
	fm, err := p.source.FetchFeed(ctx, p.url)
	if err != nil {
		return vehicle.Snapshot{}, err
	}
	snap := vehicle.FromFeed(fm)
	p.log.WithFields(logrus.Fields{
		"entities": snap.Entities,
		"records":  len(snap.Records),
	}).Debug("feed decoded")

	if err := p.sink.Write(snap); err != nil {
		return snap, err
	}
	return snap, nil
}

// Run ticks immediately and then every interval until ctx is cancelled.
// A failed tick is logged and the loop continues.
func (p *Poller) Run(ctx context.Context, interval time.Duration) error {
	p.log.WithField("interval", interval).Info("starting position logger")
	return scheduler.Run(ctx, interval, func(ctx context.Context) {
		start := time.Now()
		snap, err := p.Tick(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.log.WithError(err).Error("poll failed")
			return
		}
		entry := p.log.WithFields(logrus.Fields{
			"records":  len(snap.Records),
			"duration": time.Since(start).Round(time.Millisecond),
		})
		if snap.Timestamp != nil {
			entry = entry.WithField("feed_timestamp", *snap.Timestamp)
		}
		entry.Info("poll complete")
	})
}
