package sink

import "github.com/theoremus-urban-solutions/gtfsrt-position-logger/vehicle"

// Sink consumes one snapshot per poll
type Sink interface {
	Write(snap vehicle.Snapshot) error
}

var (
	_ Sink = (*Printer)(nil)
	_ Sink = (*FileSink)(nil)
)
