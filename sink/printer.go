package sink

import (
	"fmt"
	"io"

	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/vehicle"
)

// Printer writes a human-readable dump of each snapshot
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Write prints the header timestamp, the entity count and one line per record
func (p *Printer) Write(snap vehicle.Snapshot) error {
	if snap.Timestamp != nil {
		if _, err := fmt.Fprintf(p.w, "timestamp: %d\n", *snap.Timestamp); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintln(p.w, "timestamp: none"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(p.w, "entity count: %d\n", snap.Entities); err != nil {
		return err
	}
	for _, r := range snap.Records {
		if _, err := fmt.Fprintf(p.w, "route %s at (%v, %v)\n", r.Route, r.Position.Latitude, r.Position.Longitude); err != nil {
			return err
		}
	}
	return nil
}
