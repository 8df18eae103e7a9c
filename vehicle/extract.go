package vehicle

import (
	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

// Extract returns the record for a single entity, or false when the entity
// lacks a vehicle, trip, route_id, position, latitude or longitude.
func Extract(e *gtfsrtpb.FeedEntity) (Record, bool) {
	if e == nil || e.Vehicle == nil {
		return Record{}, false
	}
	vp := e.Vehicle
	if vp.Trip == nil || vp.Trip.RouteId == nil {
		return Record{}, false
	}
	pos := vp.Position
	if pos == nil || pos.Latitude == nil || pos.Longitude == nil {
		return Record{}, false
	}
	return Record{
		Route: *vp.Trip.RouteId,
		Position: Position{
			Latitude:  *pos.Latitude,
			Longitude: *pos.Longitude,
		},
	}, true
}

// ExtractAll applies Extract to every entity, keeping feed order and dropping skipped ones
func ExtractAll(entities []*gtfsrtpb.FeedEntity) []Record {
	records := make([]Record, 0, len(entities))
	for _, e := range entities {
		if r, ok := Extract(e); ok {
			records = append(records, r)
		}
	}
	return records
}

// FromFeed builds the snapshot for a decoded feed message.
// A nil message yields an empty snapshot without timestamp.
func FromFeed(fm *gtfsrtpb.FeedMessage) Snapshot {
	if fm == nil {
		return Snapshot{Records: []Record{}}
	}
	var ts *int64
	if fm.Header != nil && fm.Header.Timestamp != nil {
		v := int64(*fm.Header.Timestamp)
		ts = &v
	}
	return Snapshot{
		Timestamp: ts,
		Entities:  len(fm.Entity),
		Records:   ExtractAll(fm.Entity),
	}
}
