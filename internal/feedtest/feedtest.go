// Package feedtest builds GTFS-Realtime fixtures for tests.
package feedtest

import (
	"testing"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// Entity returns a fully populated vehicle entity
func Entity(id, routeID string, lat, lon float32) *gtfsrtpb.FeedEntity {
	return &gtfsrtpb.FeedEntity{
		Id: proto.String(id),
		Vehicle: &gtfsrtpb.VehiclePosition{
			Trip: &gtfsrtpb.TripDescriptor{
				TripId:  proto.String("trip-" + id),
				RouteId: proto.String(routeID),
			},
			Vehicle: &gtfsrtpb.VehicleDescriptor{
				Id: proto.String("veh-" + id),
			},
			Position: &gtfsrtpb.Position{
				Latitude:  proto.Float32(lat),
				Longitude: proto.Float32(lon),
			},
		},
	}
}

// WithoutRoute returns a vehicle entity whose trip carries no route_id
func WithoutRoute(id string, lat, lon float32) *gtfsrtpb.FeedEntity {
	e := Entity(id, "", lat, lon)
	e.Vehicle.Trip.RouteId = nil
	return e
}

// WithoutPosition returns a vehicle entity with a route but no position
func WithoutPosition(id, routeID string) *gtfsrtpb.FeedEntity {
	e := Entity(id, routeID, 0, 0)
	e.Vehicle.Position = nil
	return e
}

// Message wraps entities in a FeedMessage. A zero timestamp leaves the header timestamp unset.
func Message(timestamp uint64, entities ...*gtfsrtpb.FeedEntity) *gtfsrtpb.FeedMessage {
	header := &gtfsrtpb.FeedHeader{
		GtfsRealtimeVersion: proto.String("2.0"),
	}
	if timestamp != 0 {
		header.Timestamp = proto.Uint64(timestamp)
	}
	return &gtfsrtpb.FeedMessage{
		Header: header,
		Entity: entities,
	}
}

// Encode marshals a FeedMessage, failing the test on error
func Encode(t *testing.T, fm *gtfsrtpb.FeedMessage) []byte {
	t.Helper()
	b, err := proto.Marshal(fm)
	if err != nil {
		t.Fatalf("Failed to marshal feed message: %v", err)
	}
	return b
}
