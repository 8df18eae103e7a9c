// Package vehicle reduces GTFS-Realtime vehicle entities to route and position records.
//
// Every field on the path entity -> vehicle -> trip -> route_id -> position is
// optional upstream. Extract checks each link and reports a missing one by
// returning false; an incomplete entity is skipped, never an error.
package vehicle
