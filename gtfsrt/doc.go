// Package gtfsrt fetches and decodes GTFS-Realtime protobuf feeds.
//
// Client.Fetch issues a single GET against an HTTP(S) URL, or reads a local
// file when the location has no http:// or https:// prefix, and returns the
// raw bytes. Decode turns those bytes into a gtfs.FeedMessage from the
// MobilityData bindings. Failures wrap ErrFetch or ErrDecode.
package gtfsrt
