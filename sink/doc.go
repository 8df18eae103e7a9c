// Package sink writes extracted vehicle snapshots somewhere.
//
// Printer dumps a snapshot as text to an io.Writer. FileSink serializes the
// records of each snapshot as a JSON array into a file named after the feed
// header timestamp, e.g. 2023-11-14T22:13:20.json.
package sink
