package utils

import (
	"time"
)

// FileTimestampLayout is the calendar layout used for snapshot file names
const FileTimestampLayout = "2006-01-02T15:04:05"

// Iso8601FromUnixSeconds converts Unix timestamp to ISO8601 format
func Iso8601FromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}

// FileTimestampFromUnixSeconds formats a Unix timestamp as YYYY-MM-DDTHH:MM:SS in UTC
func FileTimestampFromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(FileTimestampLayout)
}
