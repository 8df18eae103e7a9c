package sink

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/utils"
	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/vehicle"
)

var (
	// ErrMissingTimestamp is returned for a snapshot whose feed header has no timestamp
	ErrMissingTimestamp = errors.New("feed header has no timestamp")
	// ErrEncode marks a record serialization failure
	ErrEncode = errors.New("encode records")
)

// FileSink persists each snapshot to <dir>/<timestamp>.json
type FileSink struct {
	dir string
}

// NewFileSink creates the directory if needed and returns a sink writing into it
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &FileSink{dir: dir}, nil
}

// Dir returns the output directory
func (s *FileSink) Dir() string { return s.dir }

// FileName returns the snapshot file name for a header timestamp in Unix seconds
func FileName(headerTimestamp int64) string {
	return utils.FileTimestampFromUnixSeconds(headerTimestamp) + ".json"
}

// Write persists the snapshot records, failing when the header timestamp is absent
func (s *FileSink) Write(snap vehicle.Snapshot) error {
	if snap.Timestamp == nil {
		return ErrMissingTimestamp
	}
	_, err := s.Persist(*snap.Timestamp, snap.Records)
	return err
}

// Persist writes records as a JSON array, creating or overwriting the file,
// and returns the path written.
func (s *FileSink) Persist(headerTimestamp int64, records []vehicle.Record) (string, error) {
	if records == nil {
		records = []vehicle.Record{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncode, err)
	}

	path := filepath.Join(s.dir, FileName(headerTimestamp))
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}
