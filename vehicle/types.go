package vehicle

// Position is a WGS84 coordinate in degrees, kept at the feed's float32 precision
type Position struct {
	Latitude  float32 `json:"latitude"`
	Longitude float32 `json:"longitude"`
}

// Record is the simplified view of one vehicle position update
type Record struct {
	Route    string   `json:"route"`
	Position Position `json:"position"`
}

// Snapshot is everything one poll extracted from a feed message
type Snapshot struct {
	// Timestamp is the feed header timestamp in Unix seconds, nil when the header has none
	Timestamp *int64
	Entities  int
	Records   []Record
}
