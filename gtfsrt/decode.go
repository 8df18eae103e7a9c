package gtfsrt

import (
	"errors"
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// ErrDecode marks bytes that are not a valid FeedMessage encoding
var ErrDecode = errors.New("decode failed")

// Decode parses raw protobuf bytes into a FeedMessage
func Decode(b []byte) (*gtfsrtpb.FeedMessage, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &fm, nil
}
