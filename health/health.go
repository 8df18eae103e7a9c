// Package health exposes the outcome of the latest poll over HTTP.
package health

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/utils"
	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/vehicle"
)

type healthResponse struct {
	Status                  string `json:"status"`
	LatestGTFSRealtimeEpoch int64  `json:"latest_gtfsrt_epoch"`
	LatestGTFSRealtimeTime  string `json:"latest_gtfsrt_time,omitempty"`
	LastTick                string `json:"last_tick,omitempty"`
	LastError               string `json:"last_error,omitempty"`
	Records                 int    `json:"records"`
}

// Status tracks the last poll. It satisfies poller.Observer.
type Status struct {
	mu       sync.Mutex
	epoch    int64
	lastTick time.Time
	lastErr  error
	records  int
	now      func() time.Time
}

// NewStatus returns an empty status
func NewStatus() *Status {
	return &Status{now: time.Now}
}

// Observe records the outcome of one poll. A failed poll keeps the last known feed epoch.
func (s *Status) Observe(snap vehicle.Snapshot, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTick = s.now()
	s.lastErr = err
	if err != nil {
		return
	}
	if snap.Timestamp != nil {
		s.epoch = *snap.Timestamp
	}
	s.records = len(snap.Records)
}

func (s *Status) response() healthResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp := healthResponse{
		Status:                  "starting",
		LatestGTFSRealtimeEpoch: s.epoch,
		Records:                 s.records,
	}
	if s.epoch != 0 {
		resp.LatestGTFSRealtimeTime = utils.Iso8601FromUnixSeconds(s.epoch)
	}
	if !s.lastTick.IsZero() {
		resp.Status = "ok"
		resp.LastTick = s.lastTick.UTC().Format(time.RFC3339)
	}
	if s.lastErr != nil {
		resp.Status = "degraded"
		resp.LastError = s.lastErr.Error()
	}
	return resp
}

// Handler serves the status as JSON
func (s *Status) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := s.response()
		w.Header().Set("Content-Type", "application/json")
		if resp.Status == "degraded" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(resp)
	})
}
