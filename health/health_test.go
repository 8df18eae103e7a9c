package health

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/vehicle"
)

func get(t *testing.T, h http.Handler) (int, healthResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	return rec.Code, resp
}

func fixedStatus() *Status {
	s := NewStatus()
	s.now = func() time.Time { return time.Date(2023, 11, 14, 22, 13, 25, 0, time.UTC) }
	return s
}

func TestStatus_BeforeFirstTick(t *testing.T) {
	code, resp := get(t, NewStatus().Handler())
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, healthResponse{Status: "starting"}, resp)
}

func TestStatus_AfterSuccessfulTick(t *testing.T) {
	s := fixedStatus()
	ts := int64(1700000000)
	s.Observe(vehicle.Snapshot{Timestamp: &ts, Records: make([]vehicle.Record, 4)}, nil)

	code, resp := get(t, s.Handler())
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, healthResponse{
		Status:                  "ok",
		LatestGTFSRealtimeEpoch: 1700000000,
		LatestGTFSRealtimeTime:  "2023-11-14T22:13:20Z",
		LastTick:                "2023-11-14T22:13:25Z",
		Records:                 4,
	}, resp)
}

// TestStatus_FailedTickKeepsEpoch tests that a failure reports degraded but keeps the last good feed data
func TestStatus_FailedTickKeepsEpoch(t *testing.T) {
	s := fixedStatus()
	ts := int64(1700000000)
	s.Observe(vehicle.Snapshot{Timestamp: &ts, Records: make([]vehicle.Record, 2)}, nil)
	s.Observe(vehicle.Snapshot{}, errors.New("fetch failed: connection refused"))

	code, resp := get(t, s.Handler())
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, int64(1700000000), resp.LatestGTFSRealtimeEpoch)
	assert.Equal(t, 2, resp.Records)
	assert.Equal(t, "fetch failed: connection refused", resp.LastError)

	s.Observe(vehicle.Snapshot{Timestamp: &ts}, nil)
	code, resp = get(t, s.Handler())
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", resp.Status)
	assert.Empty(t, resp.LastError)
}

func TestServer_StartAndShutdown(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	s := fixedStatus()
	ts := int64(1700000000)
	s.Observe(vehicle.Snapshot{Timestamp: &ts}, nil)

	srv := NewServer("127.0.0.1:0", s, logger)
	addr, err := srv.Start()
	require.NoError(t, err)
	defer srv.Shutdown()

	resp, err := http.Get("http://" + addr + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"latest_gtfsrt_epoch":1700000000`)
}

func TestServer_StartAddressInUse(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	first := NewServer("127.0.0.1:0", NewStatus(), logger)
	addr, err := first.Start()
	require.NoError(t, err)
	defer first.Shutdown()

	_, err = NewServer(addr, NewStatus(), logger).Start()
	assert.Error(t, err)
}
