package gtfsrt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/sirupsen/logrus"
)

// ErrFetch marks network, file and body read failures
var ErrFetch = errors.New("fetch failed")

// Client is a simple HTTP client for fetching GTFS-RT protobuf data.
// It holds no per-request state and is reused across polls.
type Client struct {
	httpClient *http.Client
	log        logrus.FieldLogger
}

// NewClient creates a new GTFS-RT client. A zero timeout keeps the
// http.Client default; a nil logger uses the logrus standard logger.
func NewClient(timeout time.Duration, logger logrus.FieldLogger) *Client {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		log:        logger,
	}
}

// Fetch fetches a single GTFS-RT feed from a URL or file path and returns raw protobuf bytes.
// The body is returned for any HTTP status; a non-2xx status is only logged.
func (c *Client) Fetch(ctx context.Context, urlOrPath string) ([]byte, error) {
	if urlOrPath == "" {
		return nil, fmt.Errorf("%w: empty feed location", ErrFetch)
	}

	if !isHTTP(urlOrPath) {
		b, err := os.ReadFile(urlOrPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}
		return b, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlOrPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, urlOrPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WithFields(logrus.Fields{
			"url":    urlOrPath,
			"status": resp.StatusCode,
		}).Warn("unexpected HTTP status from feed")
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body from %s: %w", ErrFetch, urlOrPath, err)
	}
	return b, nil
}

// FetchFeed fetches and decodes a feed in one call
func (c *Client) FetchFeed(ctx context.Context, urlOrPath string) (*gtfsrtpb.FeedMessage, error) {
	b, err := c.Fetch(ctx, urlOrPath)
	if err != nil {
		return nil, err
	}
	return Decode(b)
}

func isHTTP(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
