package planner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrTargetUnavailable reports that no travel planner could be reached.
// Callers surface it as a user-visible fallback message.
var ErrTargetUnavailable = errors.New("planner target unavailable")

// Waypoint is the payload handed to the external travel planner: a
// photo's coordinates plus its human-readable labels.
type Waypoint struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PointType   string  `json:"point_type"`
}

// Client talks to the travel planner's HTTP API.
type Client struct {
	endpoint string
	client   *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// AddWaypoint sends the waypoint to the planner. An unconfigured or
// unreachable planner yields ErrTargetUnavailable.
func (c *Client) AddWaypoint(wp Waypoint) error {
	if c.endpoint == "" {
		return fmt.Errorf("%w: no endpoint configured", ErrTargetUnavailable)
	}

	body, err := json.Marshal(wp)
	if err != nil {
		return fmt.Errorf("failed to encode waypoint: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint+"/waypoints", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build waypoint request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTargetUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d", ErrTargetUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("waypoint request rejected with status %d", resp.StatusCode)
	}
	return nil
}
