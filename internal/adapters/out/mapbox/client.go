// Package mapbox implements ports.RoutingOracle over the Mapbox Directions API.
package mapbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/ports"
)

const (
	DefaultBaseURL = "https://api.mapbox.com"
	DefaultProfile = "driving"
	DefaultTimeout = 10 * time.Second

	// MaxWaypoints is the Directions API limit for driving profiles.
	MaxWaypoints = 25
)

var (
	ErrAccessTokenIsRequired = errors.New("mapbox access token is empty")
	ErrTooFewWaypoints       = errors.New("at least two waypoints are required")
	ErrTooManyWaypoints      = fmt.Errorf("at most %d waypoints are allowed", MaxWaypoints)
)

// Config configures a Client. Zero fields take the package defaults.
type Config struct {
	AccessToken string
	BaseURL     string
	Profile     string
	Timeout     time.Duration
}

// Client asks Mapbox for driving alternatives through an ordered list of waypoints. It does
// not retry; callers bound each call with their own timeout. Safe for concurrent use.
type Client struct {
	session *http.Client
	token   string
	baseURL string
	profile string
}

var _ ports.RoutingOracle = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.AccessToken) == "" {
		return nil, ErrAccessTokenIsRequired
	}

	c := &Client{
		session: &http.Client{Timeout: DefaultTimeout},
		token:   cfg.AccessToken,
		baseURL: DefaultBaseURL,
		profile: DefaultProfile,
	}
	if cfg.BaseURL != "" {
		c.baseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.Profile != "" {
		c.profile = cfg.Profile
	}
	if cfg.Timeout > 0 {
		c.session.Timeout = cfg.Timeout
	}

	return c, nil
}

type directionsResponse struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Routes  []directionRoute `json:"routes"`
}

type directionRoute struct {
	Distance *float64 `json:"distance"`
	Duration *float64 `json:"duration"`
}

// GetDistanceAlternatives returns the routes Mapbox found, primary first. A NoRoute or
// NoSegment answer is an empty result, not an error.
func (c *Client) GetDistanceAlternatives(
	ctx context.Context,
	points []kernel.GeoPoint,
) ([]ports.RouteAlternative, error) {
	switch {
	case len(points) < 2:
		return nil, ErrTooFewWaypoints
	case len(points) > MaxWaypoints:
		return nil, ErrTooManyWaypoints
	}

	req, err := c.newRequest(ctx, c.directionsURL(points))
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		var he *HTTPStatusError
		if errors.As(err, &he) && he.Code == http.StatusUnprocessableEntity && isNoRoute(he.Body) {
			return []ports.RouteAlternative{}, nil
		}
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	switch dr.Code {
	case "Ok":
	case "NoRoute", "NoSegment":
		return []ports.RouteAlternative{}, nil
	default:
		return nil, fmt.Errorf("directions returned %s: %s", dr.Code, dr.Message)
	}

	out := make([]ports.RouteAlternative, 0, len(dr.Routes))
	for _, r := range dr.Routes {
		out = append(out, ports.RouteAlternative{Distance: r.Distance, Duration: r.Duration})
	}
	return out, nil
}

// directionsURL encodes waypoints as lon,lat pairs joined by semicolons.
func (c *Client) directionsURL(points []kernel.GeoPoint) string {
	coords := make([]string, 0, len(points))
	for _, p := range points {
		coords = append(coords,
			strconv.FormatFloat(p.Lon(), 'f', -1, 64)+","+strconv.FormatFloat(p.Lat(), 'f', -1, 64))
	}

	q := url.Values{}
	q.Set("alternatives", "true")
	q.Set("overview", "false")
	q.Set("steps", "false")
	q.Set("access_token", c.token)

	return fmt.Sprintf("%s/directions/v5/mapbox/%s/%s?%s",
		c.baseURL, c.profile, strings.Join(coords, ";"), q.Encode())
}

func isNoRoute(body string) bool {
	var dr directionsResponse
	if err := json.Unmarshal([]byte(body), &dr); err != nil {
		return false
	}
	return dr.Code == "NoRoute" || dr.Code == "NoSegment"
}
