package ports

import (
	"context"

	"shipconvenient/internal/core/domain/model/kernel"
)

// RouteAlternative is one route the oracle found. Either field may be absent.
type RouteAlternative struct {
	// Distance is the total travel distance in meters.
	Distance *float64
	// Duration is the travel time in seconds.
	Duration *float64
}

// RoutingOracle measures the travel distance through an ordered list of points.
type RoutingOracle interface {
	// GetDistanceAlternatives returns zero or more alternatives; the first is the primary
	// route.
	GetDistanceAlternatives(ctx context.Context, points []kernel.GeoPoint) ([]RouteAlternative, error)
}
