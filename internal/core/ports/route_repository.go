package ports

import (
	"context"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/domain/model/route"
)

// PointFilter narrows GetPoints. Nil fields do not filter.
type PointFilter struct {
	Virtual   *bool
	Direction *route.DirectionType
}

// RouteRepository reads courier routes and their points.
type RouteRepository interface {
	// GetActive retrieves the single active route of a profile.
	// Returns ObjectNotFoundError when the profile has no active route.
	GetActive(ctx context.Context, profileID kernel.UUID) (*route.Route, error)

	// GetPoints retrieves the points of a route ordered by (direction, index).
	GetPoints(ctx context.Context, routeID kernel.UUID, filter PointFilter) (route.Points, error)
}
