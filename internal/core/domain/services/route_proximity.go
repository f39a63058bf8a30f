package services

import (
	"shipconvenient/internal/core/domain/model/parcel"
	"shipconvenient/internal/core/domain/model/route"
)

// RouteProximityChecker tests whether a parcel lies along the courier's route before any
// oracle call is paid for.
//
// A parcel fits a direction when its pickup and drop-off are each within tolerance meters of
// the polyline through that direction's points and the pickup does not come after the
// drop-off along it. Two-way mode accepts a fit in either direction.
type RouteProximityChecker struct{}

func NewRouteProximityChecker() RouteProximityChecker {
	return RouteProximityChecker{}
}

// IsNearRoute applies the test to the points of every direction mode travels. Directions
// without points never fit, so an empty point set is always rejected.
//
// Example:
//
//	checker := services.NewRouteProximityChecker()
//	ok := checker.IsNearRoute(points, route.ForwardMode, candidate, tolerances.Proximity(spacing))
func (c RouteProximityChecker) IsNearRoute(
	points route.Points,
	mode route.DirectionMode,
	candidate *parcel.Parcel,
	tolerance float64,
) bool {
	for _, d := range mode.Directions() {
		if c.fitsDirection(points, d, candidate, tolerance) {
			return true
		}
	}
	return false
}

func (RouteProximityChecker) fitsDirection(
	points route.Points,
	d route.DirectionType,
	candidate *parcel.Parcel,
	tolerance float64,
) bool {
	if !points.HasDirection(d) {
		return false
	}
	line := points.Polyline(d)

	pickupPos, pickupDist := line.Locate(candidate.Pickup())
	if pickupDist > tolerance {
		return false
	}
	dropOffPos, dropOffDist := line.Locate(candidate.DropOff())
	if dropOffDist > tolerance {
		return false
	}
	return pickupPos <= dropOffPos
}
