package services

import "shipconvenient/internal/core/domain/model/route"

// DistanceBudget is the hard limit on the distance a trip with a candidate may report:
//
//	forward:  extension <= tolerance + DistanceForward
//	backward: extension <= tolerance + DistanceBackward
//	two-way:  extension <= tolerance + DistanceForward + DistanceBackward
type DistanceBudget struct{}

func NewDistanceBudget() DistanceBudget {
	return DistanceBudget{}
}

// Limit returns the largest extension the route accepts under mode.
func (DistanceBudget) Limit(r *route.Route, mode route.DirectionMode, tolerance float64) float64 {
	return tolerance + r.CommittedDistance(mode)
}

// Allows reports whether extension fits in the budget. Negative extensions never pass.
func (b DistanceBudget) Allows(r *route.Route, mode route.DirectionMode, tolerance, extension float64) bool {
	if extension < 0 {
		return false
	}
	return extension <= b.Limit(r, mode, tolerance)
}
