package route

import (
	"errors"
	"math"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/pkg/errs"
	"shipconvenient/internal/pkg/guard"
)

var ErrRouteIsNotConstructed = errs.NewValueIsRequiredError(
	"route must be created via NewRoute constructor")

// Route is a courier's declared path from From to To and, for two-way travel, back again.
// DistanceForward and DistanceBackward are the meters already committed by the courier's
// accepted deliveries in each direction.
//
// Example:
//
//	r, err := route.NewRoute(id, profileID, home, office, 0, 0, true)
//	if err != nil {
//	    // invalid endpoints or negative distances
//	}
//	axis := r.Axis(route.Forward) // home -> office
type Route struct { //nolint:recvcheck //using for validation
	id               kernel.UUID
	profileID        kernel.UUID
	from             kernel.GeoPoint
	to               kernel.GeoPoint
	distanceForward  float64
	distanceBackward float64
	active           bool
	guard            guard.ConstructorGuard
}

func NewRoute(
	id kernel.UUID,
	profileID kernel.UUID,
	from kernel.GeoPoint,
	to kernel.GeoPoint,
	distanceForward float64,
	distanceBackward float64,
	active bool,
) (*Route, error) {
	r := &Route{active: active, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setID(id),
		r.setProfileID(profileID),
		r.setFrom(from),
		r.setTo(to),
		r.setDistanceForward(distanceForward),
		r.setDistanceBackward(distanceBackward),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r *Route) ID() kernel.UUID {
	return r.id
}

// ProfileID is the courier profile that owns the route.
func (r *Route) ProfileID() kernel.UUID {
	return r.profileID
}

func (r *Route) From() kernel.GeoPoint {
	return r.from
}

func (r *Route) To() kernel.GeoPoint {
	return r.to
}

func (r *Route) DistanceForward() float64 {
	return r.distanceForward
}

func (r *Route) DistanceBackward() float64 {
	return r.distanceBackward
}

func (r *Route) IsActive() bool {
	return r.active
}

// CommittedDistance sums the committed distances of the directions mode travels.
func (r *Route) CommittedDistance(mode DirectionMode) float64 {
	total := 0.0
	for _, d := range mode.Directions() {
		switch d {
		case Forward:
			total += r.distanceForward
		case Backward:
			total += r.distanceBackward
		case UnknownDirection:
		}
	}
	return total
}

// Start returns where travel in direction d begins.
func (r *Route) Start(d DirectionType) kernel.GeoPoint {
	if d == Backward {
		return r.to
	}
	return r.from
}

// End returns where travel in direction d finishes.
func (r *Route) End(d DirectionType) kernel.GeoPoint {
	if d == Backward {
		return r.from
	}
	return r.to
}

// Axis is the straight segment from Start(d) to End(d).
func (r *Route) Axis(d DirectionType) kernel.Polyline {
	return kernel.NewPolyline(r.Start(d), r.End(d))
}

// PathFor returns the polyline of points travelled in direction d, or the Axis when fewer
// than two such points exist.
func (r *Route) PathFor(points Points, d DirectionType) kernel.Polyline {
	line := points.Polyline(d)
	if line.Len() < 2 {
		return r.Axis(d)
	}
	return line
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("route id", err)
	}
	r.id = id
	return nil
}

func (r *Route) setProfileID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("route profile id", err)
	}
	r.profileID = id
	return nil
}

func (r *Route) setFrom(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("route from", err)
	}
	r.from = p
	return nil
}

func (r *Route) setTo(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("route to", err)
	}
	r.to = p
	return nil
}

func (r *Route) setDistanceForward(v float64) error {
	if math.IsNaN(v) || v < 0 {
		return errs.NewValueIsOutOfRangeError("distance forward", v, 0, math.Inf(1))
	}
	r.distanceForward = v
	return nil
}

func (r *Route) setDistanceBackward(v float64) error {
	if math.IsNaN(v) || v < 0 {
		return errs.NewValueIsOutOfRangeError("distance backward", v, 0, math.Inf(1))
	}
	r.distanceBackward = v
	return nil
}
