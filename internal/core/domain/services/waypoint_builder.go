package services

import (
	"errors"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/domain/model/parcel"
	"shipconvenient/internal/core/domain/model/route"
)

var (
	ErrRouteIsRequired     = errors.New("waypoints need an active route")
	ErrCandidateIsRequired = errors.New("waypoints need a candidate parcel")
)

// Trip is the route context waypoints are built for. Points should hold every point of the
// route, virtual ones included; they only shape the direction polylines stops are placed on.
type Trip struct {
	Route  *route.Route
	Points route.Points
	Mode   route.DirectionMode
}

// WaypointBuilder orders the remaining stops of the committed parcels and the candidate into
// the point list the routing oracle measures.
//
// Every stop is placed on the polyline of its direction by arc position and stops are
// visited in increasing position. A drop-off waits until its own pickup has been visited;
// a picked-up parcel contributes only its drop-off. Equal positions keep input order,
// committed parcels first. The trip starts and ends at the route endpoints of the direction:
//
//	forward:  From, stops..., To
//	backward: To, stops..., From
//	two-way:  From, forward stops..., To, backward stops..., From
//
// In two-way mode a parcel rides the forward leg unless its pickup lies after its drop-off
// along the forward polyline.
type WaypointBuilder struct{}

func NewWaypointBuilder() WaypointBuilder {
	return WaypointBuilder{}
}

// Build returns the ordered waypoints for committed plus candidate. With no committed
// parcels the trip carries only the candidate's pickup and drop-off.
func (b WaypointBuilder) Build(trip Trip, committed []*parcel.Parcel, candidate *parcel.Parcel) ([]kernel.GeoPoint, error) {
	if err := trip.Route.Validate(); err != nil {
		return nil, errors.Join(ErrRouteIsRequired, err)
	}
	if err := trip.Mode.Validate(); err != nil {
		return nil, err
	}
	if err := candidate.Validate(); err != nil {
		return nil, errors.Join(ErrCandidateIsRequired, err)
	}

	parcels := make([]*parcel.Parcel, 0, len(committed)+1)
	for _, p := range committed {
		if p != nil {
			parcels = append(parcels, p)
		}
	}
	parcels = append(parcels, candidate)

	r := trip.Route
	switch trip.Mode {
	case route.ForwardMode, route.BackwardMode:
		d := trip.Mode.Directions()[0]
		return b.leg(r, trip.Points, d, parcels, true), nil
	case route.TwoWayMode:
		forward, backward := b.splitLegs(r.PathFor(trip.Points, route.Forward), parcels)
		out := b.leg(r, trip.Points, route.Forward, forward, true)
		return append(out, b.leg(r, trip.Points, route.Backward, backward, false)...), nil
	case route.UnknownMode:
	}
	return nil, trip.Mode.Validate()
}

// splitLegs keeps input order inside each leg.
func (WaypointBuilder) splitLegs(forward kernel.Polyline, parcels []*parcel.Parcel) (fwd, bwd []*parcel.Parcel) {
	for _, p := range parcels {
		pickupPos, _ := forward.Locate(p.Pickup())
		dropOffPos, _ := forward.Locate(p.DropOff())
		if pickupPos <= dropOffPos {
			fwd = append(fwd, p)
		} else {
			bwd = append(bwd, p)
		}
	}
	return fwd, bwd
}

// leg emits Start(d), the ordered stops, End(d). withStart is false for the return leg of a
// two-way trip, whose start is the previous leg's end.
func (b WaypointBuilder) leg(
	r *route.Route,
	points route.Points,
	d route.DirectionType,
	parcels []*parcel.Parcel,
	withStart bool,
) []kernel.GeoPoint {
	stops := b.orderStops(r.PathFor(points, d), parcels)

	out := make([]kernel.GeoPoint, 0, len(stops)+2)
	if withStart {
		out = append(out, r.Start(d))
	}
	for _, s := range stops {
		out = append(out, s.Location)
	}
	return append(out, r.End(d))
}

type placedStop struct {
	stop     parcel.Stop
	position float64
	// blockedBy is the index of the pickup that must come first, or -1.
	blockedBy int
}

// orderStops is a greedy precedence-respecting sweep: at each step the smallest-position
// stop whose pickup is already visited is taken.
func (WaypointBuilder) orderStops(line kernel.Polyline, parcels []*parcel.Parcel) []parcel.Stop {
	var placed []placedStop
	for _, p := range parcels {
		pickupAt := -1
		for _, s := range p.RemainingStops() {
			pos, _ := line.Locate(s.Location)
			ps := placedStop{stop: s, position: pos, blockedBy: -1}
			if s.Kind == parcel.DropOff {
				ps.blockedBy = pickupAt
			} else {
				pickupAt = len(placed)
			}
			placed = append(placed, ps)
		}
	}

	visited := make([]bool, len(placed))
	out := make([]parcel.Stop, 0, len(placed))
	for range placed {
		next := -1
		for i, ps := range placed {
			if visited[i] || (ps.blockedBy >= 0 && !visited[ps.blockedBy]) {
				continue
			}
			if next < 0 || ps.position < placed[next].position {
				next = i
			}
		}
		visited[next] = true
		out = append(out, placed[next].stop)
	}
	return out
}
