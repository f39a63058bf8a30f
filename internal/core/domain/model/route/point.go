package route

import (
	"errors"
	"math"
	"slices"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/pkg/errs"
	"shipconvenient/internal/pkg/guard"
)

var ErrPointIsNotConstructed = errs.NewValueIsRequiredError(
	"route point must be created via NewPoint constructor")

// Point is one ordered waypoint of a route.
type Point struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	index     int
	direction DirectionType
	location  kernel.GeoPoint
	virtual   bool
	guard     guard.ConstructorGuard
}

// NewPoint validates the location, the direction and a non-negative index.
func NewPoint(
	id kernel.UUID,
	index int,
	direction DirectionType,
	location kernel.GeoPoint,
	virtual bool,
) (Point, error) {
	p := Point{virtual: virtual, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setIndex(index),
		p.setDirection(direction),
		p.setLocation(location),
	); err != nil {
		return Point{}, err
	}

	return p, nil
}

func (p Point) Validate() error {
	return p.guard.Validate(ErrPointIsNotConstructed)
}

func (p Point) ID() kernel.UUID {
	return p.id
}

func (p Point) Index() int {
	return p.index
}

func (p Point) Direction() DirectionType {
	return p.direction
}

func (p Point) Location() kernel.GeoPoint {
	return p.location
}

// IsVirtual marks synthetic points inserted between declared waypoints.
func (p Point) IsVirtual() bool {
	return p.virtual
}

func (p *Point) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("point id", err)
	}
	p.id = id
	return nil
}

func (p *Point) setIndex(index int) error {
	if index < 0 {
		return errs.NewValueIsOutOfRangeError("point index", index, 0, math.MaxInt)
	}
	p.index = index
	return nil
}

func (p *Point) setDirection(direction DirectionType) error {
	if err := direction.Validate(); err != nil {
		return err
	}
	p.direction = direction
	return nil
}

func (p *Point) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("point location", err)
	}
	p.location = location
	return nil
}

// Points is an ordered set of route points.
type Points []Point

// Sorted returns a copy ordered by (DirectionType, Index). Equal keys keep input order.
func (ps Points) Sorted() Points {
	out := slices.Clone(ps)
	slices.SortStableFunc(out, func(a, b Point) int {
		if a.direction != b.direction {
			return int(a.direction) - int(b.direction)
		}
		return a.index - b.index
	})
	return out
}

// Filter keeps the points whose direction takes part in mode. When virtual is non-nil only
// points with a matching IsVirtual flag are kept. The result is sorted.
func (ps Points) Filter(virtual *bool, mode DirectionMode) Points {
	out := make(Points, 0, len(ps))
	for _, p := range ps {
		if !mode.Includes(p.direction) {
			continue
		}
		if virtual != nil && p.virtual != *virtual {
			continue
		}
		out = append(out, p)
	}
	return out.Sorted()
}

// Polyline chains the locations of the points travelled in direction d, ordered by Index.
func (ps Points) Polyline(d DirectionType) kernel.Polyline {
	sorted := ps.Sorted()
	locs := make([]kernel.GeoPoint, 0, len(sorted))
	for _, p := range sorted {
		if p.direction == d {
			locs = append(locs, p.location)
		}
	}
	return kernel.NewPolyline(locs...)
}

// HasDirection reports whether at least one point is travelled in direction d.
func (ps Points) HasDirection(d DirectionType) bool {
	return slices.ContainsFunc(ps, func(p Point) bool { return p.direction == d })
}
