package kernel

import "math"

// Polyline is an ordered chain of GeoPoints, the shape a courier travels along one direction
// of a route. Distances are in meters.
type Polyline struct {
	points []GeoPoint
}

// NewPolyline copies points so later changes to the caller's slice do not leak in.
func NewPolyline(points ...GeoPoint) Polyline {
	cp := make([]GeoPoint, len(points))
	copy(cp, points)
	return Polyline{points: cp}
}

// Points returns a copy of the vertices.
func (l Polyline) Points() []GeoPoint {
	cp := make([]GeoPoint, len(l.points))
	copy(cp, l.points)
	return cp
}

// Len returns the number of vertices.
func (l Polyline) Len() int {
	return len(l.points)
}

// Length returns the sum of haversine lengths of all segments.
func (l Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(l.points); i++ {
		total += l.points[i-1].DistanceTo(l.points[i])
	}
	return total
}

// Reversed returns the same shape travelled the other way.
func (l Polyline) Reversed() Polyline {
	rev := make([]GeoPoint, len(l.points))
	for i, p := range l.points {
		rev[len(l.points)-1-i] = p
	}
	return Polyline{points: rev}
}

// DistanceTo returns the shortest distance from p to any point of the polyline, segment
// interiors included. An empty polyline is infinitely far away.
func (l Polyline) DistanceTo(p GeoPoint) float64 {
	_, dist := l.Locate(p)
	return dist
}

// Locate finds the point of the polyline closest to p. It returns that point's position
// along the polyline (meters from the first vertex) and its distance from p. When several
// segments are equally close the earliest one wins, so positions are deterministic.
//
// Example:
//
//	line := kernel.NewPolyline(a, b, c)
//	pos, dist := line.Locate(pickup)
//	// pos: how far along a->b->c the pickup sits, dist: lateral offset
func (l Polyline) Locate(p GeoPoint) (position, distance float64) {
	switch len(l.points) {
	case 0:
		return 0, math.Inf(1)
	case 1:
		return 0, l.points[0].DistanceTo(p)
	}

	bestPos, bestDist := 0.0, math.Inf(1)
	travelled := 0.0

	for i := 1; i < len(l.points); i++ {
		a, b := l.points[i-1], l.points[i]
		segLen := a.DistanceTo(b)

		t, d := closestOnSegment(p, a, b)
		if d < bestDist {
			bestDist = d
			bestPos = travelled + t*segLen
		}

		travelled += segLen
	}

	return bestPos, bestDist
}

// closestOnSegment projects p onto segment a-b in a plane centred on p and returns the
// clamped segment fraction of the foot point and its distance from p.
func closestOnSegment(p, a, b GeoPoint) (t, dist float64) {
	ax, ay := a.project(p)
	bx, by := b.project(p)
	dx, dy := bx-ax, by-ay

	lenSq := dx*dx + dy*dy
	if lenSq > 0 {
		t = -(ax*dx + ay*dy) / lenSq
		t = math.Max(0, math.Min(1, t))
	}

	fx, fy := ax+t*dx, ay+t*dy
	return t, math.Hypot(fx, fy)
}
