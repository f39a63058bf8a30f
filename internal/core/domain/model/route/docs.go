// Package route models a courier's declared travel path.
//
// The package includes:
//   - Route: the aggregate holding the path endpoints, the active flag and the cumulative
//     distances already committed in each direction
//   - Point: one ordered waypoint of a route, possibly virtual (synthetic insertion point)
//   - DirectionType: the direction a point belongs to (forward or backward)
//   - DirectionMode: the courier's suggestion preference (forward, backward or two-way)
//
// Key business rules:
//   - A profile has at most one active route
//   - Points are totally ordered by (DirectionType, Index)
//   - Virtual and non-virtual points are disjoint subsets of the same route
package route
