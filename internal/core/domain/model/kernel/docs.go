// Package kernel provides the value objects shared by every aggregate of the suggestion
// service.
//
// The package includes:
//   - UUID: identifier value object over github.com/google/uuid
//   - GeoPoint: a validated WGS 84 coordinate with haversine distance
//   - Polyline: an ordered chain of GeoPoints with point-to-line distance and arc position,
//     the geometry behind route proximity checks and waypoint ordering
//
// All values are immutable and safe for concurrent use.
package kernel
