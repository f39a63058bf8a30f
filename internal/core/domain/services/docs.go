// Package services provides the stateless domain services of the suggestion engine. They
// work across the route, parcel and courier aggregates and hold no state between calls, so
// a single value is safe for concurrent use.
//
// The package includes:
//   - WaypointBuilder: orders the stops of committed parcels plus a candidate into a trip
//   - RouteProximityChecker: cheap geometric pre-filter against the courier's route points
//   - DistanceBudget: the per-direction limit the oracle-reported extension must respect
//   - BalanceFilter: drops candidates the courier cannot pay for
//   - SuggestionTolerances: the two ratios applied to the spacing tolerance
package services
