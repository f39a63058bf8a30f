// Package courier provides the Courier aggregate as seen by the suggestion engine.
//
// The package includes:
//   - Courier: the account that fulfils deliveries
//   - Profile: the courier's linked user profile (InfoUser), owner of routes and settings
//
// Key business rules:
//   - Couriers must have a valid unique identifier and a non-empty name
//   - A courier without a profile is not eligible for suggestions
//
// Couriers are owned by the account service; this package only reads them.
package courier
