// Package ports defines the contracts between the suggestion engine and its collaborators:
// the read-only repositories over accounts, routes, parcels, balances and settings, and the
// external routing oracle. Every lookup of a single absent row returns an
// errs.ObjectNotFoundError so callers can test with errors.Is(err, errs.ErrObjectNotFound).
package ports

import (
	"context"

	"shipconvenient/internal/core/domain/model/courier"
	"shipconvenient/internal/core/domain/model/kernel"
)

// CourierRepository reads courier accounts.
type CourierRepository interface {
	// GetWithProfile retrieves the courier account together with its linked profile.
	// A courier without a profile is returned with HasProfile() == false, not as an error.
	//
	// Example:
	//   c, err := repo.GetWithProfile(ctx, courierID)
	//   if errors.Is(err, errs.ErrObjectNotFound) {
	//       return ErrCourierNotFound
	//   }
	GetWithProfile(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
}
