package ports

import (
	"context"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/domain/model/parcel"
)

// ParcelRepository reads parcels with their products. List methods return parcels in a
// stable order (creation time, then id) so repeated calls over the same data agree.
type ParcelRepository interface {
	// GetInFlight retrieves the parcels assigned to the courier in Selected or PickupSuccess.
	GetInFlight(ctx context.Context, courierID kernel.UUID) ([]*parcel.Parcel, error)

	// GetApproved retrieves Approved parcels not sent by excludingSender.
	GetApproved(ctx context.Context, excludingSender kernel.UUID) ([]*parcel.Parcel, error)

	// GetByIDs retrieves the listed parcels in the order of ids. Unknown ids are an
	// ObjectNotFoundError naming the first missing id.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*parcel.Parcel, error)
}
