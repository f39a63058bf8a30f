package parcelrepo

import (
	"context"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/domain/model/parcel"
	"shipconvenient/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const listOrder = "created_at, id"

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db *gorm.DB
}

func NewGormParcelRepository(db *gorm.DB) *GormParcelRepository {
	return &GormParcelRepository{db: db}
}

// GetInFlight retrieves the courier's Selected and PickupSuccess parcels.
func (r *GormParcelRepository) GetInFlight(ctx context.Context, courierID kernel.UUID) ([]*parcel.Parcel, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, "deliver_id = ? AND status = ANY(?)",
		courierID.Bytes(), pq.Array(StatusNames(parcel.InFlightStatuses())))
}

// GetApproved retrieves Approved parcels of every sender except excludingSender, so a
// courier is never offered their own parcels.
func (r *GormParcelRepository) GetApproved(
	ctx context.Context,
	excludingSender kernel.UUID,
) ([]*parcel.Parcel, error) {
	if err := excludingSender.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, "status = ? AND sender_id <> ?", parcel.Approved.String(), excludingSender.Bytes())
}

// GetByIDs retrieves parcels in the order of ids.
func (r *GormParcelRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*parcel.Parcel, error) {
	if len(ids) == 0 {
		return []*parcel.Parcel{}, nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.String())
	}

	found, err := r.find(ctx, "id = ANY(?::uuid[])", pq.Array(raw))
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*parcel.Parcel, len(found))
	for _, p := range found {
		byID[p.ID()] = p
	}

	parcels := make([]*parcel.Parcel, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

func (r *GormParcelRepository) find(ctx context.Context, where string, args ...any) ([]*parcel.Parcel, error) {
	var dtos []PackageDTO
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where(where, args...).
		Order(listOrder).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}
