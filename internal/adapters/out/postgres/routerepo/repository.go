package routerepo

import (
	"context"
	"errors"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/domain/model/route"
	"shipconvenient/internal/core/ports"
	"shipconvenient/internal/pkg/errs"

	"gorm.io/gorm"
)

// pointOrder sorts FORWARD before BACKWARD, then by index. It matches route.Points.Sorted.
const pointOrder = "CASE direction_type WHEN 'FORWARD' THEN 0 ELSE 1 END, \"index\", id"

// GormRouteRepository implements ports.RouteRepository using GORM.
type GormRouteRepository struct {
	db *gorm.DB
}

func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// GetActive retrieves the active route of a profile. Should a profile have several
// active routes, the one with the lowest id wins so the choice is stable.
func (r *GormRouteRepository) GetActive(ctx context.Context, profileID kernel.UUID) (*route.Route, error) {
	if err := profileID.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	err := r.db.WithContext(ctx).
		Where("info_user_id = ? AND is_active = ?", profileID.Bytes(), true).
		Order("id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active route", profileID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPoints retrieves the points of a route, narrowed by filter.
//
// Example:
//
//	declared := false
//	points, err := repo.GetPoints(ctx, routeID, ports.PointFilter{Virtual: &declared})
func (r *GormRouteRepository) GetPoints(
	ctx context.Context,
	routeID kernel.UUID,
	filter ports.PointFilter,
) (route.Points, error) {
	if err := routeID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("route_id = ?", routeID.Bytes())
	if filter.Virtual != nil {
		query = query.Where("is_virtual = ?", *filter.Virtual)
	}
	if filter.Direction != nil {
		if err := filter.Direction.Validate(); err != nil {
			return nil, err
		}
		query = query.Where("direction_type = ?", filter.Direction.String())
	}

	var dtos []RoutePointDTO
	if err := query.Order(pointOrder).Find(&dtos).Error; err != nil {
		return nil, err
	}

	points := make(route.Points, 0, len(dtos))
	for _, dto := range dtos {
		p, err := pointToDomain(dto)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points.Sorted(), nil
}
