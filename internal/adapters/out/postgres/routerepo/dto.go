// Package routerepo reads courier routes and their ordered points.
package routerepo

import (
	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO is a row of the routes table. Distances are meters.
type RouteDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InfoUserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	FromLatitude     float64         `gorm:"type:double precision;not null"`
	FromLongitude    float64         `gorm:"type:double precision;not null"`
	ToLatitude       float64         `gorm:"type:double precision;not null"`
	ToLongitude      float64         `gorm:"type:double precision;not null"`
	DistanceForward  float64         `gorm:"type:double precision;not null;default:0"`
	DistanceBackward float64         `gorm:"type:double precision;not null;default:0"`
	IsActive         bool            `gorm:"not null;default:false;index"`
	Points           []RoutePointDTO `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

func (RouteDTO) TableName() string {
	return "routes"
}

// RoutePointDTO is a row of route_points. DirectionType holds FORWARD or BACKWARD.
type RoutePointDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Index         int       `gorm:"column:index;type:int;not null"`
	DirectionType string    `gorm:"type:varchar(16);not null"`
	Latitude      float64   `gorm:"type:double precision;not null"`
	Longitude     float64   `gorm:"type:double precision;not null"`
	IsVirtual     bool      `gorm:"not null;default:false"`
}

func (RoutePointDTO) TableName() string {
	return "route_points"
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	profileID, err := kernel.UUIDFromBytes(dto.InfoUserID[:])
	if err != nil {
		return nil, err
	}

	from, err := kernel.NewGeoPoint(dto.FromLatitude, dto.FromLongitude)
	if err != nil {
		return nil, err
	}

	to, err := kernel.NewGeoPoint(dto.ToLatitude, dto.ToLongitude)
	if err != nil {
		return nil, err
	}

	return route.NewRoute(id, profileID, from, to, dto.DistanceForward, dto.DistanceBackward, dto.IsActive)
}

func pointToDomain(dto RoutePointDTO) (route.Point, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return route.Point{}, err
	}

	direction, err := route.ParseDirectionType(dto.DirectionType)
	if err != nil {
		return route.Point{}, err
	}

	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return route.Point{}, err
	}

	return route.NewPoint(id, dto.Index, direction, location, dto.IsVirtual)
}
