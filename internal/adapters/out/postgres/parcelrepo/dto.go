// Package parcelrepo reads parcels ("packages" in the database) and their products.
package parcelrepo

import (
	"time"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// PackageDTO is a row of the packages table. Status holds the parcel.Status name.
type PackageDTO struct {
	ID                   uuid.UUID    `gorm:"type:uuid;primaryKey"`
	SenderID             uuid.UUID    `gorm:"type:uuid;not null;index"`
	DeliverID            *uuid.UUID   `gorm:"type:uuid;index"`
	StartLatitude        float64      `gorm:"type:double precision;not null"`
	StartLongitude       float64      `gorm:"type:double precision;not null"`
	DestinationLatitude  float64      `gorm:"type:double precision;not null"`
	DestinationLongitude float64      `gorm:"type:double precision;not null"`
	Status               string       `gorm:"type:varchar(32);not null;index"`
	CreatedAt            time.Time    `gorm:"not null"`
	Products             []ProductDTO `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
}

func (PackageDTO) TableName() string {
	return "packages"
}

// ProductDTO is one priced item of a package.
type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Price     int64     `gorm:"type:bigint;not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func toDomain(dto PackageDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	var deliverID *kernel.UUID
	if dto.DeliverID != nil {
		d, deliverErr := kernel.UUIDFromBytes((*dto.DeliverID)[:])
		if deliverErr != nil {
			return nil, deliverErr
		}
		deliverID = &d
	}

	pickup, err := kernel.NewGeoPoint(dto.StartLatitude, dto.StartLongitude)
	if err != nil {
		return nil, err
	}

	dropOff, err := kernel.NewGeoPoint(dto.DestinationLatitude, dto.DestinationLongitude)
	if err != nil {
		return nil, err
	}

	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	products := make([]parcel.Product, 0, len(dto.Products))
	for _, pDto := range dto.Products {
		p, productErr := productToDomain(pDto)
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, p)
	}

	return parcel.NewParcel(id, senderID, deliverID, pickup, dropOff, products, status)
}

func productToDomain(dto ProductDTO) (parcel.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return parcel.Product{}, err
	}
	return parcel.NewProduct(id, dto.Name, dto.Price)
}

// StatusNames converts statuses to their persisted names for pq.Array binding.
func StatusNames(statuses []parcel.Status) []string {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}
