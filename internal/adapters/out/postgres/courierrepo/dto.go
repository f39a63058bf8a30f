// Package courierrepo reads courier accounts and their InfoUser profiles.
package courierrepo

import (
	"shipconvenient/internal/core/domain/model/courier"
	"shipconvenient/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO is a row of the accounts table. Balance is read by balancerepo.
type AccountDTO struct {
	ID       uuid.UUID    `gorm:"type:uuid;primaryKey"`
	UserName string       `gorm:"type:varchar(255);not null"`
	Balance  int64        `gorm:"type:bigint;not null;default:0"`
	InfoUser *InfoUserDTO `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

func (AccountDTO) TableName() string {
	return "accounts"
}

// InfoUserDTO is the profile linked one-to-one to an account.
type InfoUserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	FullName  string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(32)"`
}

func (InfoUserDTO) TableName() string {
	return "info_users"
}

// toDomain rebuilds the courier. A missing InfoUser row yields a courier without profile.
func toDomain(dto AccountDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var profile *courier.Profile
	if dto.InfoUser != nil {
		p, profileErr := profileToDomain(*dto.InfoUser)
		if profileErr != nil {
			return nil, profileErr
		}
		profile = &p
	}

	return courier.NewCourier(id, dto.UserName, profile)
}

func profileToDomain(dto InfoUserDTO) (courier.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return courier.Profile{}, err
	}
	return courier.NewProfile(id, dto.FullName, dto.Phone)
}
