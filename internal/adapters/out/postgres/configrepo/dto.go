// Package configrepo reads suggestion settings: per-profile values from config_users and
// global values from configs. Absent or unreadable values fall back to Defaults.
package configrepo

import "github.com/google/uuid"

// Setting names as stored in the name column.
const (
	PackageDistance  = "PACKAGE_DISTANCE"
	DirectionSuggest = "DIRECTION_SUGGEST"
	MaxSuggestCombo  = "MAX_SUGGEST_COMBO"
)

// ConfigUserDTO is one per-profile setting.
type ConfigUserDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	InfoUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_config_users_profile_name"`
	Name       string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_config_users_profile_name"`
	Value      string    `gorm:"type:varchar(255);not null"`
}

func (ConfigUserDTO) TableName() string {
	return "config_users"
}

// ConfigDTO is one global setting.
type ConfigDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Value string    `gorm:"type:varchar(255);not null"`
}

func (ConfigDTO) TableName() string {
	return "configs"
}
