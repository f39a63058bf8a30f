package configrepo

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/domain/model/route"

	"gorm.io/gorm"
)

// Defaults replace settings that are missing or cannot be parsed.
type Defaults struct {
	// SpacingTolerance is in meters.
	SpacingTolerance float64
	DirectionMode    route.DirectionMode
	MaxSuggestCount  int
}

// StandardDefaults are used when the configuration does not override them.
var StandardDefaults = Defaults{
	SpacingTolerance: 2000,
	DirectionMode:    route.TwoWayMode,
	MaxSuggestCount:  10,
}

// GormSettingsRepository implements ports.SettingsRepository using GORM.
type GormSettingsRepository struct {
	db       *gorm.DB
	defaults Defaults
}

func NewGormSettingsRepository(db *gorm.DB, defaults Defaults) *GormSettingsRepository {
	return &GormSettingsRepository{db: db, defaults: defaults}
}

// GetSpacingTolerance reads PACKAGE_DISTANCE. Values must be finite and non-negative.
func (r *GormSettingsRepository) GetSpacingTolerance(ctx context.Context, profileID kernel.UUID) (float64, error) {
	raw, ok, err := r.profileValue(ctx, profileID, PackageDistance)
	if err != nil || !ok {
		return r.defaults.SpacingTolerance, err
	}

	v, parseErr := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if parseErr != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return r.defaults.SpacingTolerance, nil
	}
	return v, nil
}

// GetDirectionMode reads DIRECTION_SUGGEST: FORWARD, BACKWARD or TWO_WAY.
func (r *GormSettingsRepository) GetDirectionMode(
	ctx context.Context,
	profileID kernel.UUID,
) (route.DirectionMode, error) {
	raw, ok, err := r.profileValue(ctx, profileID, DirectionSuggest)
	if err != nil || !ok {
		return r.defaults.DirectionMode, err
	}

	mode, parseErr := route.ParseDirectionMode(raw)
	if parseErr != nil {
		return r.defaults.DirectionMode, nil
	}
	return mode, nil
}

// GetMaxSuggestCount reads the global MAX_SUGGEST_COMBO.
func (r *GormSettingsRepository) GetMaxSuggestCount(ctx context.Context) (int, error) {
	var dto ConfigDTO
	err := r.db.WithContext(ctx).Where("name = ?", MaxSuggestCombo).First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.defaults.MaxSuggestCount, nil
		}
		return r.defaults.MaxSuggestCount, err
	}

	v, parseErr := strconv.Atoi(strings.TrimSpace(dto.Value))
	if parseErr != nil || v < 0 {
		return r.defaults.MaxSuggestCount, nil
	}
	return v, nil
}

func (r *GormSettingsRepository) profileValue(
	ctx context.Context,
	profileID kernel.UUID,
	name string,
) (string, bool, error) {
	if err := profileID.Validate(); err != nil {
		return "", false, err
	}

	var dto ConfigUserDTO
	err := r.db.WithContext(ctx).
		Where("info_user_id = ? AND name = ?", profileID.Bytes(), name).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	return dto.Value, true, nil
}
