package ports

import (
	"context"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/domain/model/route"
)

// SettingsRepository reads per-courier and global suggestion settings. Missing values are
// replaced by configured defaults, never reported as errors.
type SettingsRepository interface {
	// GetSpacingTolerance is the profile's spacing tolerance in meters.
	GetSpacingTolerance(ctx context.Context, profileID kernel.UUID) (float64, error)

	// GetDirectionMode is the profile's preferred suggestion direction.
	GetDirectionMode(ctx context.Context, profileID kernel.UUID) (route.DirectionMode, error)

	// GetMaxSuggestCount is the global cap on suggestions per call.
	GetMaxSuggestCount(ctx context.Context) (int, error)
}
