package services

import (
	"errors"
	"math"

	"shipconvenient/internal/pkg/errs"
)

const (
	// DefaultProximityRatio scales the spacing tolerance for the geometric pre-filter.
	DefaultProximityRatio = 0.6
	// DefaultBudgetRatio scales the spacing tolerance for the oracle-backed budget check.
	DefaultBudgetRatio = 1.0

	maxToleranceRatio = 10.0
)

// SuggestionTolerances turns a courier's spacing tolerance into the two thresholds the
// engine uses. The zero value behaves like DefaultSuggestionTolerances.
type SuggestionTolerances struct {
	proximityRatio float64
	budgetRatio    float64
}

// NewSuggestionTolerances validates both ratios in (0..10].
func NewSuggestionTolerances(proximityRatio, budgetRatio float64) (SuggestionTolerances, error) {
	var errProximity, errBudget error
	if math.IsNaN(proximityRatio) || proximityRatio <= 0 || proximityRatio > maxToleranceRatio {
		errProximity = errs.NewValueIsOutOfRangeError("proximity ratio", proximityRatio, 0, maxToleranceRatio)
	}
	if math.IsNaN(budgetRatio) || budgetRatio <= 0 || budgetRatio > maxToleranceRatio {
		errBudget = errs.NewValueIsOutOfRangeError("budget ratio", budgetRatio, 0, maxToleranceRatio)
	}
	if err := errors.Join(errProximity, errBudget); err != nil {
		return SuggestionTolerances{}, err
	}

	return SuggestionTolerances{proximityRatio: proximityRatio, budgetRatio: budgetRatio}, nil
}

func DefaultSuggestionTolerances() SuggestionTolerances {
	return SuggestionTolerances{proximityRatio: DefaultProximityRatio, budgetRatio: DefaultBudgetRatio}
}

func (t SuggestionTolerances) ProximityRatio() float64 {
	if t.proximityRatio == 0 {
		return DefaultProximityRatio
	}
	return t.proximityRatio
}

func (t SuggestionTolerances) BudgetRatio() float64 {
	if t.budgetRatio == 0 {
		return DefaultBudgetRatio
	}
	return t.budgetRatio
}

// Proximity is the lateral distance, in meters, a stop may sit from the route polyline.
func (t SuggestionTolerances) Proximity(spacing float64) float64 {
	return spacing * t.ProximityRatio()
}

// Budget is the tolerance added to the committed distance when checking an extension.
func (t SuggestionTolerances) Budget(spacing float64) float64 {
	return spacing * t.BudgetRatio()
}
