package ports

import (
	"context"

	"shipconvenient/internal/core/domain/model/kernel"
)

// BalanceRepository exposes what a courier can still spend on new parcels.
type BalanceRepository interface {
	// GetAvailableBalance is the account balance minus the price of the courier's
	// in-flight parcels. It may be negative.
	GetAvailableBalance(ctx context.Context, courierID kernel.UUID) (int64, error)
}
