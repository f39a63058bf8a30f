// Package balancerepo computes what a courier may still spend on new parcels.
package balancerepo

import (
	"context"
	"database/sql"
	"errors"

	"shipconvenient/internal/adapters/out/postgres/parcelrepo"
	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/domain/model/parcel"
	"shipconvenient/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// availableBalanceSQL subtracts the product prices of every in-flight parcel the courier
// carries from the account balance.
const availableBalanceSQL = `
SELECT (a.balance - COALESCE((
	SELECT SUM(pr.price)
	FROM packages p
	JOIN products pr ON pr.package_id = p.id
	WHERE p.deliver_id = a.id AND p.status = ANY(?)
), 0))::bigint AS available
FROM accounts a
WHERE a.id = ?`

// GormBalanceRepository implements ports.BalanceRepository using GORM.
type GormBalanceRepository struct {
	db *gorm.DB
}

func NewGormBalanceRepository(db *gorm.DB) *GormBalanceRepository {
	return &GormBalanceRepository{db: db}
}

// GetAvailableBalance returns ObjectNotFoundError when the account does not exist.
func (r *GormBalanceRepository) GetAvailableBalance(ctx context.Context, courierID kernel.UUID) (int64, error) {
	if err := courierID.Validate(); err != nil {
		return 0, err
	}

	var available int64
	row := r.db.WithContext(ctx).Raw(availableBalanceSQL,
		pq.Array(parcelrepo.StatusNames(parcel.InFlightStatuses())),
		courierID.Bytes(),
	).Row()
	if err := row.Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errs.NewObjectNotFoundError("account", courierID.String())
		}
		return 0, err
	}

	return available, nil
}
