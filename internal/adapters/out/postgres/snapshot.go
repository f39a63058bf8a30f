// Package postgres provides the read-only snapshot that scopes every repository read of a
// suggestion request to one REPEATABLE READ transaction.
//
// Usage:
//
//	factory := postgres.NewGormSnapshotFactory(db, configrepo.StandardDefaults, cache)
//	snap := factory.Create()
//	if err := snap.Begin(ctx); err != nil {
//	    return err
//	}
//	defer snap.Close(ctx)
//
//	courier, err := snap.CourierRepository().GetWithProfile(ctx, id)
//
// Each Snapshot instance owns one transaction and must not be shared between goroutines.
package postgres

import (
	"context"
	"database/sql"

	"shipconvenient/internal/adapters/out/postgres/balancerepo"
	"shipconvenient/internal/adapters/out/postgres/configrepo"
	"shipconvenient/internal/adapters/out/postgres/courierrepo"
	"shipconvenient/internal/adapters/out/postgres/parcelrepo"
	"shipconvenient/internal/adapters/out/postgres/routerepo"
	"shipconvenient/internal/core/ports"

	"gorm.io/gorm"
)

// GormSnapshotFactory creates Snapshots over one GORM connection pool.
type GormSnapshotFactory struct {
	db       *gorm.DB
	defaults configrepo.Defaults
	maxCount *configrepo.MaxSuggestCountCache
}

// NewGormSnapshotFactory wires settings defaults and an optional max suggest count cache
// into every Snapshot it creates. A nil cache reads MAX_SUGGEST_COMBO on every request.
func NewGormSnapshotFactory(
	db *gorm.DB,
	defaults configrepo.Defaults,
	maxCount *configrepo.MaxSuggestCountCache,
) *GormSnapshotFactory {
	return &GormSnapshotFactory{db: db, defaults: defaults, maxCount: maxCount}
}

func (f *GormSnapshotFactory) Create() ports.Snapshot {
	return &GormSnapshot{
		db:       f.db,
		defaults: f.defaults,
		maxCount: f.maxCount,
	}
}

// GormSnapshot is a read-only transaction. Repositories obtained before Begin read outside
// any transaction.
type GormSnapshot struct {
	db       *gorm.DB
	tx       *gorm.DB
	defaults configrepo.Defaults
	maxCount *configrepo.MaxSuggestCountCache
}

// Begin opens a REPEATABLE READ, READ ONLY transaction. Calling it twice is a no-op.
func (s *GormSnapshot) Begin(ctx context.Context) error {
	if s.tx != nil {
		return nil
	}

	tx := s.db.WithContext(ctx).Begin(&sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if tx.Error != nil {
		return tx.Error
	}

	s.tx = tx
	return nil
}

// Close rolls the transaction back. Returns gorm.ErrInvalidTransaction if none is open.
func (s *GormSnapshot) Close(_ context.Context) error {
	if s.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := s.tx.Rollback().Error
	s.tx = nil
	return err
}

func (s *GormSnapshot) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(s.conn())
}

func (s *GormSnapshot) RouteRepository() ports.RouteRepository {
	return routerepo.NewGormRouteRepository(s.conn())
}

func (s *GormSnapshot) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(s.conn())
}

func (s *GormSnapshot) BalanceRepository() ports.BalanceRepository {
	return balancerepo.NewGormBalanceRepository(s.conn())
}

// SettingsRepository serves the global max suggest count from the cache when one is set.
func (s *GormSnapshot) SettingsRepository() ports.SettingsRepository {
	settings := configrepo.NewGormSettingsRepository(s.conn(), s.defaults)
	if s.maxCount == nil {
		return settings
	}
	return configrepo.NewCachedSettings(settings, s.maxCount)
}

func (s *GormSnapshot) conn() *gorm.DB {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}
