package ports

import "context"

// SnapshotFactory creates a new Snapshot for each request.
type SnapshotFactory interface {
	Create() Snapshot
}

// Snapshot is a read-only transaction boundary. Repositories obtained after Begin see one
// consistent view of the data until Close.
//
// Example:
//
//	snap := factory.Create()
//	if err := snap.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = snap.Close(ctx) }()
//
//	c, err := snap.CourierRepository().GetWithProfile(ctx, id)
type Snapshot interface {
	// Begin opens the read-only transaction.
	Begin(ctx context.Context) error

	// Close ends the transaction. Nothing is ever written, so closing discards nothing.
	Close(ctx context.Context) error

	CourierRepository() CourierRepository
	RouteRepository() RouteRepository
	ParcelRepository() ParcelRepository
	BalanceRepository() BalanceRepository
	SettingsRepository() SettingsRepository
}
