package queries_test

import (
	"context"

	"shipconvenient/internal/core/domain/model/courier"
	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/domain/model/parcel"
	"shipconvenient/internal/core/domain/model/route"
	"shipconvenient/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) GetWithProfile(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) GetActive(ctx context.Context, profileID kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) GetPoints(
	ctx context.Context,
	routeID kernel.UUID,
	filter ports.PointFilter,
) (route.Points, error) {
	args := m.Called(ctx, routeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(route.Points), args.Error(1)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) GetInFlight(ctx context.Context, courierID kernel.UUID) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetApproved(ctx context.Context, excludingSender kernel.UUID) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, excludingSender)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockBalanceRepository struct{ mock.Mock }

func (m *MockBalanceRepository) GetAvailableBalance(ctx context.Context, courierID kernel.UUID) (int64, error) {
	args := m.Called(ctx, courierID)
	return args.Get(0).(int64), args.Error(1)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) GetSpacingTolerance(ctx context.Context, profileID kernel.UUID) (float64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockSettingsRepository) GetDirectionMode(
	ctx context.Context,
	profileID kernel.UUID,
) (route.DirectionMode, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(route.DirectionMode), args.Error(1)
}

func (m *MockSettingsRepository) GetMaxSuggestCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockRoutingOracle struct{ mock.Mock }

func (m *MockRoutingOracle) GetDistanceAlternatives(
	ctx context.Context,
	points []kernel.GeoPoint,
) ([]ports.RouteAlternative, error) {
	args := m.Called(ctx, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.RouteAlternative), args.Error(1)
}

type MockSnapshot struct {
	mock.Mock
	couriers *MockCourierRepository
	routes   *MockRouteRepository
	parcels  *MockParcelRepository
	balances *MockBalanceRepository
	settings *MockSettingsRepository
}

func newMockSnapshot() *MockSnapshot {
	return &MockSnapshot{
		couriers: new(MockCourierRepository),
		routes:   new(MockRouteRepository),
		parcels:  new(MockParcelRepository),
		balances: new(MockBalanceRepository),
		settings: new(MockSettingsRepository),
	}
}

func (m *MockSnapshot) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSnapshot) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSnapshot) CourierRepository() ports.CourierRepository   { return m.couriers }
func (m *MockSnapshot) RouteRepository() ports.RouteRepository       { return m.routes }
func (m *MockSnapshot) ParcelRepository() ports.ParcelRepository     { return m.parcels }
func (m *MockSnapshot) BalanceRepository() ports.BalanceRepository   { return m.balances }
func (m *MockSnapshot) SettingsRepository() ports.SettingsRepository { return m.settings }

type MockSnapshotFactory struct{ mock.Mock }

func (m *MockSnapshotFactory) Create() ports.Snapshot {
	args := m.Called()
	return args.Get(0).(ports.Snapshot)
}
