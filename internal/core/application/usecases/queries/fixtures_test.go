package queries_test

import (
	"context"
	"log/slog"
	"testing"

	"shipconvenient/internal/core/application/usecases/queries"
	"shipconvenient/internal/core/domain/model/courier"
	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/domain/model/kernel/kerneltest"
	"shipconvenient/internal/core/domain/model/parcel"
	"shipconvenient/internal/core/domain/model/route"
	"shipconvenient/internal/core/ports"
	"shipconvenient/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// The courier's route runs east along latitude 10.77 for about 2185 m and back. Parcels
// offset by 0.001 degree latitude sit about 111 m from it, inside the 120 m proximity
// tolerance derived from a 200 m spacing.
var (
	home   = kerneltest.GeoPoint(10.77, 106.70)
	middle = kerneltest.GeoPoint(10.77, 106.71)
	office = kerneltest.GeoPoint(10.77, 106.72)

	eastPickup  = kerneltest.GeoPoint(10.771, 106.705)
	eastDropOff = kerneltest.GeoPoint(10.771, 106.715)
	farPickup   = kerneltest.GeoPoint(10.78, 106.705)
)

const spacing = 200.0

type env struct {
	t         *testing.T
	ctx       context.Context
	snap      *MockSnapshot
	factory   *MockSnapshotFactory
	oracle    *MockRoutingOracle
	courier   *courier.Courier
	profileID kernel.UUID
	route     *route.Route
	points    route.Points
}

func newEnv(t *testing.T) *env {
	t.Helper()

	profile, err := courier.NewProfile(kernel.NewUUID(), "Le Van C", "")
	require.NoError(t, err)
	c, err := courier.NewCourier(kernel.NewUUID(), "levanc", &profile)
	require.NoError(t, err)
	r, err := route.NewRoute(kernel.NewUUID(), profile.ID(), home, office, 1000, 500, true)
	require.NoError(t, err)

	e := &env{
		t:         t,
		ctx:       t.Context(),
		snap:      newMockSnapshot(),
		factory:   new(MockSnapshotFactory),
		oracle:    new(MockRoutingOracle),
		courier:   c,
		profileID: profile.ID(),
		route:     r,
	}
	e.points = route.Points{
		e.point(0, route.Forward, home, false),
		e.point(1, route.Forward, middle, true),
		e.point(2, route.Forward, office, false),
		e.point(0, route.Backward, office, false),
		e.point(1, route.Backward, middle, true),
		e.point(2, route.Backward, home, false),
	}
	return e
}

func (e *env) point(index int, d route.DirectionType, at kernel.GeoPoint, virtual bool) route.Point {
	p, err := route.NewPoint(kernel.NewUUID(), index, d, at, virtual)
	require.NoError(e.t, err)
	return p
}

func (e *env) parcel(from, to kernel.GeoPoint, status parcel.Status, prices ...int64) *parcel.Parcel {
	products := make([]parcel.Product, 0, len(prices))
	for _, price := range prices {
		pr, err := parcel.NewProduct(kernel.NewUUID(), "item", price)
		require.NoError(e.t, err)
		products = append(products, pr)
	}
	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), nil, from, to, products, status)
	require.NoError(e.t, err)
	return p
}

func (e *env) handler() queries.SuggestParcelsQueryHandler {
	return e.handlerWith(queries.SuggestParcelsHandlerConfig{})
}

func (e *env) handlerWith(cfg queries.SuggestParcelsHandlerConfig) queries.SuggestParcelsQueryHandler {
	return queries.NewSuggestParcelsQueryHandler(e.factory, e.oracle, cfg, slog.New(slog.DiscardHandler))
}

func (e *env) expectSnapshot() {
	e.factory.On("Create").Return(e.snap)
	e.snap.On("Begin", e.ctx).Return(nil)
	e.snap.On("Close", e.ctx).Return(nil)
}

func (e *env) expectCourier() {
	e.snap.couriers.On("GetWithProfile", e.ctx, e.courier.ID()).Return(e.courier, nil)
}

func (e *env) expectInFlight(parcels ...*parcel.Parcel) {
	e.snap.parcels.On("GetInFlight", e.ctx, e.courier.ID()).Return(parcels, nil)
}

func (e *env) expectSettings(mode route.DirectionMode, maxCount int) {
	e.snap.settings.On("GetSpacingTolerance", e.ctx, e.profileID).Return(spacing, nil)
	e.snap.settings.On("GetDirectionMode", e.ctx, e.profileID).Return(mode, nil)
	e.snap.settings.On("GetMaxSuggestCount", e.ctx).Return(maxCount, nil)
}

func (e *env) expectRoute(declaredOnly bool) {
	e.snap.routes.On("GetActive", e.ctx, e.profileID).Return(e.route, nil)
	e.snap.routes.On("GetPoints", e.ctx, e.route.ID(), ports.PointFilter{}).Return(e.points, nil)
	if declaredOnly {
		declared := false
		e.snap.routes.On("GetPoints", e.ctx, e.route.ID(), ports.PointFilter{Virtual: &declared}).
			Return(e.points.Filter(&declared, route.TwoWayMode), nil)
	}
}

func (e *env) expectNoRoute() {
	e.snap.routes.On("GetActive", e.ctx, e.profileID).
		Return(nil, errs.NewObjectNotFoundError("route", e.profileID.String()))
}

func (e *env) expectCandidates(parcels ...*parcel.Parcel) {
	e.snap.parcels.On("GetApproved", e.ctx, e.courier.ID()).Return(parcels, nil)
}

func (e *env) expectBalance(balance int64) {
	e.snap.balances.On("GetAvailableBalance", e.ctx, e.courier.ID()).Return(balance, nil)
}

// expectOracle answers for trips that visit through.
func (e *env) expectOracle(through kernel.GeoPoint, distance float64) *mock.Call {
	return e.oracle.On("GetDistanceAlternatives", mock.Anything, mock.MatchedBy(visits(through))).
		Return([]ports.RouteAlternative{{Distance: &distance}}, nil)
}

func (e *env) assertAll() {
	e.t.Helper()
	e.factory.AssertExpectations(e.t)
	e.snap.AssertExpectations(e.t)
	e.snap.couriers.AssertExpectations(e.t)
	e.snap.routes.AssertExpectations(e.t)
	e.snap.parcels.AssertExpectations(e.t)
	e.snap.balances.AssertExpectations(e.t)
	e.snap.settings.AssertExpectations(e.t)
	e.oracle.AssertExpectations(e.t)
}

func visits(p kernel.GeoPoint) func([]kernel.GeoPoint) bool {
	return func(points []kernel.GeoPoint) bool {
		for _, q := range points {
			if q.IsEqual(p) {
				return true
			}
		}
		return false
	}
}

func sameWaypoints(want ...kernel.GeoPoint) func([]kernel.GeoPoint) bool {
	return func(got []kernel.GeoPoint) bool {
		if len(got) != len(want) {
			return false
		}
		for i := range want {
			if !want[i].IsEqual(got[i]) {
				return false
			}
		}
		return true
	}
}

func parcelIDs(suggestions []queries.SuggestedParcel) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(suggestions))
	for _, s := range suggestions {
		ids = append(ids, s.Parcel.ID())
	}
	return ids
}
