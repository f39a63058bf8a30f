package services_test

import (
	"testing"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/domain/model/kernel/kerneltest"
	"shipconvenient/internal/core/domain/model/parcel"
	"shipconvenient/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The test route runs east along latitude 10.77 for about 2185 m. A 0.001 degree latitude
// offset is about 111 m.
var (
	home   = kerneltest.GeoPoint(10.77, 106.70)
	middle = kerneltest.GeoPoint(10.77, 106.71)
	office = kerneltest.GeoPoint(10.77, 106.72)
)

func newRoute(t *testing.T, distanceForward, distanceBackward float64) *route.Route {
	t.Helper()
	r, err := route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), home, office, distanceForward, distanceBackward, true)
	require.NoError(t, err)
	return r
}

func newPoint(t *testing.T, index int, d route.DirectionType, at kernel.GeoPoint, virtual bool) route.Point {
	t.Helper()
	p, err := route.NewPoint(kernel.NewUUID(), index, d, at, virtual)
	require.NoError(t, err)
	return p
}

// twoWayPoints declares home, middle, office going out and the reverse coming back.
func twoWayPoints(t *testing.T) route.Points {
	t.Helper()
	return route.Points{
		newPoint(t, 0, route.Forward, home, false),
		newPoint(t, 1, route.Forward, middle, true),
		newPoint(t, 2, route.Forward, office, false),
		newPoint(t, 0, route.Backward, office, false),
		newPoint(t, 1, route.Backward, middle, true),
		newPoint(t, 2, route.Backward, home, false),
	}
}

func newParcel(t *testing.T, from, to kernel.GeoPoint, status parcel.Status, prices ...int64) *parcel.Parcel {
	t.Helper()
	products := make([]parcel.Product, 0, len(prices))
	for _, price := range prices {
		pr, err := parcel.NewProduct(kernel.NewUUID(), "item", price)
		require.NoError(t, err)
		products = append(products, pr)
	}
	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), nil, from, to, products, status)
	require.NoError(t, err)
	return p
}

func assertPoints(t *testing.T, want, got []kernel.GeoPoint) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].IsEqual(got[i]), "waypoint %d: want %s, got %s", i, want[i], got[i])
	}
}
