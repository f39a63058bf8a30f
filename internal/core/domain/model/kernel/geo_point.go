package kernel

import (
	"errors"
	"fmt"
	"math"

	"shipconvenient/internal/pkg/errs"
	"shipconvenient/internal/pkg/guard"
)

const (
	// LatitudeMin and LatitudeMax bound a valid WGS 84 latitude in degrees.
	LatitudeMin = -90.0
	LatitudeMax = 90.0
	// LongitudeMin and LongitudeMax bound a valid WGS 84 longitude in degrees.
	LongitudeMin = -180.0
	LongitudeMax = 180.0

	// earthRadiusMeters is the mean Earth radius used by haversine and the planar projection.
	earthRadiusMeters = 6371000.0
)

// ErrGeoPointIsNotConstructed is returned when a zero-value GeoPoint is used.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable WGS 84 coordinate. Route points, parcel pickups and drop-offs and
// the waypoints sent to the routing oracle are all GeoPoints.
//
// Example:
//
//	p, err := kernel.NewGeoPoint(10.7769, 106.7009)
//	if err != nil {
//	    // latitude or longitude out of range
//	}
//	fmt.Println(p) // GeoPoint(10.776900,106.700900)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint validates latitude in [LatitudeMin..LatitudeMax] and longitude in
// [LongitudeMin..LongitudeMax]. NaN values are rejected as out of range.
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	p := GeoPoint{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setLat(lat), p.setLon(lon)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate reports whether the point was built by NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lon)
}

// IsEqual compares coordinates exactly.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lon == other.lon
}

// DistanceTo returns the great-circle (haversine) distance in meters.
//
// Example:
//
//	a, _ := kernel.NewGeoPoint(10.7700, 106.7000)
//	b, _ := kernel.NewGeoPoint(10.7800, 106.7000)
//	d := a.DistanceTo(b) // ~1112 m
func (p GeoPoint) DistanceTo(other GeoPoint) float64 {
	lat1 := toRadians(p.lat)
	lat2 := toRadians(other.lat)
	dLat := toRadians(other.lat - p.lat)
	dLon := toRadians(other.lon - p.lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

// project maps p onto a local equirectangular plane (meters) centred on origin.
// Accurate enough for the few-kilometre spans a courier route covers.
func (p GeoPoint) project(origin GeoPoint) (x, y float64) {
	x = toRadians(p.lon-origin.lon) * math.Cos(toRadians(origin.lat)) * earthRadiusMeters
	y = toRadians(p.lat-origin.lat) * earthRadiusMeters
	return x, y
}

func (p *GeoPoint) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLon(lon float64) error {
	if math.IsNaN(lon) || lon < LongitudeMin || lon > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lon, LongitudeMin, LongitudeMax)
	}
	p.lon = lon
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
