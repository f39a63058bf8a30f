// Package kerneltest holds fixtures for tests that need kernel value objects built from literals.
package kerneltest

import "shipconvenient/internal/core/domain/model/kernel"

// GeoPoint builds a point from coordinates known to be valid. It panics otherwise.
func GeoPoint(lat, lon float64) kernel.GeoPoint {
	p, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		panic(err)
	}
	return p
}
