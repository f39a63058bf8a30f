// Package parcel models the delivery packages a courier can be offered.
//
// A parcel moves through the lifecycle
//
//	Created ──> Approved ──> Selected ──> PickupSuccess ──> DeliverySuccess
//	   │           │            │              │
//	   └─> Rejected└─> Cancelled└─> PickupFailed└─> DeliveryFailed
//
// Approved parcels are candidates for suggestion. Selected and PickupSuccess parcels are in
// flight: a courier has committed to them.
package parcel
