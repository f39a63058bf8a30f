package parcel

import (
	"fmt"
	"strings"

	"shipconvenient/internal/pkg/errs"
)

// Status is the lifecycle state of a parcel.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Created
	Approved
	Selected
	PickupSuccess
	DeliverySuccess
	Rejected
	PickupFailed
	DeliveryFailed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		Created:         "CREATED",
		Approved:        "APPROVED",
		Selected:        "SELECTED",
		PickupSuccess:   "PICKUP_SUCCESS",
		DeliverySuccess: "DELIVERY_SUCCESS",
		Rejected:        "REJECTED",
		PickupFailed:    "PICKUP_FAILED",
		DeliveryFailed:  "DELIVERY_FAILED",
		Cancelled:       "CANCELLED",
	}
}

// InFlightStatuses are the statuses of parcels a courier has committed to.
func InFlightStatuses() []Status {
	return []Status{Selected, PickupSuccess}
}

// ParseStatus maps a persisted status name back to a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for st, str := range getStatusStrings() {
		if st != Unknown && str == name {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a parcel status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsInFlight reports whether a courier currently carries or is about to collect the parcel.
func (s Status) IsInFlight() bool {
	return s == Selected || s == PickupSuccess
}

// IsCandidate reports whether the parcel may be suggested to a courier.
func (s Status) IsCandidate() bool {
	return s == Approved
}

// IsPickedUp reports whether only the drop-off leg remains.
func (s Status) IsPickedUp() bool {
	return s == PickupSuccess
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	switch s {
	case DeliverySuccess, Rejected, PickupFailed, DeliveryFailed, Cancelled:
		return true
	case Unknown, Created, Approved, Selected, PickupSuccess:
	}
	return false
}
