package parcel

import (
	"errors"
	"math"
	"slices"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/pkg/errs"
	"shipconvenient/internal/pkg/guard"
)

var ErrParcelIsNotConstructed = errs.NewValueIsRequiredError(
	"parcel must be created via NewParcel constructor")

// StopKind tells a pickup stop from a drop-off stop.
type StopKind int

const (
	Pickup StopKind = iota + 1
	DropOff
)

func (k StopKind) String() string {
	if k == Pickup {
		return "pickup"
	}
	return "drop-off"
}

// Stop is a place a courier has to visit for a parcel.
type Stop struct {
	ParcelID kernel.UUID
	Kind     StopKind
	Location kernel.GeoPoint
}

// Parcel is a delivery package from a sender's pickup point to a drop-off point.
//
// Example:
//
//	p, err := parcel.NewParcel(id, senderID, nil, pickup, dropOff, products, parcel.Approved)
//	if err != nil {
//	    // invalid coordinates, products or status
//	}
//	fmt.Println(p.TotalPrice())
type Parcel struct {
	id        kernel.UUID
	senderID  kernel.UUID
	deliverID *kernel.UUID
	pickup    kernel.GeoPoint
	dropOff   kernel.GeoPoint
	products  []Product
	status    Status
	guard     guard.ConstructorGuard
}

// NewParcel validates identities, coordinates and status. deliverID is the assigned
// courier and may be nil.
func NewParcel(
	id kernel.UUID,
	senderID kernel.UUID,
	deliverID *kernel.UUID,
	pickup kernel.GeoPoint,
	dropOff kernel.GeoPoint,
	products []Product,
	status Status,
) (*Parcel, error) {
	p := &Parcel{products: slices.Clone(products), guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setSenderID(senderID),
		p.setDeliverID(deliverID),
		p.setPickup(pickup),
		p.setDropOff(dropOff),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func (p *Parcel) ID() kernel.UUID {
	return p.id
}

func (p *Parcel) SenderID() kernel.UUID {
	return p.senderID
}

func (p *Parcel) DeliverID() *kernel.UUID {
	if p.deliverID == nil {
		return nil
	}
	id := *p.deliverID
	return &id
}

func (p *Parcel) Pickup() kernel.GeoPoint {
	return p.pickup
}

func (p *Parcel) DropOff() kernel.GeoPoint {
	return p.dropOff
}

func (p *Parcel) Products() []Product {
	return slices.Clone(p.products)
}

func (p *Parcel) Status() Status {
	return p.status
}

// IsSentBy reports whether accountID authored the parcel.
func (p *Parcel) IsSentBy(accountID kernel.UUID) bool {
	return p.senderID.IsEqual(accountID)
}

// TotalPrice sums the prices of all products, saturating at math.MaxInt64.
func (p *Parcel) TotalPrice() int64 {
	var total int64
	for _, pr := range p.products {
		if pr.price > math.MaxInt64-total {
			return math.MaxInt64
		}
		total += pr.price
	}
	return total
}

// RemainingStops lists what the courier still has to visit: pickup then drop-off, or only the
// drop-off once the parcel was picked up.
func (p *Parcel) RemainingStops() []Stop {
	dropOff := Stop{ParcelID: p.id, Kind: DropOff, Location: p.dropOff}
	if p.status.IsPickedUp() {
		return []Stop{dropOff}
	}
	return []Stop{{ParcelID: p.id, Kind: Pickup, Location: p.pickup}, dropOff}
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcel id", err)
	}
	p.id = id
	return nil
}

func (p *Parcel) setSenderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sender id", err)
	}
	p.senderID = id
	return nil
}

func (p *Parcel) setDeliverID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliver id", err)
	}
	cp := *id
	p.deliverID = &cp
	return nil
}

func (p *Parcel) setPickup(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup location", err)
	}
	p.pickup = location
	return nil
}

func (p *Parcel) setDropOff(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("drop-off location", err)
	}
	p.dropOff = location
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
