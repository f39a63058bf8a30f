// Package queries contains the read operations of the suggestion engine.
// Implements the Query pattern for read operations in the CQRS architecture: nothing here
// writes, every lookup runs inside one read-only snapshot.
package queries

import (
	"errors"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/domain/model/parcel"
	"shipconvenient/internal/pkg/errs"
	"shipconvenient/internal/pkg/guard"
)

var (
	ErrSuggestParcelsQueryIsNotConstructed = errors.New(
		"SuggestParcelsQuery must be created via NewSuggestParcelsQuery constructor",
	)
	ErrSuggestParcelsV2QueryIsNotConstructed = errors.New(
		"SuggestParcelsV2Query must be created via NewSuggestParcelsV2Query constructor",
	)
)

// SuggestParcelsQuery asks for parcels a courier could add to the current trip. The handler
// picks the first or second suggestion path from the courier's in-flight parcels.
//
// Example:
//
//	query, err := NewSuggestParcelsQuery(courierID)
//	if err != nil {
//	    return err
//	}
//	suggestions, err := handler.Handle(ctx, query)
type SuggestParcelsQuery struct {
	courierID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewSuggestParcelsQuery(courierID kernel.UUID) (SuggestParcelsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return SuggestParcelsQuery{}, errs.NewValueIsRequiredErrorWithCause("courier id", err)
	}

	return SuggestParcelsQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q SuggestParcelsQuery) Validate() error {
	return q.guard.Validate(ErrSuggestParcelsQueryIsNotConstructed)
}

func (q SuggestParcelsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// SuggestParcelsV2Query is the general form: any number of committed parcels. With a nil
// committed list the courier's in-flight parcels are used; a non-nil empty list means the
// courier has committed to nothing.
type SuggestParcelsV2Query struct {
	courierID    kernel.UUID
	committed    []kernel.UUID
	hasCommitted bool
	guard        guard.ConstructorGuard
}

// NewSuggestParcelsV2Query validates ids and drops duplicates, keeping first occurrences.
func NewSuggestParcelsV2Query(courierID kernel.UUID, committed []kernel.UUID) (SuggestParcelsV2Query, error) {
	if err := courierID.Validate(); err != nil {
		return SuggestParcelsV2Query{}, errs.NewValueIsRequiredErrorWithCause("courier id", err)
	}

	q := SuggestParcelsV2Query{
		courierID:    courierID,
		committed:    make([]kernel.UUID, 0, len(committed)),
		hasCommitted: committed != nil,
		guard:        guard.NewConstructorGuard(),
	}

	seen := make(map[kernel.UUID]struct{}, len(committed))
	for _, id := range committed {
		if err := id.Validate(); err != nil {
			return SuggestParcelsV2Query{}, errs.NewValueIsInvalidErrorWithCause("committed parcel id", err)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		q.committed = append(q.committed, id)
	}

	return q, nil
}

func (q SuggestParcelsV2Query) Validate() error {
	return q.guard.Validate(ErrSuggestParcelsV2QueryIsNotConstructed)
}

func (q SuggestParcelsV2Query) CourierID() kernel.UUID {
	return q.courierID
}

// Committed returns the explicit committed ids, and false when the in-flight set is to be
// used instead.
func (q SuggestParcelsV2Query) Committed() ([]kernel.UUID, bool) {
	out := make([]kernel.UUID, len(q.committed))
	copy(out, q.committed)
	return out, q.hasCommitted
}

// SuggestedParcel is a parcel the courier can take, with the distance the oracle reported
// for the trip including it. DistanceExtend is 0 when the courier has no active route.
type SuggestedParcel struct {
	Parcel         *parcel.Parcel
	DistanceExtend float64
}
