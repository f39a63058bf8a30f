package services

import "shipconvenient/internal/core/domain/model/parcel"

// Candidate is a parcel annotated with the distance the oracle reported for the trip that
// includes it. DistanceExtend is zero when no oracle call was made.
type Candidate struct {
	Parcel         *parcel.Parcel
	DistanceExtend float64
}

// BalanceFilter keeps the candidates a courier can cover with the available balance.
type BalanceFilter struct{}

func NewBalanceFilter() BalanceFilter {
	return BalanceFilter{}
}

// CanAfford reports whether available - TotalPrice >= 0. The comparison does not subtract,
// so a negative balance cannot wrap around.
func (BalanceFilter) CanAfford(available int64, p *parcel.Parcel) bool {
	return p.TotalPrice() <= available
}

// Filter returns the affordable candidates in their input order.
func (f BalanceFilter) Filter(available int64, candidates []Candidate) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if f.CanAfford(available, c.Parcel) {
			out = append(out, c)
		}
	}
	return out
}
