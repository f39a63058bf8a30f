package http

import (
	"shipconvenient/internal/core/application/usecases/queries"
	"shipconvenient/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Product struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price int64     `json:"price"`
}

// Suggestion is one suggested parcel.
type Suggestion struct {
	ID             uuid.UUID `json:"id"`
	SenderID       uuid.UUID `json:"senderId"`
	Status         string    `json:"status"`
	Pickup         Location  `json:"pickup"`
	DropOff        Location  `json:"dropOff"`
	Products       []Product `json:"products"`
	TotalPrice     int64     `json:"totalPrice"`
	DistanceExtend float64   `json:"distanceExtend"`
}

func toSuggestions(in []queries.SuggestedParcel) []Suggestion {
	out := make([]Suggestion, 0, len(in))
	for _, s := range in {
		p := s.Parcel

		products := make([]Product, 0, len(p.Products()))
		for _, pr := range p.Products() {
			products = append(products, Product{ID: pr.ID().Bytes(), Name: pr.Name(), Price: pr.Price()})
		}

		out = append(out, Suggestion{
			ID:             p.ID().Bytes(),
			SenderID:       p.SenderID().Bytes(),
			Status:         p.Status().String(),
			Pickup:         toLocation(p.Pickup()),
			DropOff:        toLocation(p.DropOff()),
			Products:       products,
			TotalPrice:     p.TotalPrice(),
			DistanceExtend: s.DistanceExtend,
		})
	}
	return out
}

func toLocation(p kernel.GeoPoint) Location {
	return Location{Latitude: p.Lat(), Longitude: p.Lon()}
}
