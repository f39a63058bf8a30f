package parcel

import (
	"errors"
	"math"
	"strings"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/pkg/errs"
)

// Product is one item inside a parcel. Price is in the smallest currency unit.
type Product struct {
	id    kernel.UUID
	name  string
	price int64
}

func NewProduct(id kernel.UUID, name string, price int64) (Product, error) {
	p := Product{}

	if err := errors.Join(p.setID(id), p.setName(name), p.setPrice(price)); err != nil {
		return Product{}, err
	}

	return p, nil
}

func (p Product) ID() kernel.UUID {
	return p.id
}

func (p Product) Name() string {
	return p.name
}

func (p Product) Price() int64 {
	return p.price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product id", err)
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsOutOfRangeError("product price", price, 0, int64(math.MaxInt64))
	}
	p.price = price
	return nil
}
