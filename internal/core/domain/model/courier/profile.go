package courier

import (
	"errors"
	"strings"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/pkg/errs"
)

// Profile is the user profile linked to a courier account. Routes and per-courier
// settings hang off the profile, not the account.
type Profile struct {
	id       kernel.UUID
	fullName string
	phone    string
}

// NewProfile requires an id. Name and phone are informational and may be empty.
func NewProfile(id kernel.UUID, fullName, phone string) (Profile, error) {
	if err := id.Validate(); err != nil {
		return Profile{}, errs.NewValueIsRequiredErrorWithCause("profile id", err)
	}

	return Profile{
		id:       id,
		fullName: strings.TrimSpace(fullName),
		phone:    strings.TrimSpace(phone),
	}, nil
}

// ErrProfileIsNotConstructed is returned for a zero-value Profile.
var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")

func (p Profile) Validate() error {
	if p.id.Validate() != nil {
		return ErrProfileIsNotConstructed
	}
	return nil
}

func (p Profile) ID() kernel.UUID {
	return p.id
}

func (p Profile) FullName() string {
	return p.fullName
}

func (p Profile) Phone() string {
	return p.phone
}
