package courier

import (
	"errors"
	"strings"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/pkg/errs"
	"shipconvenient/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier account.
//
// Key responsibilities:
//   - Carrying courier identity (ID, name)
//   - Exposing the linked profile that owns the courier's route and settings
//
// Business rules:
//   - Courier must have a valid UUID and a non-empty name
//   - Profile is optional at construction; HasProfile gates eligibility
//
// Example usage:
//
//	profile, _ := courier.NewProfile(infoUserID, "Nguyen Van A", "0901234567")
//	c, err := courier.NewCourier(accountID, "nguyenvana", &profile)
//	if err != nil {
//	    // Handle construction error
//	}
//	if !c.HasProfile() {
//	    // not eligible for suggestions
//	}
type Courier struct {
	// id uniquely identifies the courier account
	id kernel.UUID
	// name is the account name of the courier
	name string
	// profile is the linked InfoUser, nil when the account has none
	profile *Profile
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a Courier. profile may be nil; a non-nil profile must be valid.
//
// Returns:
//   - *Courier: The created courier if all validations pass
//   - error: Joined validation errors otherwise
func NewCourier(id kernel.UUID, name string, profile *Profile) (*Courier, error) {
	c := &Courier{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setProfile(profile),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// IsEqual compares two couriers by ID.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Courier was properly constructed using the NewCourier constructor.
// The zero value of Courier is invalid and will fail this validation.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier account.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the account name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// HasProfile reports whether the courier is linked to a profile.
func (c *Courier) HasProfile() bool {
	return c.profile != nil
}

// Profile returns a copy of the linked profile and false when there is none.
//
// Example:
//
//	profile, ok := c.Profile()
//	if !ok {
//	    return ErrProfileIsMissing
//	}
//	route, err := routes.GetActive(ctx, profile.ID())
func (c *Courier) Profile() (Profile, bool) {
	if c.profile == nil {
		return Profile{}, false
	}
	return *c.profile, true
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setProfile(profile *Profile) error {
	if profile == nil {
		return nil
	}
	if err := profile.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("profile", err)
	}
	cp := *profile
	c.profile = &cp
	return nil
}
