package route

import (
	"fmt"
	"strings"

	"shipconvenient/internal/pkg/errs"
)

// DirectionType is the direction a route point is travelled in. Forward runs from the route's
// origin to its destination, backward runs home.
type DirectionType int

const (
	// UnknownDirection catches uninitialized values.
	UnknownDirection DirectionType = iota
	// Forward points lead from Route.From to Route.To.
	Forward
	// Backward points lead from Route.To back to Route.From.
	Backward
)

// ParseDirectionType accepts the persisted names FORWARD and BACKWARD, case-insensitively.
func ParseDirectionType(s string) (DirectionType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FORWARD":
		return Forward, nil
	case "BACKWARD":
		return Backward, nil
	}
	return UnknownDirection, errs.NewValueIsInvalidErrorWithCause(
		"direction type", fmt.Errorf("%q is not a direction type", s))
}

// Validate rejects UnknownDirection and out-of-range values.
func (d DirectionType) Validate() error {
	if d != Forward && d != Backward {
		return errs.NewValueIsInvalidErrorWithCause(
			"direction type", fmt.Errorf("%d is not a valid direction type", d))
	}
	return nil
}

func (d DirectionType) String() string {
	switch d {
	case Forward:
		return "FORWARD"
	case Backward:
		return "BACKWARD"
	case UnknownDirection:
	}
	return "UNKNOWN"
}

// DirectionMode is the per-courier setting that decides which route points are matched
// against candidates and which committed distance the detour budget adds up.
type DirectionMode int

const (
	// UnknownMode catches uninitialized values.
	UnknownMode DirectionMode = iota
	// ForwardMode matches only forward points; budget uses DistanceForward.
	ForwardMode
	// BackwardMode matches only backward points; budget uses DistanceBackward.
	BackwardMode
	// TwoWayMode matches both directions; budget uses both distances.
	TwoWayMode
)

// ParseDirectionMode accepts FORWARD, BACKWARD and TWO_WAY, case-insensitively.
//
// Example:
//
//	mode, err := route.ParseDirectionMode(cfg.Value)
//	if err != nil {
//	    mode = route.TwoWayMode
//	}
func ParseDirectionMode(s string) (DirectionMode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FORWARD":
		return ForwardMode, nil
	case "BACKWARD":
		return BackwardMode, nil
	case "TWO_WAY":
		return TwoWayMode, nil
	}
	return UnknownMode, errs.NewValueIsInvalidErrorWithCause(
		"direction mode", fmt.Errorf("%q is not a direction mode", s))
}

// Validate rejects UnknownMode and out-of-range values.
func (m DirectionMode) Validate() error {
	if m < ForwardMode || m > TwoWayMode {
		return errs.NewValueIsInvalidErrorWithCause(
			"direction mode", fmt.Errorf("%d is not a valid direction mode", m))
	}
	return nil
}

func (m DirectionMode) String() string {
	switch m {
	case ForwardMode:
		return "FORWARD"
	case BackwardMode:
		return "BACKWARD"
	case TwoWayMode:
		return "TWO_WAY"
	case UnknownMode:
	}
	return "UNKNOWN"
}

// Includes reports whether points of direction d take part in matching under mode m.
func (m DirectionMode) Includes(d DirectionType) bool {
	switch m {
	case ForwardMode:
		return d == Forward
	case BackwardMode:
		return d == Backward
	case TwoWayMode:
		return d == Forward || d == Backward
	case UnknownMode:
	}
	return false
}

// Directions lists the point directions of m in travel order.
func (m DirectionMode) Directions() []DirectionType {
	switch m {
	case ForwardMode:
		return []DirectionType{Forward}
	case BackwardMode:
		return []DirectionType{Backward}
	case TwoWayMode:
		return []DirectionType{Forward, Backward}
	case UnknownMode:
	}
	return nil
}
