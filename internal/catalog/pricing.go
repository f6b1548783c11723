package catalog

import "errors"

// Guest count bounds accepted by the booking form
const (
	MinAdults   = 1
	MaxAdults   = 6
	MinChildren = 0
	MaxChildren = 4
)

var (
	ErrUnknownRoute      = errors.New("unknown cruise route")
	ErrUnknownCabin      = errors.New("unknown cabin type")
	ErrInvalidAdultCount = errors.New("adults must be between 1 and 6")
	ErrInvalidChildCount = errors.New("children must be between 0 and 4")
)

// Quote returns the total price in whole dollars:
// cabin rate × adults + child rate × children.
func Quote(id RouteID, cabin CabinClass, adults, children int) (int64, error) {
	route, ok := Lookup(id)
	if !ok {
		return 0, ErrUnknownRoute
	}
	rate, ok := route.Pricing.Rate(cabin)
	if !ok {
		return 0, ErrUnknownCabin
	}
	if err := ValidateGuestCounts(adults, children); err != nil {
		return 0, err
	}
	return rate*int64(adults) + route.Pricing.Child*int64(children), nil
}

// ValidateGuestCounts checks the adult and child counts against the form bounds
func ValidateGuestCounts(adults, children int) error {
	if adults < MinAdults || adults > MaxAdults {
		return ErrInvalidAdultCount
	}
	if children < MinChildren || children > MaxChildren {
		return ErrInvalidChildCount
	}
	return nil
}
