package orders

import "errors"

var (
	// ErrNotFound is returned when no order matches the lookup.
	ErrNotFound = errors.New("order not found")

	// ErrInvalidOrder is returned by Service.Create when validation failed;
	// the details stay queryable on the order's error bag.
	ErrInvalidOrder = errors.New("order failed validation")
)
