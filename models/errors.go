package models

import "errors"

var (
	// ErrItemNotFound is returned when the referenced item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrDuplicateSKU is returned when an item's SKU is already taken.
	ErrDuplicateSKU = errors.New("sku already exists")

	// ErrInsufficientStock is returned when an outgoing movement exceeds the
	// available quantity. The item is left untouched.
	ErrInsufficientStock = errors.New("not enough stock")

	// ErrInvalidInput is returned for values the store must never accept:
	// negative prices or quantities, non-positive movement amounts, unknown
	// movement types.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownReportType is returned for unrecognized report identifiers.
	ErrUnknownReportType = errors.New("unknown report type")
)
