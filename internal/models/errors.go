package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a single-row lookup or listing yields nothing.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned by login when no user matches. It wraps ErrNotFound.
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrNotFound)
	// ErrForbidden is returned when the acting session lacks the required clearance.
	ErrForbidden = errors.New("insufficient clearance")
	// ErrInvalidInput is returned for values that violate an entity invariant.
	ErrInvalidInput = errors.New("invalid input")
	// ErrReferenced is returned when a delete is blocked by dependent rows.
	ErrReferenced = errors.New("referenced by other records")
	// ErrInvalidReference is returned when an insert or update points at a missing parent row.
	ErrInvalidReference = errors.New("referenced record does not exist")
)
