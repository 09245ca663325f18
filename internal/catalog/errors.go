package catalog

import "errors"

var (
	// ErrDuplicateFunction means a function with the same name and
	// parameter types is already registered.
	ErrDuplicateFunction = errors.New("function already exists")

	// ErrFunctionNotFound means no function matches the name and parameter types.
	ErrFunctionNotFound = errors.New("function not found")

	// ErrRegistrationTimeout means loading the function did not finish within
	// the configured registration timeout.
	ErrRegistrationTimeout = errors.New("function registration timed out")
)
